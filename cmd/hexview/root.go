package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/internal/observability"
)

const defaultConfigPath = "./configs/hexview.yaml"

var (
	cfgFile string
	cfg     *config.Config
)

// newRootCommand assembles the CLI. Configuration and logging are set
// up in PersistentPreRunE so every subcommand runs with a loaded config
// and a global zap logger.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexview",
		Short:         "hexview builds, serves and renders hexagonal grids",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig()
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(observability.NewLogger(cfg.Logging))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is "+defaultConfigPath+")")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	root.AddCommand(newServeCommand(), newRenderCommand(), newVersionCommand())
	return root
}

// loadConfig reads the config file. A missing file is only an error
// when the path was given explicitly; the default path silently falls
// back to the built-in defaults.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	c, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return c, nil
}

func execute() error {
	return newRootCommand().Execute()
}
