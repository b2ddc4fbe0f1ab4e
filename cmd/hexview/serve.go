package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the grid viewer server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.L()

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			// Start server in goroutine
			errChan := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
				if err := srv.Start(addr); err != nil {
					errChan <- err
				}
			}()

			// Wait for interrupt signal or error
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errChan:
				return err
			case sig := <-sigChan:
				logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
			}

			return srv.Shutdown()
		},
	}
}
