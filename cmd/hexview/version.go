package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the semantic version of the hexview binary.
const Version = "0.3.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hexview version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hexview " + Version)
		},
	}
}
