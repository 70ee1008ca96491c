package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kronotime-SAS/Festina/internal/application/startup"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "festina",
		Short:         "Festina storefront server and content tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSlidesCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startup.Initialize()
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "festina:", err)
		os.Exit(1)
	}
}
