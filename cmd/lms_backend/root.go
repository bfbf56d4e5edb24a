package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCommand(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "lms_backend",
		Short:         "Library management system backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(logger),
		newMigrateCommand(logger),
		newCreateAdminCommand(logger),
	)
	return root
}
