// Package cli implements the storefront command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rl1809/storefront/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFiles []string
}

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront cart and stock service",
		Long:  "Serves the catalog, cart reservations and checkout over HTTP and gRPC.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotenv(opts.EnvFiles...)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringSliceVar(&opts.EnvFiles, "env-file", nil, "dotenv files to load (default .env)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
