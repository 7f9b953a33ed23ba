package commands

import (
	"fmt"
	"os"

	"rentdesk/config"
	"rentdesk/services/logger"

	"github.com/spf13/cobra"
)

// Execute runs the CLI; serve is the default command.
func Execute() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "rentdesk",
		Short: "Rental property occupancy and billing server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logger.DefaultLogger {
	return logger.New(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
}
