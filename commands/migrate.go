package commands

import (
	"rentdesk/config"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := newLogger(cfg)
			defer log.Sync()

			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return err
			}
			log.Info("database schema is up to date (driver %s)", cfg.DBDriver)
			return nil
		},
	}
}
