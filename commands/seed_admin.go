package commands

import (
	"fmt"

	"rentdesk/config"
	"rentdesk/repository"
	"rentdesk/services"

	"github.com/spf13/cobra"
)

// SeedAdminCmd creates an admin account. Admins cannot self-register.
func SeedAdminCmd() *cobra.Command {
	var in services.RegisterInput

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an admin account",
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

			opts := services.ServiceOptions{Store: repository.New(db), Logger: log}
			auth := services.NewAuthService(opts, services.NewTokenIssuer(cfg.AccessTokenSecret, cfg.AccessTokenMinutes), nil)
			user, err := auth.CreateAdmin(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %d created for %s\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "Administrator", "admin display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&in.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&in.ContactNumber, "phone", "", "admin contact number")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
