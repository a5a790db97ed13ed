package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profiledesk/profile-directory/internal/core/service"
	"github.com/profiledesk/profile-directory/internal/infrastructure/session"
)

var setPasswordFlags struct {
	email    string
	password string
}

// setPasswordCmd gives an existing profile its first password. There is no
// HTTP route for this: change-password needs a session, and a session needs
// a password.
var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Set the password of an existing profile",
	Example: `  profiled set-password --email admin@example.com --password 'correct horse battery staple'`,
	RunE: runWithApp(func(cmd *cobra.Command, a *app) error {
		auth := service.NewAuthService(a.profiles, session.NewMemoryStore(), a.log)
		if err := auth.SetPassword(cmd.Context(), setPasswordFlags.email, setPasswordFlags.password); err != nil {
			return fmt.Errorf("set password for %s: %w", setPasswordFlags.email, err)
		}
		a.log.Info().Str("email", setPasswordFlags.email).Msg("password set")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(setPasswordCmd)

	setPasswordCmd.Flags().StringVar(&setPasswordFlags.email, "email", "", "email of the profile")
	setPasswordCmd.Flags().StringVar(&setPasswordFlags.password, "password", "", "new plaintext password")
	_ = setPasswordCmd.MarkFlagRequired("email")
	_ = setPasswordCmd.MarkFlagRequired("password")
}
