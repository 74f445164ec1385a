package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
)

var email string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to SafeTrip",
	Long: `Authenticate against the SafeTrip server.

The session token is saved locally and used by later commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if email == "" {
			email = ui.Prompt("Email")
		}
		password, err := ui.Secret("Password")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		session, err := app.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		ui.Success("welcome, %s (%s)", session.Name, session.UserType)
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}
		ui.Success("logged out")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&email, "email", "e", "", "account email")
}
