package auth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var userType string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a SafeTrip account",
	Long: `Register a traveler or community account.

Community members can report and recover lost items for travelers.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ui.Heading("=== New SafeTrip account ===")
		req := client.RegisterRequest{
			Name:     ui.Prompt("Name"),
			Email:    ui.Prompt("Email"),
			Phone:    ui.Prompt("Phone"),
			UserType: normalizeType(userType),
		}

		password, err := ui.Secret("Password")
		if err != nil {
			return err
		}
		confirm, err := ui.Secret("Repeat password")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
		req.Password = password

		id, err := app.Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		ui.Success("registered as user #%d", id)
		fmt.Fprintln(ui.Out, "Log in with: safetrip login")
		return nil
	},
}

// normalizeType maps traveler/community in any case to the server's values.
func normalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "traveler":
		return "Traveler"
	case "community":
		return "Community"
	}
	return t
}

func init() {
	RegisterCmd.Flags().StringVarP(&userType, "type", "t", "Traveler", "account type: Traveler or Community")
}
