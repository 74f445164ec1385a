// Package contacts manages the emergency contacts that receive SOS mail.
package contacts

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var ContactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"loved-ones"},
	Short:   "Emergency contacts",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your emergency contacts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.LovedOnes(cmd.Context())
		if err != nil {
			return err
		}
		ui.StaleNotice(res)
		return printContacts(res)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Add an emergency contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.AddLovedOne(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		ui.Success("%s will receive your SOS alerts", args[0])
		return printContacts(res)
	},
}

func printContacts(res client.Result) error {
	var body struct {
		LovedOnes []client.LovedOne `json:"loved_ones"`
	}
	if err := res.Decode(&body); err != nil {
		return fmt.Errorf("unexpected reply: %w", err)
	}
	if len(body.LovedOnes) == 0 {
		ui.Warn("no emergency contacts yet, add one with: safetrip contacts add <name> <email>")
		return nil
	}

	w := tabwriter.NewWriter(ui.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, lo := range body.LovedOnes {
		fmt.Fprintf(w, "%d\t%s\t%s\n", lo.ID, lo.Name, lo.Email)
	}
	return w.Flush()
}

func init() {
	ContactsCmd.AddCommand(listCmd, addCmd)
}
