package sos

import (
	"fmt"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
)

var lat, lng float64

var SOSCmd = &cobra.Command{
	Use:   "sos",
	Short: "Email an SOS alert with your position to every emergency contact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		res, err := app.SendSOS(cmd.Context(), lat, lng)
		if err != nil {
			ui.Danger("SOS was NOT delivered: %v", err)
			return err
		}

		ui.Success("%s", res.Message)
		fmt.Fprintf(ui.Out, "alert %s: %d of %d contacts reached\n", res.AlertID, res.SuccessfulSends, res.TotalContacts)
		if res.FailedSends > 0 {
			ui.Warn("%d contact(s) could not be mailed", res.FailedSends)
		}
		return nil
	},
}

func init() {
	SOSCmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	SOSCmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = SOSCmd.MarkFlagRequired("lat")
	_ = SOSCmd.MarkFlagRequired("lng")
}
