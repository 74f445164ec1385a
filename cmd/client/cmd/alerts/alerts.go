package alerts

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var AlertsCmd = &cobra.Command{
	Use:   "alerts <location>",
	Short: "Recent news and a safety assessment for a place",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		res, err := app.LocationAlerts(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		ui.StaleNotice(res)

		var report client.LocationReport
		if err := res.Decode(&report); err != nil {
			return fmt.Errorf("unexpected reply: %w", err)
		}
		printReport(report)
		return nil
	},
}

func printReport(r client.LocationReport) {
	ui.Heading("Safety report: %s", r.Location)
	fmt.Fprintln(ui.Out, describe(r.Analysis.Analysis))

	if alerts := items(r.Analysis.Alerts); len(alerts) > 0 {
		fmt.Fprintln(ui.Out)
		ui.Heading("Alerts")
		for _, a := range alerts {
			ui.Danger("  • %s", describe(a))
		}
	}
	if precautions := items(r.Analysis.Precautions); len(precautions) > 0 {
		fmt.Fprintln(ui.Out)
		ui.Heading("Precautions")
		for _, p := range precautions {
			fmt.Fprintf(ui.Out, "  • %s\n", describe(p))
		}
	}
	if len(r.News) > 0 {
		fmt.Fprintln(ui.Out)
		ui.Heading("Headlines")
		for _, n := range r.News {
			fmt.Fprintf(ui.Out, "  %s (%s)\n    %s\n", n.Title, n.Published, n.Link)
		}
	}
}

// items treats a lone value as a one-element list.
func items(v any) []any {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// describe prints strings as is and anything else as compact JSON.
func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
