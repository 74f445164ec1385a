// Package plan asks the server's AI planner for itineraries, routes,
// destination ideas and translations.
package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "AI trip planning",
}

var trip client.TripRequest

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Day by day itinerary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.GenerateTrip(cmd.Context(), trip)
		if err != nil {
			return err
		}
		return show(res, "trip_plan")
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes <source> <destination>",
	Short: "Transport options between two places",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.TransportRoutes(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return show(res, "routes")
	},
}

var suggest client.SuggestionsRequest

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Destination ideas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.Suggestions(cmd.Context(), suggest)
		if err != nil {
			return err
		}
		return show(res, "suggestions")
	},
}

var from, to string

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate a phrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		tr, err := app.Translate(cmd.Context(), args[0], from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "[%s → %s] %s\n", tr.SourceLang, tr.TargetLang, tr.TranslatedText)
		return nil
	},
}

// show prints one field of the reply envelope.
func show(res client.Result, field string) error {
	ui.StaleNotice(res)

	var body map[string]client.RawJSON
	if err := res.Decode(&body); err != nil {
		return fmt.Errorf("unexpected reply: %w", err)
	}
	return ui.JSON(body[field])
}

func init() {
	tripCmd.Flags().StringVar(&trip.Days, "days", "3", "number of days")
	tripCmd.Flags().StringVar(&trip.Place, "place", "", "destination")
	tripCmd.Flags().StringVar(&trip.Budget, "budget", "", "total budget in INR")
	tripCmd.Flags().StringVar(&trip.Activity, "activity", "sightseeing", "preferred activities")
	_ = tripCmd.MarkFlagRequired("place")
	_ = tripCmd.MarkFlagRequired("budget")

	suggestCmd.Flags().StringVar(&suggest.Interests, "interests", "", "e.g. beaches, trekking")
	suggestCmd.Flags().StringVar(&suggest.Budget, "budget", "", "budget")
	suggestCmd.Flags().StringVar(&suggest.Duration, "duration", "", "trip length")
	suggestCmd.Flags().StringVar(&suggest.Travelers, "travelers", "", "number of travelers")

	translateCmd.Flags().StringVar(&from, "from", "English", "source language")
	translateCmd.Flags().StringVar(&to, "to", "Hindi", "target language")

	PlanCmd.AddCommand(tripCmd, routesCmd, suggestCmd, translateCmd)
}
