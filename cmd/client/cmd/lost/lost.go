// Package lost manages lost and found reports.
package lost

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var LostCmd = &cobra.Command{
	Use:   "lost",
	Short: "Lost and found reports",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reports, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		res, err := app.LostFoundItems(cmd.Context())
		if err != nil {
			return err
		}
		ui.StaleNotice(res)

		var body struct {
			Items []client.LostFoundItem `json:"items"`
		}
		if err := res.Decode(&body); err != nil {
			return fmt.Errorf("unexpected reply: %w", err)
		}
		printItems(body.Items)
		return nil
	},
}

var (
	location    string
	description string
	status      string
	dateFound   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Report a lost or found item",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		item := client.NewLostFoundItem{
			Location:        location,
			ItemDescription: description,
			Status:          status,
		}
		if dateFound != "" {
			item.DateFound = &dateFound
		}

		created, err := app.ReportItem(cmd.Context(), item)
		if err != nil {
			return err
		}
		ui.Success("report #%d created", created.ReportID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <report_id>",
	Short: "Change the given fields of a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("report_id must be a number")
		}

		upd := client.LostFoundUpdate{ReportID: id}
		flags := cmd.Flags()
		if flags.Changed("location") {
			upd.Location = &location
		}
		if flags.Changed("description") {
			upd.ItemDescription = &description
		}
		if flags.Changed("status") {
			upd.Status = &status
		}
		if flags.Changed("date-found") {
			upd.DateFound = &dateFound
		}

		item, err := app.UpdateItem(cmd.Context(), upd)
		if err != nil {
			return err
		}
		ui.Success("report #%d is now %s", item.ReportID, item.Status)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <report_id>",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("report_id must be a number")
		}
		if err := app.DeleteItem(cmd.Context(), id); err != nil {
			return err
		}
		ui.Success("report #%d deleted", id)
		return nil
	},
}

func printItems(items []client.LostFoundItem) {
	if len(items) == 0 {
		fmt.Fprintln(ui.Out, "No reports yet")
		return
	}

	w := tabwriter.NewWriter(ui.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tLOCATION\tITEM\tREPORTED\tFOUND")
	for _, it := range items {
		found := "-"
		if it.DateFound != nil {
			found = *it.DateFound
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			it.ReportID, it.Status, it.Location, it.ItemDescription, it.ReportDate.Local().Format("2006-01-02"), found)
	}
	_ = w.Flush()
}

func init() {
	for _, c := range []*cobra.Command{addCmd, updateCmd} {
		c.Flags().StringVarP(&location, "location", "l", "", "where the item was lost or found")
		c.Flags().StringVarP(&description, "description", "d", "", "item description")
		c.Flags().StringVarP(&status, "status", "s", "Lost", "Lost, Found or Recovered")
		c.Flags().StringVar(&dateFound, "date-found", "", "date found, YYYY-MM-DD (empty clears it on update)")
	}
	_ = addCmd.MarkFlagRequired("location")
	_ = addCmd.MarkFlagRequired("description")

	LostCmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
}
