// Package expense tracks trip spending for the logged in user.
package expense

import (
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var ExpenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Trip expenses",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your expenses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		res, err := app.Expenses(cmd.Context())
		if err != nil {
			return err
		}
		ui.StaleNotice(res)

		var body struct {
			Expenses []client.Expense `json:"expenses"`
		}
		if err := res.Decode(&body); err != nil {
			return fmt.Errorf("unexpected reply: %w", err)
		}
		if len(body.Expenses) == 0 {
			fmt.Fprintln(ui.Out, "No expenses recorded")
			return nil
		}

		w := tabwriter.NewWriter(ui.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tTITLE\tAMOUNT")
		for _, e := range body.Expenses {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s %s\n", e.ID, e.SpentOn, e.Category, e.Title, e.Amount, e.Currency)
		}
		return w.Flush()
	},
}

var newExpense client.NewExpense

var addCmd = &cobra.Command{
	Use:   "add <title> <amount>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		newExpense.Title = args[0]
		newExpense.Amount = args[1]

		e, err := app.AddExpense(cmd.Context(), newExpense)
		if err != nil {
			return err
		}
		ui.Success("expense #%d: %s %s for %s", e.ID, e.Amount, e.Currency, e.Title)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id must be a number")
		}
		if err := app.DeleteExpense(cmd.Context(), id); err != nil {
			return err
		}
		ui.Success("expense #%d deleted", id)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals per currency and category",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		summaries, err := app.ExpenseSummary(cmd.Context())
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintln(ui.Out, "No expenses recorded")
			return nil
		}

		for _, s := range summaries {
			ui.Heading("%s: %s across %d expense(s)", s.Currency, s.Total, s.Count)
			categories := make([]string, 0, len(s.ByCategory))
			for c := range s.ByCategory {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Fprintf(ui.Out, "  %-14s %s\n", c, s.ByCategory[c])
			}
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&newExpense.Category, "category", "c", "Other",
		"Transport, Food, Accommodation, Activities, Shopping or Other")
	addCmd.Flags().StringVar(&newExpense.Currency, "currency", "", "ISO currency code, INR when empty")
	addCmd.Flags().StringVar(&newExpense.SpentOn, "date", "", "YYYY-MM-DD, today when empty")

	ExpenseCmd.AddCommand(listCmd, addCmd, deleteCmd, summaryCmd)
}
