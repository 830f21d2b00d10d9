package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
)

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show budget categories and monthly totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := store.BudgetSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load budget summary: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSPENT\tBUDGET\tUSED")
			for _, c := range summary.Categories {
				used := fmt.Sprintf("%d%%", c.PercentUsed())
				if c.OverBudget() {
					used = cli.ErrorStyle.Render(used + " over")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					c.Name, currency.Format(c.Spent), currency.Format(c.Budget), used)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			fmt.Printf("Monthly budget: %s\n", currency.Format(summary.MonthlyBudget))
			fmt.Printf("Total spent:    %s\n", currency.Format(summary.TotalSpent))
			remaining := currency.Format(summary.Remaining)
			if summary.Remaining < 0 {
				remaining = cli.ErrorStyle.Render(remaining)
			}
			fmt.Printf("Remaining:      %s\n", remaining)
			return nil
		},
	}
}
