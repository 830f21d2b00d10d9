package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalContributeCmd())

	return cmd
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goals, err := store.Goals(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSAVED\tTARGET\tPROGRESS\tPRIORITY\tDUE")
			for _, g := range goals {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\t%s\n",
					g.ID, g.Title,
					currency.Format(g.CurrentAmount), currency.Format(g.TargetAmount),
					g.Progress()*100, string(g.Priority), currency.FormatDate(g.DueDate))
			}
			return w.Flush()
		},
	}
}

func goalAddCmd() *cobra.Command {
	var (
		target   float64
		due      string
		priority string
		category string
		icon     string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a new savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target <= 0 {
				return fmt.Errorf("target must be greater than zero")
			}

			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid due date %q (want YYYY-MM-DD): %w", due, err)
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, err = store.AddGoal(cmd.Context(), args[0], target, dueDate,
				model.GoalPriority(priority), model.GoalCategory(category), icon)
			if err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "target amount in rupees (required)")
	cmd.Flags().StringVar(&due, "due", "", "target date as YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.PriorityMedium), "priority (High, Medium, Low)")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.GoalShortTerm), "horizon (Short-term, Long-term)")
	cmd.Flags().StringVar(&icon, "icon", "piggy-bank", "display icon name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func goalContributeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contribute ID AMOUNT",
		Short: "Add money toward a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be greater than zero")
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AddContributionToGoal(cmd.Context(), args[0], amount); err != nil {
				return fmt.Errorf("failed to add contribution: %w", err)
			}
			return nil
		},
	}
}
