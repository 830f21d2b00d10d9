package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func billCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Track and pay bills",
	}

	cmd.AddCommand(billListCmd())
	cmd.AddCommand(billPayCmd())

	return cmd
}

func billListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills by due date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bills, err := store.Bills(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list bills: %w", err)
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tDUE\tSTATUS")
			for _, b := range bills {
				status := b.EffectiveStatus(now)
				if !all && status == model.BillPaid {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					b.ID, b.Title, currency.Format(b.Amount),
					dueLabel(b, now), string(status))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include paid bills")

	return cmd
}

func billPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay ID",
		Short: "Mark a bill as paid and record the expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkBillAsPaid(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to pay bill: %w", err)
			}
			return nil
		},
	}
}

func dueLabel(b model.Bill, now time.Time) string {
	days := b.DaysUntilDue(now)
	switch {
	case b.Status == model.BillPaid:
		return currency.FormatDate(b.DueDate)
	case days < 0:
		return fmt.Sprintf("%s (%d days overdue)", currency.FormatDate(b.DueDate), -days)
	case days == 0:
		return fmt.Sprintf("%s (due today)", currency.FormatDate(b.DueDate))
	default:
		return fmt.Sprintf("%s (in %d days)", currency.FormatDate(b.DueDate), days)
	}
}
