package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/common"
	"github.com/Shubham-Khatrii/budgetwise/internal/config"
	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
	"github.com/Shubham-Khatrii/budgetwise/internal/ofx"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Track expenses",
	}

	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseImportCmd())

	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("expense title cannot be empty")
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be greater than zero")
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if _, err := store.AddExpense(cmd.Context(), title, amount, category, description); err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "expense amount in rupees (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "Other", "budget category")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return model.SuggestedCategories, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func expenseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.Expenses(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTITLE\tCATEGORY\tAMOUNT")
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					currency.FormatDate(e.Date), e.Title, e.Category, currency.Format(e.Amount))
			}
			return w.Flush()
		},
	}
}

func expenseImportCmd() *cobra.Command {
	var (
		category string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE [FILE...]",
		Short: "Import expenses from OFX/QFX bank exports",
		Long: `Parses OFX or QFX statement downloads and records each debit as an
expense. Credits are skipped. Imported expenses land in the category
given by --category (or the import.category config key).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				category = config.ImportCategory()
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			parser := ofx.NewParser()
			var debits []ofx.Entry
			for _, path := range args {
				entries, err := importFile(cmd.Context(), parser, path)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					if entry.Debit {
						debits = append(debits, entry)
					}
				}
			}

			if len(debits) == 0 {
				fmt.Println(cli.FormatWarning("No debit transactions found."))
				return nil
			}

			if dryRun {
				for _, entry := range debits {
					fmt.Printf("%s  %s  %s\n",
						currency.FormatDate(entry.Date), entry.Title, currency.Format(entry.Amount))
				}
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run: %d expenses would be imported.", len(debits))))
				return nil
			}

			bar := progressbar.NewOptions(len(debits),
				progressbar.OptionSetDescription("Importing expenses"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish())
			for _, entry := range debits {
				if _, err := store.AddExpense(cmd.Context(), entry.Title, entry.Amount, category, entry.Memo); err != nil {
					return fmt.Errorf("failed to import %q: %w", entry.Title, err)
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses.", len(debits))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "budget category for imported expenses")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without recording anything")

	return cmd
}

func importFile(ctx context.Context, parser *ofx.Parser, path string) ([]ofx.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parser.ParseFile(ctx, f)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not parse statement file %s", path), err)
	}
	return entries, nil
}
