package storage

import (
	"context"
	"fmt"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// BudgetSummary returns every budget category with the roll-up totals. The
// totals are recomputed from the category rows on every call, never cached:
// MonthlyBudget is the sum of ceilings, TotalSpent the sum of running spent
// totals, Remaining their difference.
func (s *Store) BudgetSummary(ctx context.Context) (*model.BudgetSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, spent, budget, color
		FROM budget_categories
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := &model.BudgetSummary{}
	for rows.Next() {
		var c model.BudgetCategory
		if err := rows.Scan(&c.Name, &c.Spent, &c.Budget, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		summary.Categories = append(summary.Categories, c)
		summary.MonthlyBudget += c.Budget
		summary.TotalSpent += c.Spent
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget categories: %w", err)
	}

	summary.Remaining = summary.MonthlyBudget - summary.TotalSpent
	return summary, nil
}
