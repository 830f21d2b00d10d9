package model

import "math"

// BudgetCategory tracks spending against a monthly ceiling. Name doubles as
// the unique key matched against Expense.Category. Spent is a running total
// maintained incrementally as matching expenses are recorded; it is never
// recomputed from the expense list.
type BudgetCategory struct {
	Name  string
	Color string
	Spent float64
	// Budget is the monthly ceiling set at initialization.
	Budget float64
}

// PercentUsed returns the spent/budget ratio as a rounded percentage.
// Values above 100 indicate an over-budget category.
func (c BudgetCategory) PercentUsed() int {
	if c.Budget <= 0 {
		return 0
	}
	return int(math.Round(c.Spent / c.Budget * 100))
}

// OverBudget reports whether spending has exceeded the ceiling.
func (c BudgetCategory) OverBudget() bool {
	return c.Spent > c.Budget
}

// BudgetSummary is a derived snapshot of all categories with roll-up totals.
// It is recomputed on every read.
type BudgetSummary struct {
	Categories    []BudgetCategory
	MonthlyBudget float64
	TotalSpent    float64
	Remaining     float64
}
