package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetSummaryTotals(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	summary, err := store.BudgetSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Categories, 5)

	var budgetSum, spentSum float64
	for _, c := range summary.Categories {
		budgetSum += c.Budget
		spentSum += c.Spent
	}
	assert.InDelta(t, budgetSum, summary.MonthlyBudget, 0.001)
	assert.InDelta(t, spentSum, summary.TotalSpent, 0.001)
	assert.InDelta(t, summary.MonthlyBudget-summary.TotalSpent, summary.Remaining, 0.001)
}

func TestBudgetSummaryRecomputedAfterMutations(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before, err := store.BudgetSummary(ctx)
	require.NoError(t, err)

	_, err = store.AddExpense(ctx, "Movie Night", 800, "Entertainment", "")
	require.NoError(t, err)

	after, err := store.BudgetSummary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.TotalSpent+800, after.TotalSpent, 0.001)
	assert.InDelta(t, before.MonthlyBudget, after.MonthlyBudget, 0.001, "ceilings never move")
	assert.InDelta(t, before.Remaining-800, after.Remaining, 0.001)
}

func TestSeedSpentMatchesSeedExpenses(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	expenses, err := store.Expenses(ctx)
	require.NoError(t, err)

	sums := make(map[string]float64)
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	summary, err := store.BudgetSummary(ctx)
	require.NoError(t, err)
	for _, c := range summary.Categories {
		assert.InDelta(t, sums[c.Name], c.Spent, 0.001, "category %s", c.Name)
	}
}
