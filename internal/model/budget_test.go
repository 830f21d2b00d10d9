package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentUsed(t *testing.T) {
	tests := []struct {
		name string
		cat  BudgetCategory
		want int
	}{
		{name: "under budget", cat: BudgetCategory{Spent: 320, Budget: 400}, want: 80},
		{name: "over budget exceeds 100", cat: BudgetCategory{Spent: 680, Budget: 650}, want: 105},
		{name: "zero budget", cat: BudgetCategory{Spent: 100, Budget: 0}, want: 0},
		{name: "rounds to nearest", cat: BudgetCategory{Spent: 1, Budget: 3}, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cat.PercentUsed())
		})
	}
}

func TestOverBudget(t *testing.T) {
	assert.False(t, BudgetCategory{Spent: 400, Budget: 400}.OverBudget())
	assert.True(t, BudgetCategory{Spent: 401, Budget: 400}.OverBudget())
}
