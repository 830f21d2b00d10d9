// Package model defines the core domain entities shared across the application.
package model

import "time"

// Expense represents a single recorded spend. Expenses are append-only:
// once created they are never edited or deleted.
type Expense struct {
	Date        time.Time
	ID          string
	Title       string
	Category    string
	Description string
	Amount      float64
}

// SuggestedCategories is the conventional category set offered to forms.
// Expense.Category is free-form; this list is a suggestion, not a constraint.
var SuggestedCategories = []string{
	"Housing",
	"Food",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Shopping",
	"Other",
}
