package tui

import (
	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Tab identifies a dashboard view.
type Tab int

const (
	TabOverview Tab = iota
	TabExpenses
	TabBills
	TabGoals
	TabNotifications
	TabFeed

	tabCount
)

// String returns the tab label rendered in the tab bar.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabExpenses:
		return "Expenses"
	case TabBills:
		return "Bills"
	case TabGoals:
		return "Goals"
	case TabNotifications:
		return "Notifications"
	case TabFeed:
		return "Feed"
	default:
		return "Unknown"
	}
}

// snapshot is a consistent read of everything the dashboard renders.
type snapshot struct {
	summary       *model.BudgetSummary
	expenses      []model.Expense
	bills         []model.Bill
	goals         []model.Goal
	notifications []model.Notification
	posts         []model.CommunityPost
	unread        int
}

// snapshotLoadedMsg carries a fresh snapshot after startup or a mutation.
type snapshotLoadedMsg struct {
	err      error
	snapshot snapshot
}

// actionDoneMsg reports a completed mutation plus any toasts it emitted.
type actionDoneMsg struct {
	err    error
	toasts []cli.Toast
}
