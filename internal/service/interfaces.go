// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Store defines the contract for the application state container. It is the
// only write path to the domain collections; presentation layers never hold
// raw collection handles.
//
// Lookups for ids that do not exist are silent no-ops, not errors. Errors
// signal infrastructure failure only.
type Store interface {
	// Expense operations
	AddExpense(ctx context.Context, title string, amount float64, category, description string) (*model.Expense, error)
	Expenses(ctx context.Context) ([]model.Expense, error)

	// Budget reads
	BudgetSummary(ctx context.Context) (*model.BudgetSummary, error)

	// Bill operations
	Bills(ctx context.Context) ([]model.Bill, error)
	MarkBillAsPaid(ctx context.Context, billID string) error

	// Goal operations
	Goals(ctx context.Context) ([]model.Goal, error)
	AddGoal(ctx context.Context, title string, targetAmount float64, dueDate time.Time, priority model.GoalPriority, category model.GoalCategory, icon string) (*model.Goal, error)
	AddContributionToGoal(ctx context.Context, goalID string, amount float64) error

	// Notification operations
	Notifications(ctx context.Context) ([]model.Notification, error)
	AddNotification(ctx context.Context, title, message string, typ model.NotificationType) (*model.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id string) error
	MarkAllNotificationsAsRead(ctx context.Context) error
	UnreadNotifications(ctx context.Context) (int, error)

	// Community feed operations
	Posts(ctx context.Context) ([]model.CommunityPost, error)
	AddCommunityPost(ctx context.Context, content string) (*model.CommunityPost, error)
	LikePost(ctx context.Context, postID string) error

	// FormatCurrency renders an amount for display. Pure function exposed
	// from the store for convenience.
	FormatCurrency(amount float64) string

	Close() error
}

// Toaster receives the user-visible side-effect signals mutations emit,
// distinct from their effect on stored collections. Implementations render
// them (CLI, TUI) or record them (tests).
type Toaster interface {
	// Success shows a short success message.
	Success(message string)
	// Show displays a titled toast, used when a notification is created.
	Show(title, message string)
}

// NopToaster discards all toasts.
type NopToaster struct{}

// Success implements Toaster.
func (NopToaster) Success(string) {}

// Show implements Toaster.
func (NopToaster) Show(string, string) {}
