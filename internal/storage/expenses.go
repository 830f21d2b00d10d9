package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// LargeExpenseThreshold is the amount (in whole rupees, not paise) above
// which an expense synthesizes a "Large Expense" notification. Strictly
// greater than; an expense of exactly 5000 stays quiet.
const LargeExpenseThreshold = 5000

// AddExpense records a new expense dated today. If a budget category with a
// matching name exists its running spent total is incremented; if not the
// expense is still recorded and no aggregate changes. Amounts over
// LargeExpenseThreshold additionally create a "Large Expense" notification.
// A success toast is always emitted.
//
// The store does not validate input; forms are expected to reject empty
// titles and non-positive amounts before calling.
func (s *Store) AddExpense(ctx context.Context, title string, amount float64, category, description string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	expense, notif, err := s.addExpenseTx(ctx, tx, title, amount, category, description)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	s.emitExpenseEffects(expense, notif)
	return expense, nil
}

// addExpenseTx does the collection and aggregate work inside an open
// transaction so that MarkBillAsPaid can reuse it atomically. The returned
// notification (nil unless the large-expense rule fired) has already been
// inserted; the caller toasts it after commit.
func (s *Store) addExpenseTx(ctx context.Context, tx *sql.Tx, title string, amount float64, category, description string) (*model.Expense, *model.Notification, error) {
	expense := &model.Expense{
		ID:          uuid.NewString(),
		Title:       title,
		Amount:      amount,
		Category:    category,
		Date:        time.Now(),
		Description: description,
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, category, date, description) VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Title, expense.Amount, expense.Category, expense.Date, expense.Description)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	// Incremental aggregate maintenance. No matching category is fine: the
	// expense stands on its own and no total moves.
	if _, err := tx.ExecContext(ctx,
		`UPDATE budget_categories SET spent = spent + ? WHERE name = ?`,
		amount, category); err != nil {
		return nil, nil, fmt.Errorf("failed to update category spent: %w", err)
	}

	var notif *model.Notification
	if amount > LargeExpenseThreshold {
		notif, err = s.insertNotificationTx(ctx, tx,
			"Large Expense",
			fmt.Sprintf("You spent %s on %s", currency.Format(amount), title),
			model.NotificationInfo)
		if err != nil {
			return nil, nil, err
		}
	}

	slog.Debug("recorded expense",
		"id", expense.ID,
		"amount", expense.Amount,
		"category", expense.Category)

	return expense, notif, nil
}

func (s *Store) emitExpenseEffects(e *model.Expense, notif *model.Notification) {
	if notif != nil {
		s.toaster.Show(notif.Title, notif.Message)
	}
	s.toaster.Success(fmt.Sprintf("Added %s expense for %s", currency.Format(e.Amount), e.Title))
}

// Expenses returns every expense, newest first. The ordering is significant
// and preserved across all mutations.
func (s *Store) Expenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, amount, category, date, description
		FROM expenses
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// FormatCurrency renders an amount the way the UI displays money. Pure
// convenience passthrough with no state dependency.
func (s *Store) FormatCurrency(amount float64) string {
	return currency.Format(amount)
}
