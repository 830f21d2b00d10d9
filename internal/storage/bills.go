package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// billPaymentCategory is the budget category every paid bill's generated
// expense is filed under, regardless of what the bill was actually for.
// TODO: file under a per-bill category once product confirms the intent.
const billPaymentCategory = "Utilities"

// Bills returns every bill ordered by due date. Stored status is only ever
// Pending or Paid; overdue classification happens at display time via
// Bill.EffectiveStatus.
func (s *Store) Bills(ctx context.Context) ([]model.Bill, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, amount, due_date, status
		FROM bills
		ORDER BY due_date, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bills []model.Bill
	for rows.Next() {
		var b model.Bill
		var status string
		if err := rows.Scan(&b.ID, &b.Title, &b.Amount, &b.DueDate, &status); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		b.Status = model.BillStatus(status)
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bills: %w", err)
	}

	return bills, nil
}

// MarkBillAsPaid transitions a pending bill to Paid and, in the same
// transaction, records the payment as an expense titled "Paid: <bill>"
// under the Utilities category with the full AddExpense semantics. Unknown
// ids and already-paid bills are silent no-ops: calling this twice on the
// same bill never produces a duplicate expense.
func (s *Store) MarkBillAsPaid(ctx context.Context, billID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var title string
	var amount float64
	err = tx.QueryRowContext(ctx,
		`SELECT title, amount FROM bills WHERE id = ? AND status = ?`,
		billID, string(model.BillPending)).Scan(&title, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		// Not found or already paid.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up bill: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bills SET status = ? WHERE id = ?`,
		string(model.BillPaid), billID); err != nil {
		return fmt.Errorf("failed to update bill status: %w", err)
	}

	expense, notif, err := s.addExpenseTx(ctx, tx, "Paid: "+title, amount, billPaymentCategory, "")
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bill payment: %w", err)
	}

	s.emitExpenseEffects(expense, notif)
	s.toaster.Success(fmt.Sprintf("%s marked as paid", title))

	slog.Debug("bill paid", "id", billID, "amount", amount)
	return nil
}
