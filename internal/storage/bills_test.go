package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func billByID(t *testing.T, store *Store, id string) model.Bill {
	t.Helper()
	bills, err := store.Bills(context.Background())
	require.NoError(t, err)
	for _, b := range bills {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("bill %q not found", id)
	return model.Bill{}
}

func TestMarkBillAsPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("transitions to paid and files one expense under Utilities", func(t *testing.T) {
		store, rec := newTestStore(t)

		bill := billByID(t, store, "b1")
		require.Equal(t, model.BillPending, bill.Status)

		expensesBefore, err := store.Expenses(ctx)
		require.NoError(t, err)

		require.NoError(t, store.MarkBillAsPaid(ctx, "b1"))

		assert.Equal(t, model.BillPaid, billByID(t, store, "b1").Status)

		expenses, err := store.Expenses(ctx)
		require.NoError(t, err)
		require.Len(t, expenses, len(expensesBefore)+1)
		assert.Equal(t, "Paid: Electricity Bill", expenses[0].Title)
		assert.InDelta(t, bill.Amount, expenses[0].Amount, 0.001)
		assert.Equal(t, "Utilities", expenses[0].Category)

		// The payment flows through the normal expense path, so the
		// Utilities running total moves with it.
		summary, err := store.BudgetSummary(ctx)
		require.NoError(t, err)
		assert.InDelta(t, bill.Amount, categoryByName(t, summary, "Utilities").Spent, 0.001)

		toasts := rec.Drain()
		require.Len(t, toasts, 2)
		assert.Equal(t, "Added ₹3,200 expense for Paid: Electricity Bill", toasts[0].Message)
		assert.Equal(t, "Electricity Bill marked as paid", toasts[1].Message)
	})

	t.Run("second call on a paid bill is a full no-op", func(t *testing.T) {
		store, rec := newTestStore(t)

		require.NoError(t, store.MarkBillAsPaid(ctx, "b2"))
		rec.Drain()

		expensesAfterFirst, err := store.Expenses(ctx)
		require.NoError(t, err)

		require.NoError(t, store.MarkBillAsPaid(ctx, "b2"))

		expensesAfterSecond, err := store.Expenses(ctx)
		require.NoError(t, err)
		assert.Len(t, expensesAfterSecond, len(expensesAfterFirst), "no duplicate expense")
		assert.Empty(t, rec.Drain(), "no side effects on the no-op")
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		store, rec := newTestStore(t)

		require.NoError(t, store.MarkBillAsPaid(ctx, "nope"))
		assert.Empty(t, rec.Drain())
	})

	t.Run("paying a large bill fires the large expense rule", func(t *testing.T) {
		store, _ := newTestStore(t)

		// Seed bills are all under the threshold; create a big one through
		// the table directly to exercise the coupled path.
		_, err := store.db.ExecContext(ctx,
			`INSERT INTO bills (id, title, amount, due_date, status) VALUES ('bX', 'Annual Insurance', 18000, date('now'), 'Pending')`)
		require.NoError(t, err)

		countBefore := notificationCount(t, store)
		require.NoError(t, store.MarkBillAsPaid(ctx, "bX"))

		notifications, err := store.Notifications(ctx)
		require.NoError(t, err)
		require.Len(t, notifications, countBefore+1)
		assert.Equal(t, "Large Expense", notifications[0].Title)
	})
}
