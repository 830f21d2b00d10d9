package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func newTestStore(t *testing.T) (*Store, *cli.Recorder) {
	t.Helper()

	rec := &cli.Recorder{}
	store, err := Open(context.Background(), WithToaster(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, rec
}

func TestOpenSeedsSampleData(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	expenses, err := store.Expenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 5)
	assert.Equal(t, "t1", expenses[0].ID, "newest seeded expense first")
	assert.Equal(t, "Grocery Shopping", expenses[0].Title)

	bills, err := store.Bills(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 5)
	for _, b := range bills {
		assert.Equal(t, model.BillPending, b.Status)
	}

	goals, err := store.Goals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 4)
	assert.Equal(t, "Emergency Fund", goals[0].Title)
	assert.InDelta(t, 75000, goals[0].CurrentAmount, 0.001)

	notifications, err := store.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "n1", notifications[0].ID, "newest seeded notification first")

	posts, err := store.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestStoreInstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestStore(t)
	b, _ := newTestStore(t)

	_, err := a.AddExpense(ctx, "Books", 700, "Shopping", "")
	require.NoError(t, err)

	aExpenses, err := a.Expenses(ctx)
	require.NoError(t, err)
	bExpenses, err := b.Expenses(ctx)
	require.NoError(t, err)

	assert.Len(t, aExpenses, 6)
	assert.Len(t, bExpenses, 5, "second store must not see the first store's state")
}

func TestNilContextRejected(t *testing.T) {
	store, _ := newTestStore(t)

	//nolint:staticcheck // deliberately passing a nil context
	_, err := store.Expenses(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestFormatCurrency(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, "₹1,20,000", store.FormatCurrency(120000))
}
