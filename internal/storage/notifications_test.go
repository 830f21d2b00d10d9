package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func TestUnreadNotificationsIsDerived(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	// Seed data ships two unread notifications.
	count, err := store.UnreadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = store.AddNotification(ctx, "Heads up", "something happened", model.NotificationInfo)
	require.NoError(t, err)

	count, err = store.UnreadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAddNotification(t *testing.T) {
	ctx := context.Background()
	store, rec := newTestStore(t)

	notif, err := store.AddNotification(ctx, "Bill Reminder", "Water bill due in 2 days", model.NotificationWarning)
	require.NoError(t, err)
	assert.NotEmpty(t, notif.ID)
	assert.False(t, notif.Read)

	notifications, err := store.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, notif.ID, notifications[0].ID, "newest notification first")
	assert.Equal(t, model.NotificationWarning, notifications[0].Type)

	toasts := rec.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Bill Reminder", toasts[0].Title)
	assert.Equal(t, "Water bill due in 2 days", toasts[0].Message)
}

func TestMarkNotificationAsRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the matching notification", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.MarkNotificationAsRead(ctx, "n1"))

		count, err := store.UnreadNotifications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.MarkNotificationAsRead(ctx, "missing"))

		count, err := store.UnreadNotifications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("already read stays read", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.MarkNotificationAsRead(ctx, "n3"))

		count, err := store.UnreadNotifications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestMarkAllNotificationsAsRead(t *testing.T) {
	ctx := context.Background()

	t.Run("zeroes the unread count", func(t *testing.T) {
		store, rec := newTestStore(t)

		require.NoError(t, store.MarkAllNotificationsAsRead(ctx))

		count, err := store.UnreadNotifications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		toasts := rec.Drain()
		require.Len(t, toasts, 1)
		assert.Equal(t, "All notifications marked as read", toasts[0].Message)
	})

	t.Run("toasts even when nothing was unread", func(t *testing.T) {
		store, rec := newTestStore(t)

		require.NoError(t, store.MarkAllNotificationsAsRead(ctx))
		rec.Drain()

		require.NoError(t, store.MarkAllNotificationsAsRead(ctx))
		assert.Len(t, rec.Drain(), 1)
	})
}
