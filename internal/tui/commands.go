package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 10 * time.Second

// loadSnapshot reads everything the dashboard renders in one command.
func (m Model) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		var snap snapshot
		var err error

		if snap.summary, err = m.store.BudgetSummary(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.expenses, err = m.store.Expenses(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.bills, err = m.store.Bills(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.goals, err = m.store.Goals(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.notifications, err = m.store.Notifications(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.posts, err = m.store.Posts(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}
		if snap.unread, err = m.store.UnreadNotifications(ctx); err != nil {
			return snapshotLoadedMsg{err: err}
		}

		return snapshotLoadedMsg{snapshot: snap}
	}
}

// mutate runs a store mutation and collects the toasts it emitted.
func (m Model) mutate(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{toasts: m.recorder.Drain()}
	}
}

func (m Model) payBill(id string) tea.Cmd {
	return m.mutate(func(ctx context.Context) error {
		return m.store.MarkBillAsPaid(ctx, id)
	})
}

func (m Model) markRead(id string) tea.Cmd {
	return m.mutate(func(ctx context.Context) error {
		return m.store.MarkNotificationAsRead(ctx, id)
	})
}

func (m Model) markAllRead() tea.Cmd {
	return m.mutate(func(ctx context.Context) error {
		return m.store.MarkAllNotificationsAsRead(ctx)
	})
}

func (m Model) likePost(id string) tea.Cmd {
	return m.mutate(func(ctx context.Context) error {
		return m.store.LikePost(ctx, id)
	})
}

func (m Model) contribute(goalID, raw string) tea.Cmd {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount <= 0 {
		return func() tea.Msg {
			return actionDoneMsg{err: fmt.Errorf("invalid amount %q", raw)}
		}
	}
	return m.mutate(func(ctx context.Context) error {
		return m.store.AddContributionToGoal(ctx, goalID, amount)
	})
}
