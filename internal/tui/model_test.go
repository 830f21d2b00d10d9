package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
	"github.com/Shubham-Khatrii/budgetwise/internal/storage"
	"github.com/Shubham-Khatrii/budgetwise/internal/tui/themes"
)

// newTestModel builds a dashboard model over a fresh seeded store and runs
// the initial snapshot load.
func newTestModel(t *testing.T) Model {
	t.Helper()

	recorder := &cli.Recorder{}
	store, err := storage.Open(context.Background(), storage.WithToaster(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := newModel(store, recorder, themes.Default)
	msg := m.loadSnapshot()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadsSnapshot(t *testing.T) {
	m := newTestModel(t)

	assert.True(t, m.ready)
	assert.Len(t, m.snapshot.expenses, 5)
	assert.Len(t, m.snapshot.bills, 5)
	assert.Len(t, m.snapshot.goals, 4)
	assert.Len(t, m.snapshot.notifications, 3)
	assert.Len(t, m.snapshot.posts, 3)
	assert.Equal(t, 2, m.snapshot.unread)
	require.NotNil(t, m.snapshot.summary)
	assert.InDelta(t, 186000, m.snapshot.summary.MonthlyBudget, 0.001)
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, TabOverview, m.tab)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabExpenses, m.tab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, TabOverview, m.tab)

	// Wraps backwards to the last tab.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, TabFeed, m.tab)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabGoals

	updated, _ := m.Update(keyPress('k'))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor[TabGoals])

	for i := 0; i < 10; i++ {
		updated, _ = m.Update(keyPress('j'))
		m = updated.(Model)
	}
	assert.Equal(t, len(m.snapshot.goals)-1, m.cursor[TabGoals])
}

func TestPayBillFromBillsTab(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabBills

	first := m.snapshot.bills[0]
	require.Equal(t, model.BillPending, first.Status)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	require.NotEmpty(t, done.toasts)

	updated, reload := m.Update(done)
	m = updated.(Model)
	require.NotNil(t, reload)

	updated, _ = m.Update(reload())
	m = updated.(Model)

	var paid *model.Bill
	for i := range m.snapshot.bills {
		if m.snapshot.bills[i].ID == first.ID {
			paid = &m.snapshot.bills[i]
		}
	}
	require.NotNil(t, paid)
	assert.Equal(t, model.BillPaid, paid.Status)
}

func TestMarkAllReadFromNotificationsTab(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabNotifications
	require.Equal(t, 2, m.snapshot.unread)

	_, cmd := m.Update(keyPress('r'))
	require.NotNil(t, cmd)

	done, ok := cmd().(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	require.Len(t, done.toasts, 1)
	assert.Equal(t, "All notifications marked as read", done.toasts[0].Message)

	updated, reload := m.Update(done)
	m = updated.(Model)
	updated, _ = m.Update(reload())
	m = updated.(Model)
	assert.Equal(t, 0, m.snapshot.unread)
}

func TestContributionEntry(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabGoals

	updated, _ := m.Update(keyPress('a'))
	m = updated.(Model)
	require.True(t, m.entering)

	for _, r := range "5000" {
		updated, _ = m.Update(keyPress(r))
		m = updated.(Model)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.False(t, m.entering)
	require.NotNil(t, cmd)

	done, ok := cmd().(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	updated, reload := m.Update(done)
	m = updated.(Model)
	updated, _ = m.Update(reload())
	m = updated.(Model)

	assert.InDelta(t, 80000, m.snapshot.goals[0].CurrentAmount, 0.001)
}

func TestContributionRejectsBadAmount(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabGoals

	updated, _ := m.Update(keyPress('a'))
	m = updated.(Model)

	for _, r := range "abc" {
		updated, _ = m.Update(keyPress(r))
		m = updated.(Model)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	done, ok := cmd().(actionDoneMsg)
	require.True(t, ok)
	assert.Error(t, done.err)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestViewRendersEachTab(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		name string
		tab  Tab
		want string
	}{
		{name: "overview shows totals", tab: TabOverview, want: "This Month"},
		{name: "expenses lists seeds", tab: TabExpenses, want: "Grocery Shopping"},
		{name: "bills lists seeds", tab: TabBills, want: "Electricity Bill"},
		{name: "goals lists seeds", tab: TabGoals, want: "Emergency Fund"},
		{name: "notifications lists seeds", tab: TabNotifications, want: "Budget Alert"},
		{name: "feed lists seeds", tab: TabFeed, want: "Priya Sharma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.tab = tt.tab
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('?'))
	m = updated.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	updated, _ = m.Update(keyPress('?'))
	m = updated.(Model)
	assert.False(t, m.showHelp)
}
