package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/service"
	"github.com/Shubham-Khatrii/budgetwise/internal/tui/themes"
)

// Model holds the dashboard TUI state.
type Model struct {
	store    service.Store
	recorder *cli.Recorder
	theme    themes.Theme
	keymap   KeyMap

	snapshot snapshot
	toasts   []cli.Toast
	cursor   map[Tab]int
	amount   textinput.Model

	lastError error
	now       func() time.Time

	tab      Tab
	width    int
	height   int
	entering bool
	showHelp bool
	ready    bool
	quitting bool
}

// newModel creates a dashboard model over the given store. The recorder must
// be the store's Toaster so mutations feed the status line.
func newModel(store service.Store, recorder *cli.Recorder, theme themes.Theme) Model {
	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.Prompt = "₹ "
	amount.CharLimit = 12
	amount.Width = 14

	return Model{
		store:    store,
		recorder: recorder,
		theme:    theme,
		keymap:   DefaultKeyMap(),
		cursor:   make(map[Tab]int),
		amount:   amount,
		now:      time.Now,
	}
}

// Init loads the initial snapshot.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.loadSnapshot())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.updateAmountEntry(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.ready = true
		m.clampCursor()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.toasts = msg.toasts
		return m, m.loadSnapshot()
	}

	return m, nil
}

// handleKey processes key presses outside amount-entry mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap
	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, k.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, k.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil

	case key.Matches(msg, k.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil

	case key.Matches(msg, k.Up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
		return m, nil

	case key.Matches(msg, k.Down):
		if m.cursor[m.tab] < m.rowCount(m.tab)-1 {
			m.cursor[m.tab]++
		}
		return m, nil

	case key.Matches(msg, k.Refresh):
		return m, m.loadSnapshot()

	case key.Matches(msg, k.ReadAll):
		if m.tab == TabNotifications {
			return m, m.markAllRead()
		}
		return m, nil

	case key.Matches(msg, k.Contribute):
		if m.tab == TabGoals && len(m.snapshot.goals) > 0 {
			m.entering = true
			m.amount.SetValue("")
			return m, m.amount.Focus()
		}
		return m, nil

	case key.Matches(msg, k.Select):
		return m.handleSelect()
	}

	return m, nil
}

// handleSelect runs the per-tab action on the highlighted row.
func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	i := m.cursor[m.tab]
	switch m.tab {
	case TabBills:
		if i < len(m.snapshot.bills) {
			return m, m.payBill(m.snapshot.bills[i].ID)
		}
	case TabNotifications:
		if i < len(m.snapshot.notifications) {
			return m, m.markRead(m.snapshot.notifications[i].ID)
		}
	case TabFeed:
		if i < len(m.snapshot.posts) {
			return m, m.likePost(m.snapshot.posts[i].ID)
		}
	}
	return m, nil
}

// updateAmountEntry handles keys while the contribution input is open.
func (m Model) updateAmountEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.amount.Blur()
		return m, nil
	case "enter":
		m.entering = false
		m.amount.Blur()
		i := m.cursor[TabGoals]
		if i < len(m.snapshot.goals) {
			return m, m.contribute(m.snapshot.goals[i].ID, m.amount.Value())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

// rowCount returns how many selectable rows the tab has.
func (m Model) rowCount(tab Tab) int {
	switch tab {
	case TabExpenses:
		return len(m.snapshot.expenses)
	case TabBills:
		return len(m.snapshot.bills)
	case TabGoals:
		return len(m.snapshot.goals)
	case TabNotifications:
		return len(m.snapshot.notifications)
	case TabFeed:
		return len(m.snapshot.posts)
	default:
		return 0
	}
}

// clampCursor keeps cursors valid after a snapshot reload shrinks a list.
func (m *Model) clampCursor() {
	for tab, i := range m.cursor {
		if n := m.rowCount(tab); i >= n {
			if n == 0 {
				m.cursor[tab] = 0
			} else {
				m.cursor[tab] = n - 1
			}
		}
	}
}
