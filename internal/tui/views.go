package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

const progressWidth = 20

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.theme.Subtitle.Render("Loading dashboard...")
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabOverview:
		b.WriteString(m.renderOverview())
	case TabExpenses:
		b.WriteString(m.renderExpenses())
	case TabBills:
		b.WriteString(m.renderBills())
	case TabGoals:
		b.WriteString(m.renderGoals())
	case TabNotifications:
		b.WriteString(m.renderNotifications())
	case TabFeed:
		b.WriteString(m.renderFeed())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderTabs() string {
	labels := make([]string, 0, int(tabCount))
	for t := TabOverview; t < tabCount; t++ {
		label := t.String()
		if t == TabNotifications && m.snapshot.unread > 0 {
			label = fmt.Sprintf("%s (%d)", label, m.snapshot.unread)
		}
		if t == m.tab {
			labels = append(labels, m.theme.TabActive.Render(label))
		} else {
			labels = append(labels, m.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (m Model) renderOverview() string {
	var b strings.Builder
	snap := m.snapshot

	b.WriteString(m.theme.Title.Render("💰 This Month"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Budget %s   Spent %s   Remaining %s\n\n",
		m.theme.Bold.Render(currency.Format(snap.summary.MonthlyBudget)),
		m.theme.Bold.Render(currency.Format(snap.summary.TotalSpent)),
		m.remainingStyle().Render(currency.Format(snap.summary.Remaining))))

	for _, c := range snap.summary.Categories {
		b.WriteString(fmt.Sprintf("%s %-15s %s %s\n",
			CategoryIcon(c.Name), c.Name,
			m.renderProgress(c.Spent, c.Budget),
			m.categoryUsage(c)))
	}

	if upcoming := m.upcomingBills(3); len(upcoming) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Title.Render("📅 Upcoming Bills"))
		b.WriteString("\n")
		for _, bill := range upcoming {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n",
				currency.FormatDate(bill.DueDate), bill.Title, currency.Format(bill.Amount)))
		}
	}

	if len(snap.goals) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Title.Render("🎯 Goals"))
		b.WriteString("\n")
		for _, g := range snap.goals {
			b.WriteString(fmt.Sprintf("%s %-20s %s %3.0f%%\n",
				GoalIcon(g.Icon), g.Title,
				m.renderProgress(g.CurrentAmount, g.TargetAmount),
				g.Progress()*100))
		}
	}

	return b.String()
}

func (m Model) renderExpenses() string {
	if len(m.snapshot.expenses) == 0 {
		return m.theme.Subtitle.Render("No expenses recorded yet.")
	}

	var b strings.Builder
	for i, e := range m.snapshot.expenses {
		line := fmt.Sprintf("%s  %-25s %-15s %10s",
			currency.FormatDate(e.Date), e.Title, e.Category, currency.Format(e.Amount))
		b.WriteString(m.renderRow(TabExpenses, i, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderBills() string {
	if len(m.snapshot.bills) == 0 {
		return m.theme.Subtitle.Render("No bills.")
	}

	now := m.now()
	var b strings.Builder
	for i, bill := range m.snapshot.bills {
		status := bill.EffectiveStatus(now)
		line := fmt.Sprintf("%-20s %10s  due %s  %s",
			bill.Title, currency.Format(bill.Amount),
			currency.FormatDate(bill.DueDate),
			m.billStatusStyle(status).Render(string(status)))
		b.WriteString(m.renderRow(TabBills, i, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("Enter pays the highlighted bill."))
	return b.String()
}

func (m Model) renderGoals() string {
	if len(m.snapshot.goals) == 0 {
		return m.theme.Subtitle.Render("No goals yet.")
	}

	var b strings.Builder
	for i, g := range m.snapshot.goals {
		line := fmt.Sprintf("%s %-20s %s %s / %s  %s",
			GoalIcon(g.Icon), g.Title,
			m.renderProgress(g.CurrentAmount, g.TargetAmount),
			currency.Format(g.CurrentAmount), currency.Format(g.TargetAmount),
			m.theme.Muted.Render(string(g.Priority)))
		b.WriteString(m.renderRow(TabGoals, i, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.entering {
		b.WriteString("Contribute: " + m.amount.View())
	} else {
		b.WriteString(m.theme.Muted.Render("Press a to add money to the highlighted goal."))
	}
	return b.String()
}

func (m Model) renderNotifications() string {
	if len(m.snapshot.notifications) == 0 {
		return m.theme.Subtitle.Render("No notifications.")
	}

	var b strings.Builder
	for i, n := range m.snapshot.notifications {
		marker := "•"
		if n.Read {
			marker = " "
		}
		line := fmt.Sprintf("%s %s %s  %s",
			marker, m.notificationStyle(n.Type).Render(string(n.Type)),
			n.Title, m.theme.Muted.Render(n.Message))
		b.WriteString(m.renderRow(TabNotifications, i, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("Enter marks read, r marks all read."))
	return b.String()
}

func (m Model) renderFeed() string {
	if len(m.snapshot.posts) == 0 {
		return m.theme.Subtitle.Render("The feed is quiet.")
	}

	var b strings.Builder
	for i, p := range m.snapshot.posts {
		header := fmt.Sprintf("%s  %s", m.theme.Bold.Render(p.Author.Name), m.theme.Muted.Render(p.Timestamp))
		body := fmt.Sprintf("%s\n%s\n%s", header, p.Content,
			m.theme.Muted.Render(fmt.Sprintf("♥ %d  💬 %d  ↗ %d", p.Likes, p.Comments, p.Shares)))
		if i == m.cursor[TabFeed] {
			b.WriteString(m.theme.BorderedBox.BorderForeground(m.theme.Primary).Render(body))
		} else {
			b.WriteString(m.theme.BorderedBox.Render(body))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted.Render("Enter likes the highlighted post."))
	return b.String()
}

func (m Model) renderStatusLine() string {
	if m.lastError != nil {
		return m.theme.StatusError.Render("✗ " + m.lastError.Error())
	}

	parts := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.Success {
			parts = append(parts, m.theme.StatusSuccess.Render("✓ "+t.Message))
		} else {
			parts = append(parts, m.theme.StatusInfo.Render("🔔 "+t.Title+": "+t.Message))
		}
	}
	if len(parts) == 0 {
		return m.theme.Muted.Render("? for help")
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-14s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted.Render("? to close"))
	return b.String()
}

// renderRow highlights the cursor row of a list tab.
func (m Model) renderRow(tab Tab, i int, line string) string {
	if i == m.cursor[tab] {
		return m.theme.Selected.Render("> " + line)
	}
	return m.theme.Normal.Render("  " + line)
}

// renderProgress draws a fixed-width bar for a current/total pair. Bars cap
// at full even when the value exceeds the total.
func (m Model) renderProgress(current, total float64) string {
	ratio := 0.0
	if total > 0 {
		ratio = current / total
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * progressWidth)
	return m.theme.ProgressFull.Render(strings.Repeat("█", filled)) +
		m.theme.ProgressEmpty.Render(strings.Repeat("░", progressWidth-filled))
}

func (m Model) categoryUsage(c model.BudgetCategory) string {
	usage := fmt.Sprintf("%s / %s", currency.Format(c.Spent), currency.Format(c.Budget))
	if c.OverBudget() {
		return m.theme.StatusError.Render(usage + " (over)")
	}
	return usage
}

// upcomingBills returns the first n unpaid bills in due-date order.
func (m Model) upcomingBills(n int) []model.Bill {
	var out []model.Bill
	for _, b := range m.snapshot.bills {
		if b.Status == model.BillPaid {
			continue
		}
		out = append(out, b)
		if len(out) == n {
			break
		}
	}
	return out
}

func (m Model) remainingStyle() lipgloss.Style {
	if m.snapshot.summary.Remaining < 0 {
		return m.theme.StatusError
	}
	return m.theme.StatusSuccess
}

func (m Model) billStatusStyle(s model.BillStatus) lipgloss.Style {
	switch s {
	case model.BillPaid:
		return m.theme.StatusSuccess
	case model.BillOverdue:
		return m.theme.StatusError
	default:
		return m.theme.StatusWarning
	}
}

func (m Model) notificationStyle(t model.NotificationType) lipgloss.Style {
	switch t {
	case model.NotificationWarning:
		return m.theme.StatusWarning
	case model.NotificationSuccess:
		return m.theme.StatusSuccess
	case model.NotificationError:
		return m.theme.StatusError
	default:
		return m.theme.StatusInfo
	}
}
