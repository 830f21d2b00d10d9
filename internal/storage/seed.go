package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Seed sample data. Ids are fixed literals so the demo state is stable
// across runs; entities created at runtime get fresh uuids instead.
//
// Category spent figures equal the sums of the seeded expenses that match
// them, so the running-total invariant holds from the first read.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var seedBudgetCategories = []model.BudgetCategory{
	{Name: "Housing", Spent: 120000, Budget: 150000, Color: "#0EA5E9"},
	{Name: "Food", Spent: 12837, Budget: 12000, Color: "#F97316"},
	{Name: "Transportation", Spent: 1250, Budget: 8000, Color: "#8B5CF6"},
	{Name: "Entertainment", Spent: 0, Budget: 6000, Color: "#D946EF"},
	{Name: "Utilities", Spent: 0, Budget: 10000, Color: "#10B981"},
}

// Oldest first; readers return newest first.
var seedExpenses = []model.Expense{
	{ID: "t5", Title: "Dinner with Friends", Amount: 3825, Category: "Food", Date: day(2025, time.April, 27)},
	{ID: "t4", Title: "Auto to Work", Amount: 1250, Category: "Transportation", Date: day(2025, time.April, 28)},
	{ID: "t3", Title: "Chai Coffee", Amount: 580, Category: "Food", Date: day(2025, time.April, 28)},
	{ID: "t2", Title: "Monthly Rent", Amount: 120000, Category: "Housing", Date: day(2025, time.April, 25)},
	{ID: "t1", Title: "Grocery Shopping", Amount: 8432, Category: "Food", Date: day(2025, time.April, 28)},
}

var seedBills = []model.Bill{
	{ID: "b1", Title: "Electricity Bill", Amount: 3200, DueDate: day(2025, time.May, 5), Status: model.BillPending},
	{ID: "b2", Title: "Water Bill", Amount: 1450, DueDate: day(2025, time.May, 10), Status: model.BillPending},
	{ID: "b3", Title: "Internet & Cable", Amount: 2899, DueDate: day(2025, time.May, 15), Status: model.BillPending},
	{ID: "b4", Title: "Cell Phone", Amount: 999, DueDate: day(2025, time.May, 22), Status: model.BillPending},
	{ID: "b5", Title: "Streaming Services", Amount: 1497, DueDate: day(2025, time.May, 28), Status: model.BillPending},
}

var seedGoals = []model.Goal{
	{ID: "g1", Title: "Emergency Fund", TargetAmount: 150000, CurrentAmount: 75000, DueDate: day(2025, time.December, 31), Priority: model.PriorityHigh, Category: model.GoalShortTerm, Icon: "piggy-bank"},
	{ID: "g2", Title: "European Vacation", TargetAmount: 50000, CurrentAmount: 27500, DueDate: day(2025, time.November, 15), Priority: model.PriorityMedium, Category: model.GoalShortTerm, Icon: "plane"},
	{ID: "g3", Title: "New Car", TargetAmount: 200000, CurrentAmount: 50000, DueDate: day(2026, time.June, 30), Priority: model.PriorityMedium, Category: model.GoalLongTerm, Icon: "car"},
	{ID: "g4", Title: "Down Payment", TargetAmount: 500000, CurrentAmount: 120000, DueDate: day(2027, time.March, 31), Priority: model.PriorityHigh, Category: model.GoalLongTerm, Icon: "home"},
}

// Oldest first; readers return newest first.
var seedNotifications = []model.Notification{
	{ID: "n3", Title: "Goal Achievement", Message: "Congratulations! You've reached 50% of your Emergency Fund goal", Date: day(2025, time.April, 25), Read: true, Type: model.NotificationSuccess},
	{ID: "n2", Title: "Bill Reminder", Message: "Your electricity bill of ₹3,200 is due tomorrow", Date: day(2025, time.April, 27), Read: false, Type: model.NotificationInfo},
	{ID: "n1", Title: "Budget Alert", Message: "You have exceeded your Food budget for this month by ₹2,500", Date: day(2025, time.April, 28), Read: false, Type: model.NotificationWarning},
}

// Oldest first; readers return newest first.
var seedPosts = []model.CommunityPost{
	{ID: "p3", Author: model.Author{Name: "Ananya Iyer", Initials: "AI"}, Timestamp: "Yesterday", Content: "Finally cleared all my credit card dues. Budgeting actually works!", Likes: 87, Comments: 19, Shares: 8},
	{ID: "p2", Author: model.Author{Name: "Rahul Verma", Initials: "RV"}, Timestamp: "5 hours ago", Content: "Pro tip: brewing chai at home saved me ₹1,500 this month.", Likes: 42, Comments: 11, Shares: 5},
	{ID: "p1", Author: model.Author{Name: "Priya Sharma", Initials: "PS"}, Timestamp: "2 hours ago", Content: "Just hit 50% of my emergency fund goal! Slow and steady wins. 🎉", Likes: 24, Comments: 6, Shares: 2},
}

func (s *Store) seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range seedBudgetCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO budget_categories (name, spent, budget, color) VALUES (?, ?, ?, ?)`,
			c.Name, c.Spent, c.Budget, c.Color); err != nil {
			return fmt.Errorf("failed to seed budget category %q: %w", c.Name, err)
		}
	}

	for _, e := range seedExpenses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, title, amount, category, date, description) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Amount, e.Category, e.Date, e.Description); err != nil {
			return fmt.Errorf("failed to seed expense %q: %w", e.ID, err)
		}
	}

	for _, b := range seedBills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bills (id, title, amount, due_date, status) VALUES (?, ?, ?, ?, ?)`,
			b.ID, b.Title, b.Amount, b.DueDate, string(b.Status)); err != nil {
			return fmt.Errorf("failed to seed bill %q: %w", b.ID, err)
		}
	}

	for _, g := range seedGoals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO goals (id, title, target_amount, current_amount, due_date, priority, category, icon)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.TargetAmount, g.CurrentAmount, g.DueDate, string(g.Priority), string(g.Category), g.Icon); err != nil {
			return fmt.Errorf("failed to seed goal %q: %w", g.ID, err)
		}
	}

	for _, n := range seedNotifications {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (id, title, message, date, read, type) VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Message, n.Date, n.Read, string(n.Type)); err != nil {
			return fmt.Errorf("failed to seed notification %q: %w", n.ID, err)
		}
	}

	for _, p := range seedPosts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO posts (id, author_name, author_avatar, author_initials, timestamp, content, likes, comments, shares)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Author.Name, p.Author.Avatar, p.Author.Initials, p.Timestamp, p.Content, p.Likes, p.Comments, p.Shares); err != nil {
			return fmt.Errorf("failed to seed post %q: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
