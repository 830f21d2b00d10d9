package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Goals returns every goal in creation order.
func (s *Store) Goals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, target_amount, current_amount, due_date, priority, category, icon
		FROM goals
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var priority, category string
		if err := rows.Scan(&g.ID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &g.DueDate, &priority, &category, &g.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		g.Priority = model.GoalPriority(priority)
		g.Category = model.GoalCategory(category)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// AddGoal creates a goal starting at zero saved and appends it to the goal
// list. Emits a success toast and a "New Goal Created" notification.
func (s *Store) AddGoal(ctx context.Context, title string, targetAmount float64, dueDate time.Time, priority model.GoalPriority, category model.GoalCategory, icon string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:           uuid.NewString(),
		Title:        title,
		TargetAmount: targetAmount,
		DueDate:      dueDate,
		Priority:     priority,
		Category:     category,
		Icon:         icon,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO goals (id, title, target_amount, current_amount, due_date, priority, category, icon)
		 VALUES (?, ?, ?, 0, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.TargetAmount, goal.DueDate, string(goal.Priority), string(goal.Category), goal.Icon); err != nil {
		return nil, fmt.Errorf("failed to insert goal: %w", err)
	}

	notif, err := s.insertNotificationTx(ctx, tx,
		"New Goal Created",
		fmt.Sprintf("You created a new goal: %s with target %s", title, currency.Format(targetAmount)),
		model.NotificationSuccess)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit goal: %w", err)
	}

	s.toaster.Success(fmt.Sprintf("%s added to your financial goals", title))
	s.toaster.Show(notif.Title, notif.Message)

	slog.Debug("created goal", "id", goal.ID, "target", goal.TargetAmount)
	return goal, nil
}

// AddContributionToGoal adds amount to the goal's saved total. There is no
// clamp at the target; goals can be over-funded. When the goal exists a
// success toast and a "Goal Contribution" notification are emitted; an
// unknown id does nothing at all.
func (s *Store) AddContributionToGoal(ctx context.Context, goalID string, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var title string
	err = tx.QueryRowContext(ctx, `SELECT title FROM goals WHERE id = ?`, goalID).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up goal: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE goals SET current_amount = current_amount + ? WHERE id = ?`,
		amount, goalID); err != nil {
		return fmt.Errorf("failed to update goal amount: %w", err)
	}

	notif, err := s.insertNotificationTx(ctx, tx,
		"Goal Contribution",
		fmt.Sprintf("You added %s to your %s goal", currency.Format(amount), title),
		model.NotificationSuccess)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contribution: %w", err)
	}

	s.toaster.Success(fmt.Sprintf("Added %s to %s", currency.Format(amount), title))
	s.toaster.Show(notif.Title, notif.Message)

	slog.Debug("goal contribution", "id", goalID, "amount", amount)
	return nil
}
