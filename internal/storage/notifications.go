package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Notifications returns every notification, newest first.
func (s *Store) Notifications(ctx context.Context) ([]model.Notification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, message, date, read, type
		FROM notifications
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		var typ string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Date, &n.Read, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Type = model.NotificationType(typ)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// AddNotification creates an unread notification dated today and prepends
// it to the list, emitting a toast with its title and message.
func (s *Store) AddNotification(ctx context.Context, title, message string, typ model.NotificationType) (*model.Notification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	notif, err := s.insertNotificationTx(ctx, tx, title, message, typ)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit notification: %w", err)
	}

	s.toaster.Show(notif.Title, notif.Message)
	return notif, nil
}

// insertNotificationTx creates the notification row inside an open
// transaction. Callers toast it after commit.
func (s *Store) insertNotificationTx(ctx context.Context, tx *sql.Tx, title, message string, typ model.NotificationType) (*model.Notification, error) {
	notif := &model.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Date:    time.Now(),
		Type:    typ,
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (id, title, message, date, read, type) VALUES (?, ?, ?, ?, 0, ?)`,
		notif.ID, notif.Title, notif.Message, notif.Date, string(notif.Type)); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return notif, nil
}

// MarkNotificationAsRead marks one notification read. Unknown ids are a
// silent no-op.
func (s *Store) MarkNotificationAsRead(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllNotificationsAsRead marks every notification read and emits a
// success toast, even when nothing was unread.
func (s *Store) MarkAllNotificationsAsRead(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1`); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	s.toaster.Success("All notifications marked as read")
	return nil
}

// UnreadNotifications counts notifications with read = false. Derived on
// every call, never stored.
func (s *Store) UnreadNotifications(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE read = 0`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
