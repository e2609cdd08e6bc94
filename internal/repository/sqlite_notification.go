package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
)

const notificationColumns = `id, recipient_id, role, event_type, message, is_read, action_url, created_at`

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID,
		n.RecipientID,
		string(n.Role),
		n.EventType,
		n.Message,
		boolToInt(n.Read),
		nullableStringToValue(n.ActionURL),
		n.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *SQLiteNotificationRepo) ListUnreadByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		 WHERE recipient_id = ? AND is_read = 0
		 ORDER BY created_at DESC`, recipientID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("notification: %w", ErrNotFound)
	}
	return nil
}

func scanNotification(s scanner) (*domain.Notification, error) {
	var n domain.Notification
	var role, createdAt string
	var isRead int
	var actionURL sql.NullString

	err := s.Scan(&n.ID, &n.RecipientID, &role, &n.EventType, &n.Message, &isRead, &actionURL, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("notification: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning notification: %w", err)
	}
	n.Role = domain.UserRole(role)
	n.Read = intToBool(isRead)
	n.ActionURL = nullableString(actionURL)
	n.CreatedAt = parseTime(createdAt)
	return &n, nil
}
