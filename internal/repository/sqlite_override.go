package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
)

// SQLiteOverrideWindowRepo implements OverrideWindowRepo using a SQLite
// database. Each gift has at most one window, enforced by a UNIQUE
// constraint on gift_id.
type SQLiteOverrideWindowRepo struct {
	db db.DBTX
}

func NewSQLiteOverrideWindowRepo(conn db.DBTX) *SQLiteOverrideWindowRepo {
	return &SQLiteOverrideWindowRepo{db: conn}
}

func (r *SQLiteOverrideWindowRepo) Create(ctx context.Context, w *domain.OverrideWindow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO override_windows (id, gift_id, created_at, expires_at, status)
		 VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.GiftID,
		w.CreatedAt.UTC().Format(time.RFC3339),
		w.ExpiresAt.UTC().Format(time.RFC3339),
		string(w.Status))
	if err != nil {
		return fmt.Errorf("inserting override window: %w", err)
	}
	return nil
}

func (r *SQLiteOverrideWindowRepo) GetByGift(ctx context.Context, giftID string) (*domain.OverrideWindow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, gift_id, created_at, expires_at, status
		 FROM override_windows WHERE gift_id = ?`, giftID)

	var w domain.OverrideWindow
	var createdAt, expiresAt, status string
	if err := row.Scan(&w.ID, &w.GiftID, &createdAt, &expiresAt, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("override window: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning override window: %w", err)
	}
	w.CreatedAt = parseTime(createdAt)
	w.ExpiresAt = parseTime(expiresAt)
	w.Status = domain.OverrideStatus(status)
	return &w, nil
}

func (r *SQLiteOverrideWindowRepo) Update(ctx context.Context, w *domain.OverrideWindow) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE override_windows SET expires_at = ?, status = ? WHERE id = ?`,
		w.ExpiresAt.UTC().Format(time.RFC3339), string(w.Status), w.ID)
	if err != nil {
		return fmt.Errorf("updating override window: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating override window: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("override window: %w", ErrNotFound)
	}
	return nil
}
