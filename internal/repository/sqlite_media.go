package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
)

// SQLiteMediaRepo implements MediaRepo using a SQLite database.
type SQLiteMediaRepo struct {
	db db.DBTX
}

func NewSQLiteMediaRepo(conn db.DBTX) *SQLiteMediaRepo {
	return &SQLiteMediaRepo{db: conn}
}

func (r *SQLiteMediaRepo) Create(ctx context.Context, m *domain.MediaMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO media_messages (id, gift_id, uploader_id, type, file_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.GiftID, m.UploaderID, string(m.Type), m.FilePath,
		m.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting media message: %w", err)
	}
	return nil
}

func (r *SQLiteMediaRepo) GetByID(ctx context.Context, id string) (*domain.MediaMessage, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, gift_id, uploader_id, type, file_path, created_at
		 FROM media_messages WHERE id = ?`, id)

	var m domain.MediaMessage
	var mediaType, createdAt string
	if err := row.Scan(&m.ID, &m.GiftID, &m.UploaderID, &mediaType, &m.FilePath, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("media message: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning media message: %w", err)
	}
	m.Type = domain.MediaType(mediaType)
	m.CreatedAt = parseTime(createdAt)
	return &m, nil
}

func (r *SQLiteMediaRepo) ListByGift(ctx context.Context, giftID string) ([]*domain.MediaMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gift_id, uploader_id, type, file_path, created_at
		 FROM media_messages WHERE gift_id = ? ORDER BY created_at`, giftID)
	if err != nil {
		return nil, fmt.Errorf("listing media messages: %w", err)
	}
	defer rows.Close()

	var media []*domain.MediaMessage
	for rows.Next() {
		var m domain.MediaMessage
		var mediaType, createdAt string
		if err := rows.Scan(&m.ID, &m.GiftID, &m.UploaderID, &mediaType, &m.FilePath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning media message: %w", err)
		}
		m.Type = domain.MediaType(mediaType)
		m.CreatedAt = parseTime(createdAt)
		media = append(media, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating media messages: %w", err)
	}
	return media, nil
}
