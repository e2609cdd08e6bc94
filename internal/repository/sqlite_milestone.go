package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (id, gift_id, type, percentage, status) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.GiftID, m.Type, m.Percentage, string(m.Status))
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, gift_id, type, percentage, status FROM milestones WHERE id = ?`, id)

	var m domain.Milestone
	var status string
	if err := row.Scan(&m.ID, &m.GiftID, &m.Type, &m.Percentage, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("milestone: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	m.Status = domain.MilestoneStatus(status)
	return &m, nil
}

func (r *SQLiteMilestoneRepo) ListByGift(ctx context.Context, giftID string) ([]*domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gift_id, type, percentage, status FROM milestones WHERE gift_id = ? ORDER BY rowid`, giftID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var status string
		if err := rows.Scan(&m.ID, &m.GiftID, &m.Type, &m.Percentage, &status); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.Status = domain.MilestoneStatus(status)
		milestones = append(milestones, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET type = ?, percentage = ?, status = ? WHERE id = ?`,
		m.Type, m.Percentage, string(m.Status), m.ID)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("milestone: %w", ErrNotFound)
	}
	return nil
}
