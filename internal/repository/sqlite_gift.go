package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/shopspring/decimal"
)

// giftColumns is the canonical SELECT column list for gifts.
const giftColumns = `id, grandparent_id, grandchild_id, grandchild_name, message,
		corpus, currency, status, risk_profile, rule_type, fallback_ngo_id,
		created_at, updated_at`

// SQLiteGiftRepo implements GiftRepo using a SQLite database.
type SQLiteGiftRepo struct {
	db db.DBTX
}

func NewSQLiteGiftRepo(conn db.DBTX) *SQLiteGiftRepo {
	return &SQLiteGiftRepo{db: conn}
}

func (r *SQLiteGiftRepo) Create(ctx context.Context, g *domain.Gift) error {
	query := `INSERT INTO gifts (id, grandparent_id, grandchild_id, grandchild_name, message,
		corpus, currency, status, risk_profile, rule_type, fallback_ngo_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.GrandparentID,
		g.GrandchildID,
		g.GrandchildName,
		g.Message,
		g.Corpus.String(),
		string(g.Currency),
		string(g.Status),
		string(g.RiskProfile),
		string(g.RuleType),
		nullableStringToValue(g.FallbackNGOID),
		g.CreatedAt.UTC().Format(time.RFC3339),
		g.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting gift: %w", err)
	}
	return nil
}

func (r *SQLiteGiftRepo) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+giftColumns+` FROM gifts WHERE id = ?`, id)
	return scanGift(row)
}

func (r *SQLiteGiftRepo) ListByGrandparent(ctx context.Context, grandparentID string) ([]*domain.Gift, error) {
	return r.list(ctx, `SELECT `+giftColumns+` FROM gifts WHERE grandparent_id = ? ORDER BY created_at`, grandparentID)
}

func (r *SQLiteGiftRepo) ListByGrandchild(ctx context.Context, grandchildID string) ([]*domain.Gift, error) {
	return r.list(ctx, `SELECT `+giftColumns+` FROM gifts WHERE grandchild_id = ? ORDER BY created_at`, grandchildID)
}

func (r *SQLiteGiftRepo) list(ctx context.Context, query string, arg any) ([]*domain.Gift, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing gifts: %w", err)
	}
	defer rows.Close()

	var gifts []*domain.Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gifts: %w", err)
	}
	return gifts, nil
}

func (r *SQLiteGiftRepo) Update(ctx context.Context, g *domain.Gift) error {
	query := `UPDATE gifts SET grandchild_name = ?, message = ?, corpus = ?, currency = ?,
		status = ?, risk_profile = ?, rule_type = ?, fallback_ngo_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.GrandchildName,
		g.Message,
		g.Corpus.String(),
		string(g.Currency),
		string(g.Status),
		string(g.RiskProfile),
		string(g.RuleType),
		nullableStringToValue(g.FallbackNGOID),
		g.UpdatedAt.UTC().Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating gift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating gift: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("gift: %w", ErrNotFound)
	}
	return nil
}

// Delete removes a gift. Foreign keys cascade the delete to milestones,
// media messages, and the override window; notifications are untouched.
func (r *SQLiteGiftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting gift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting gift: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("gift: %w", ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGift(s scanner) (*domain.Gift, error) {
	var g domain.Gift
	var grandchildName, message sql.NullString
	var corpus, currency, status, riskProfile, ruleType, createdAt, updatedAt string
	var fallbackNGO sql.NullString

	err := s.Scan(
		&g.ID, &g.GrandparentID, &g.GrandchildID, &grandchildName, &message,
		&corpus, &currency, &status, &riskProfile, &ruleType, &fallbackNGO,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gift: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning gift: %w", err)
	}

	amount, err := decimal.NewFromString(corpus)
	if err != nil {
		return nil, fmt.Errorf("parsing gift corpus %q: %w", corpus, err)
	}

	g.GrandchildName = grandchildName.String
	g.Message = message.String
	g.Corpus = amount
	g.Currency = domain.Currency(currency)
	g.Status = domain.GiftStatus(status)
	g.RiskProfile = domain.RiskProfile(riskProfile)
	g.RuleType = domain.RuleType(ruleType)
	g.FallbackNGOID = nullableString(fallbackNGO)
	g.CreatedAt = parseTime(createdAt)
	g.UpdatedAt = parseTime(updatedAt)
	return &g, nil
}
