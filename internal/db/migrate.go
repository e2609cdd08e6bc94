package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the full schema as CREATE TABLE IF NOT EXISTS statements.
// Corpus amounts are stored as decimal strings to avoid float drift.
// Notifications intentionally carry no foreign key to gifts: they outlive
// the gift that triggered them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL CHECK(role IN ('grandparent','grandchild','trustee')),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS gifts (
		id              TEXT PRIMARY KEY,
		grandparent_id  TEXT NOT NULL REFERENCES users(id),
		grandchild_id   TEXT NOT NULL REFERENCES users(id),
		grandchild_name TEXT,
		message         TEXT,
		corpus          TEXT NOT NULL,
		currency        TEXT NOT NULL DEFAULT 'USD' CHECK(currency IN ('USD','INR')),
		status          TEXT NOT NULL DEFAULT 'Draft'
		                CHECK(status IN ('Draft','Active','Under Review','Approved','Rejected','Redirected','Completed')),
		risk_profile    TEXT NOT NULL DEFAULT 'Balanced'
		                CHECK(risk_profile IN ('Conservative','Balanced','Growth')),
		rule_type       TEXT NOT NULL DEFAULT 'Milestone'
		                CHECK(rule_type IN ('Time','Milestone','Behavior')),
		fallback_ngo_id TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id         TEXT PRIMARY KEY,
		gift_id    TEXT NOT NULL REFERENCES gifts(id) ON DELETE CASCADE,
		type       TEXT NOT NULL,
		percentage INTEGER NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Pending'
		           CHECK(status IN ('Pending','Submitted','Approved','Rejected'))
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id           TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL REFERENCES users(id),
		role         TEXT NOT NULL CHECK(role IN ('grandparent','grandchild','trustee')),
		event_type   TEXT NOT NULL,
		message      TEXT NOT NULL,
		is_read      INTEGER NOT NULL DEFAULT 0,
		action_url   TEXT,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS media_messages (
		id          TEXT PRIMARY KEY,
		gift_id     TEXT NOT NULL REFERENCES gifts(id) ON DELETE CASCADE,
		uploader_id TEXT NOT NULL REFERENCES users(id),
		type        TEXT NOT NULL CHECK(type IN ('text','photo','audio','video')),
		file_path   TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS override_windows (
		id         TEXT PRIMARY KEY,
		gift_id    TEXT NOT NULL UNIQUE REFERENCES gifts(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Open'
		           CHECK(status IN ('Open','Overridden','Expired'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_gifts_grandparent ON gifts(grandparent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_gifts_grandchild ON gifts(grandchild_id)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_gift ON milestones(gift_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, is_read)`,
	`CREATE INDEX IF NOT EXISTS idx_media_gift ON media_messages(gift_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
