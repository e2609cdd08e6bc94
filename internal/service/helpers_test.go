package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/giftforge/giftforge/internal/testutil"
)

type testEnv struct {
	db            *sql.DB
	users         *repository.SQLiteUserRepo
	gifts         *repository.SQLiteGiftRepo
	milestones    *repository.SQLiteMilestoneRepo
	notifications *repository.SQLiteNotificationRepo
	windows       *repository.SQLiteOverrideWindowRepo

	giftSvc    GiftService
	trusteeSvc TrusteeService
	notifySvc  NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		db:            database,
		users:         repository.NewSQLiteUserRepo(database),
		gifts:         repository.NewSQLiteGiftRepo(database),
		milestones:    repository.NewSQLiteMilestoneRepo(database),
		notifications: repository.NewSQLiteNotificationRepo(database),
		windows:       repository.NewSQLiteOverrideWindowRepo(database),
	}
	env.notifySvc = NewNotificationService(env.notifications)
	env.giftSvc = NewGiftService(env.gifts, env.milestones, env.windows, uow, env.notifySvc, nil)
	env.trusteeSvc = NewTrusteeService(uow, env.notifySvc, nil)
	return env
}

func (e *testEnv) countNotifications(t *testing.T, eventType string) int {
	t.Helper()
	var count int
	err := e.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE event_type = ?`, eventType).Scan(&count)
	if err != nil {
		t.Fatalf("counting notifications: %v", err)
	}
	return count
}

// failingSink always fails delivery, for verifying that notification
// failures never propagate past the workflow boundary.
type failingSink struct {
	attempts int
}

func (s *failingSink) Send(ctx context.Context, recipientID string, role domain.UserRole,
	eventType, message string, actionURL *string) (*domain.Notification, error) {
	s.attempts++
	return nil, errors.New("notification channel down")
}
