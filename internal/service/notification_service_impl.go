package service

import (
	"context"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/google/uuid"
)

type notificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

// Send persists one notification record. It runs outside the caller's
// workflow transaction; workflow callers treat its errors as log-and-continue.
func (s *notificationService) Send(ctx context.Context, recipientID string, role domain.UserRole,
	eventType, message string, actionURL *string) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Role:        role,
		EventType:   eventType,
		Message:     message,
		Read:        false,
		ActionURL:   actionURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationService) UnreadForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifications.ListUnreadByRecipient(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	return s.notifications.GetByID(ctx, notificationID)
}
