package repository

import (
	"context"

	"github.com/giftforge/giftforge/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type GiftRepo interface {
	Create(ctx context.Context, g *domain.Gift) error
	GetByID(ctx context.Context, id string) (*domain.Gift, error)
	ListByGrandparent(ctx context.Context, grandparentID string) ([]*domain.Gift, error)
	ListByGrandchild(ctx context.Context, grandchildID string) ([]*domain.Gift, error)
	Update(ctx context.Context, g *domain.Gift) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGift(ctx context.Context, giftID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListUnreadByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type MediaRepo interface {
	Create(ctx context.Context, m *domain.MediaMessage) error
	GetByID(ctx context.Context, id string) (*domain.MediaMessage, error)
	ListByGift(ctx context.Context, giftID string) ([]*domain.MediaMessage, error)
}

type OverrideWindowRepo interface {
	Create(ctx context.Context, w *domain.OverrideWindow) error
	GetByGift(ctx context.Context, giftID string) (*domain.OverrideWindow, error)
	Update(ctx context.Context, w *domain.OverrideWindow) error
}
