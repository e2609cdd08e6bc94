package service

import (
	"context"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

// demoUsers are seeded on first List against an empty store so the CLI has
// parties to work with out of the box.
var demoUsers = []domain.User{
	{ID: DefaultGrandparentID, Name: "Grandma Shanti", Role: domain.RoleGrandparent},
	{ID: DefaultGrandchildID, Name: "Arjun", Role: domain.RoleGrandchild},
	{ID: DefaultTrusteeID, Name: "Trustee Sahil", Role: domain.RoleTrustee},
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) > 0 {
		return users, nil
	}

	now := time.Now().UTC()
	for _, u := range demoUsers {
		seeded := u
		seeded.CreatedAt = now
		if err := s.users.Create(ctx, &seeded); err != nil {
			return nil, err
		}
	}
	return s.users.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
