package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/google/uuid"
)

type giftService struct {
	gifts      repository.GiftRepo
	milestones repository.MilestoneRepo
	windows    repository.OverrideWindowRepo
	uow        db.UnitOfWork
	sink       NotificationSink
	observer   UseCaseObserver
}

func NewGiftService(gifts repository.GiftRepo, milestones repository.MilestoneRepo,
	windows repository.OverrideWindowRepo, uow db.UnitOfWork, sink NotificationSink,
	observer UseCaseObserver) GiftService {
	return &giftService{
		gifts:      gifts,
		milestones: milestones,
		windows:    windows,
		uow:        uow,
		sink:       sink,
		observer:   observerOrNoop(observer),
	}
}

func (s *giftService) CreateGift(ctx context.Context, grandparentID string, proposal GiftProposal) (*domain.Gift, error) {
	now := time.Now().UTC()
	gift := &domain.Gift{
		ID:             uuid.New().String(),
		GrandparentID:  grandparentID,
		GrandchildID:   proposal.GrandchildID,
		GrandchildName: proposal.GrandchildName,
		Message:        proposal.Message,
		Corpus:         proposal.Corpus,
		Currency:       proposal.Currency,
		Status:         domain.GiftActive,
		RiskProfile:    proposal.RiskProfile,
		RuleType:       proposal.RuleType,
		FallbackNGOID:  proposal.FallbackNGOID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if gift.Currency == "" {
		gift.Currency = domain.CurrencyUSD
	}
	if gift.RiskProfile == "" {
		gift.RiskProfile = domain.RiskBalanced
	}
	if gift.RuleType == "" {
		gift.RuleType = domain.RuleMilestone
	}
	if err := gift.Validate(); err != nil {
		return nil, err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txGifts := repository.NewSQLiteGiftRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txWindows := repository.NewSQLiteOverrideWindowRepo(tx)

		// Placeholder users are created lazily so a proposal can reference
		// parties the store has never seen. Re-running with the same ids is
		// a no-op.
		if err := ensureUser(ctx, txUsers, grandparentID, "Grandparent", domain.RoleGrandparent, now); err != nil {
			return err
		}
		grandchildName := proposal.GrandchildName
		if grandchildName == "" {
			grandchildName = "Grandchild"
		}
		if err := ensureUser(ctx, txUsers, proposal.GrandchildID, grandchildName, domain.RoleGrandchild, now); err != nil {
			return err
		}
		if err := ensureUser(ctx, txUsers, DefaultTrusteeID, "Trustee", domain.RoleTrustee, now); err != nil {
			return err
		}

		if err := txGifts.Create(ctx, gift); err != nil {
			return err
		}
		for _, def := range proposal.Milestones {
			m := &domain.Milestone{
				ID:         uuid.New().String(),
				GiftID:     gift.ID,
				Type:       def.Type,
				Percentage: def.Percentage,
				Status:     domain.MilestonePending,
			}
			if err := txMilestones.Create(ctx, m); err != nil {
				return err
			}
		}
		return txWindows.Create(ctx, domain.NewOverrideWindow(uuid.New().String(), gift.ID, now))
	})
	if err != nil {
		return nil, err
	}

	name := gift.GrandchildName
	if name == "" {
		name = "your grandchild"
	}
	notifyBestEffort(ctx, s.sink, s.observer, gift.GrandparentID, domain.RoleGrandparent,
		"gift_created",
		fmt.Sprintf("Your gift for %s has been created and is now %s.", name, gift.Status))
	notifyBestEffort(ctx, s.sink, s.observer, gift.GrandchildID, domain.RoleGrandchild,
		"gift_received",
		"You have received a new gift! Log in to view the milestones.")

	return gift, nil
}

func ensureUser(ctx context.Context, users repository.UserRepo, id, name string, role domain.UserRole, now time.Time) error {
	_, err := users.GetByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return users.Create(ctx, &domain.User{ID: id, Name: name, Role: role, CreatedAt: now})
}

func (s *giftService) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	return s.gifts.GetByID(ctx, id)
}

func (s *giftService) Inspect(ctx context.Context, giftID string) (*GiftDetail, error) {
	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}
	milestones, err := s.milestones.ListByGift(ctx, giftID)
	if err != nil {
		return nil, err
	}
	window, err := s.windows.GetByGift(ctx, giftID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		window = nil
	}
	return &GiftDetail{Gift: gift, Milestones: milestones, Override: window}, nil
}

func (s *giftService) UpdateStatus(ctx context.Context, giftID string, next domain.GiftStatus) (*domain.Gift, error) {
	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTransition(gift.Status, next); err != nil {
		return nil, err
	}
	gift.Status = next
	gift.UpdatedAt = time.Now().UTC()
	if err := s.gifts.Update(ctx, gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// DeleteGift is unconditional: no state-machine check gates deletion.
func (s *giftService) DeleteGift(ctx context.Context, giftID string) error {
	return s.gifts.Delete(ctx, giftID)
}

func (s *giftService) AllowedNextStates(ctx context.Context, giftID string) ([]domain.GiftStatus, error) {
	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}
	return domain.AllowedTransitions(gift.Status), nil
}

func (s *giftService) ListByUser(ctx context.Context, userID string, asGrandparent bool) ([]*GiftView, error) {
	var gifts []*domain.Gift
	var err error
	if asGrandparent {
		gifts, err = s.gifts.ListByGrandparent(ctx, userID)
	} else {
		gifts, err = s.gifts.ListByGrandchild(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]*GiftView, 0, len(gifts))
	for _, g := range gifts {
		milestones, err := s.milestones.ListByGift(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, &GiftView{Gift: g, Milestones: milestones})
	}
	return views, nil
}
