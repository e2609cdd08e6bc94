package service

import (
	"context"
	"fmt"
	"time"

	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
)

type trusteeService struct {
	uow      db.UnitOfWork
	sink     NotificationSink
	observer UseCaseObserver
}

func NewTrusteeService(uow db.UnitOfWork, sink NotificationSink, observer UseCaseObserver) TrusteeService {
	return &trusteeService{uow: uow, sink: sink, observer: observerOrNoop(observer)}
}

// ApproveMilestone is the disbursement workflow's single orchestration
// point: milestone mutation, completion re-derivation, the state-machine
// gate, and the gift write all happen inside one transaction, in that
// order. Approval is direct; production deployments are expected to insert
// a Submitted step ahead of this, which this demo workflow does not model.
func (s *trusteeService) ApproveMilestone(ctx context.Context, milestoneID string) (*domain.Milestone, error) {
	start := time.Now()
	var (
		milestone  *domain.Milestone
		gift       *domain.Gift
		cascadeErr error
	)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txGifts := repository.NewSQLiteGiftRepo(tx)

		m, err := txMilestones.GetByID(ctx, milestoneID)
		if err != nil {
			return err
		}
		m.Status = domain.MilestoneApproved
		if err := txMilestones.Update(ctx, m); err != nil {
			return err
		}

		g, err := txGifts.GetByID(ctx, m.GiftID)
		if err != nil {
			return err
		}

		// The completion decision must be made against the milestone set as
		// written in this transaction, so concurrent approvals serialize on
		// the gift's rows rather than racing on a stale read.
		all, err := txMilestones.ListByGift(ctx, g.ID)
		if err != nil {
			return err
		}

		if domain.AllApproved(all) {
			if err := domain.ValidateTransition(g.Status, domain.GiftCompleted); err != nil {
				// Fail closed on the gift, but keep the milestone write: the
				// error is held so the transaction still commits, leaving the
				// two outcomes independently observable.
				cascadeErr = err
			} else {
				g.Status = domain.GiftCompleted
				g.UpdatedAt = time.Now().UTC()
				if err := txGifts.Update(ctx, g); err != nil {
					return err
				}
			}
		}

		milestone, gift = m, g
		return nil
	})
	if err != nil {
		s.observe(ctx, start, milestoneID, err)
		return nil, err
	}
	if cascadeErr != nil {
		s.observe(ctx, start, milestoneID, cascadeErr)
		return nil, cascadeErr
	}

	notifyBestEffort(ctx, s.sink, s.observer, gift.GrandchildID, domain.RoleGrandchild,
		"milestone_approved",
		fmt.Sprintf("Congratulations! Your milestone '%s' has been approved and funds disbursed.", milestone.Type))
	notifyBestEffort(ctx, s.sink, s.observer, gift.GrandparentID, domain.RoleGrandparent,
		"milestone_approved",
		fmt.Sprintf("Your grandchild has successfully reached the '%s' milestone.", milestone.Type))

	s.observe(ctx, start, milestoneID, nil)
	return milestone, nil
}

func (s *trusteeService) observe(ctx context.Context, start time.Time, milestoneID string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "approve_milestone",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"milestone_id": milestoneID},
		StartedAt: start,
	})
}
