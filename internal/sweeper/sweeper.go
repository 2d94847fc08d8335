package sweeper

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inkwell-market/inkwell/internal/config"
	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
)

// Deliverables is the slice of the state machine the sweep drives.
type Deliverables interface {
	ReviewPastDeadline(ctx context.Context, now time.Time, limit uint32) ([]domain.Deliverable, error)
	Approve(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
}

var sweeping sync.Map

// Service periodically finalizes deliverables left in review past their
// deadline, approving them on the platform's behalf so sellers are paid
// even when buyers go silent.
type Service struct {
	deliverables  Deliverables
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, deliverables Deliverables) *Service {
	return &Service{
		deliverables:  deliverables,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.SweepIntervalSec) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Auto-finalize sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	due, err := s.deliverables.ReviewPastDeadline(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deliverables for auto-finalize", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deliverable := range due {
		deliverable := deliverable

		if _, loaded := sweeping.LoadOrStore(deliverable.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweeping.Delete(deliverable.ID)
				return s.finalize(ctx, deliverable)
			})
			if err != nil {
				sweeping.Delete(deliverable.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping deliverables", zap.Error(err))
	}
}

// finalize approves one overdue deliverable. A state conflict means another
// request got there first, which the sweep treats as done.
func (s *Service) finalize(ctx context.Context, deliverable domain.Deliverable) error {
	err := s.deliverables.Approve(ctx, deliverableservice.Platform, deliverable.ID)
	if err != nil {
		var conflict *domain.StateConflictError
		if errors.As(err, &conflict) {
			zap.L().Info("Deliverable already finalized elsewhere",
				zap.Int("deliverableID", deliverable.ID),
				zap.String("status", conflict.Current.String()),
			)
			return nil
		}
		return err
	}
	zap.L().Info("Deliverable auto-finalized", zap.Int("deliverableID", deliverable.ID))
	return nil
}
