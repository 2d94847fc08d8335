package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
)

func NewMock(t *testing.T) (*Service, *MockDeliverables) {
	ctrl := gomock.NewController(t)
	deliverables := NewMockDeliverables(ctrl)
	pool := NewMockWorkerPool(ctrl)

	// Run tasks inline so assertions see the full sweep synchronously.
	pool.EXPECT().
		AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			return task()
		}).
		AnyTimes()

	service := &Service{
		deliverables:  deliverables,
		limit:         1000,
		workerPool:    pool,
		sweepInterval: time.Minute,
	}
	defer ctrl.Finish()
	return service, deliverables
}

func TestSweepApprovesOverdueReviews(t *testing.T) {
	service, deliverables := NewMock(t)
	ctx := context.Background()

	deliverables.EXPECT().
		ReviewPastDeadline(ctx, gomock.Any(), uint32(1000)).
		Return([]domain.Deliverable{
			{ID: 11, Status: domain.StatusReview},
			{ID: 12, Status: domain.StatusReview},
		}, nil)
	deliverables.EXPECT().Approve(ctx, deliverableservice.Platform, 11).Return(nil)
	deliverables.EXPECT().Approve(ctx, deliverableservice.Platform, 12).Return(nil)

	service.sweep(ctx)
}

func TestSweepTreatsStateConflictAsDone(t *testing.T) {
	service, deliverables := NewMock(t)
	ctx := context.Background()

	deliverables.EXPECT().
		ReviewPastDeadline(ctx, gomock.Any(), uint32(1000)).
		Return([]domain.Deliverable{{ID: 11, Status: domain.StatusReview}}, nil)
	deliverables.EXPECT().
		Approve(ctx, deliverableservice.Platform, 11).
		Return(&domain.StateConflictError{Current: domain.StatusCompleted, Operation: "approve"})

	service.sweep(ctx)

	// The id must be released for the next sweep.
	_, held := sweeping.Load(11)
	assert.False(t, held)
}

func TestSweepSkipsInFlightDeliverables(t *testing.T) {
	service, deliverables := NewMock(t)
	ctx := context.Background()

	sweeping.Store(11, struct{}{})
	defer sweeping.Delete(11)

	deliverables.EXPECT().
		ReviewPastDeadline(ctx, gomock.Any(), uint32(1000)).
		Return([]domain.Deliverable{
			{ID: 11, Status: domain.StatusReview},
			{ID: 12, Status: domain.StatusReview},
		}, nil)
	deliverables.EXPECT().Approve(ctx, deliverableservice.Platform, 12).Return(nil)

	service.sweep(ctx)
}

func TestSweepFetchFailure(t *testing.T) {
	service, deliverables := NewMock(t)
	ctx := context.Background()

	deliverables.EXPECT().
		ReviewPastDeadline(ctx, gomock.Any(), uint32(1000)).
		Return(nil, errors.New("db down"))

	service.sweep(ctx)
}

func TestFinalizePropagatesOtherErrors(t *testing.T) {
	service, deliverables := NewMock(t)
	ctx := context.Background()

	deliverables.EXPECT().
		Approve(ctx, deliverableservice.Platform, 11).
		Return(errors.New("gateway timeout"))

	err := service.finalize(ctx, domain.Deliverable{ID: 11})

	require.EqualError(t, err, "gateway timeout")
}
