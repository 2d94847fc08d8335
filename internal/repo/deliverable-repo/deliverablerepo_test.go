package deliverablerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB
}

var deliverableColumnNames = []string{
	"id", "order_id", "invoice_id", "status", "task_weight", "expected_turnaround",
	"adjustment_task_weight", "adjustment_expected_turnaround", "revisions",
	"escrow_enabled", "table_order", "cascade_fees", "final_uploaded",
	"auto_finalize_on", "dispute_available_on", "disputed_on", "arbitrator_id",
	"paid_on", "finalized_on", "refunded_on", "created_at",
}

func deliverableRow(createdAt time.Time) []any {
	return []any{
		9, 4, 5, domain.StatusPaymentPending, 0, 0,
		0, 0, 0,
		true, false, false, false,
		nil, nil, nil, nil,
		nil, nil, nil, createdAt,
	}
}

func TestRepository_CreateOrder(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (buyer_id, seller_id)")).
		WithArgs(3, 7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, createdAt))

	order := &domain.Order{BuyerID: 3, SellerID: 7}
	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.Equal(t, 4, order.ID)
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "locks the row",
			id:   9,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deliverables WHERE id = $1 FOR UPDATE")).
					WithArgs(9).
					WillReturnRows(pgxmock.NewRows(deliverableColumnNames).AddRow(deliverableRow(createdAt)...))
			},
			found: true,
		},
		{
			name: "missing deliverable",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deliverables WHERE id = $1 FOR UPDATE")).
					WithArgs(99).
					WillReturnRows(pgxmock.NewRows(deliverableColumnNames))
			},
		},
		{
			name: "database error",
			id:   9,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deliverables WHERE id = $1 FOR UPDATE")).
					WithArgs(9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			d, err := repo.GetForUpdate(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, 9, d.ID)
			assert.Equal(t, domain.StatusPaymentPending, d.Status)
		})
	}
}

func TestRepository_ClaimDispute(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		affected  int64
		claimed   bool
		expectErr bool
	}{
		{name: "first claim wins", affected: 1, claimed: true},
		{name: "already claimed", affected: 0, claimed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE deliverables SET arbitrator_id = $1 WHERE id = $2 AND arbitrator_id IS NULL AND status = $3")).
				WithArgs(42, 9, domain.StatusDisputed).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			claimed, err := repo.ClaimDispute(context.Background(), 9, 42)
			require.NoError(t, err)
			assert.Equal(t, tt.claimed, claimed)
		})
	}

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE deliverables SET arbitrator_id = $1")).
			WithArgs(42, 9, domain.StatusDisputed).
			WillReturnError(errors.New("database error"))

		_, err := repo.ClaimDispute(context.Background(), 9, 42)
		assert.Error(t, err)
	})
}

func TestRepository_FindReviewPastDeadline(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	createdAt := now.Add(-72 * time.Hour)

	t.Run("returns overdue reviews", func(t *testing.T) {
		deadline := now.Add(-time.Hour)
		row := deliverableRow(createdAt)
		row[3] = domain.StatusReview
		row[13] = &deadline
		mock.ExpectQuery(regexp.QuoteMeta("auto_finalize_on IS NOT NULL AND auto_finalize_on <= $2")).
			WithArgs(domain.StatusReview, now, 1000).
			WillReturnRows(pgxmock.NewRows(deliverableColumnNames).AddRow(row...))

		deliverables, err := repo.FindReviewPastDeadline(context.Background(), now, 1000)
		require.NoError(t, err)
		require.Len(t, deliverables, 1)
		assert.Equal(t, domain.StatusReview, deliverables[0].Status)
	})

	t.Run("nothing due", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("auto_finalize_on IS NOT NULL AND auto_finalize_on <= $2")).
			WithArgs(domain.StatusReview, now, 1000).
			WillReturnRows(pgxmock.NewRows(deliverableColumnNames))

		deliverables, err := repo.FindReviewPastDeadline(context.Background(), now, 1000)
		require.NoError(t, err)
		assert.Nil(t, deliverables)
	})
}

func TestRepository_CountActiveForSeller(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(7, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveForSeller(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_ListForUser(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE order_id IN (SELECT id FROM orders WHERE buyer_id = $1 OR seller_id = $1)")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(deliverableColumnNames).AddRow(deliverableRow(createdAt)...))

	deliverables, err := repo.ListForUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, deliverables, 1)
	assert.Equal(t, 9, deliverables[0].ID)
}
