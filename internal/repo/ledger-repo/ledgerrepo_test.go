package ledgerrepo

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
	"github.com/inkwell-market/inkwell/pkg/money"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

var recordColumnNames = []string{
	"id", "source", "destination", "amount", "currency", "payer_id", "payee_id",
	"status", "category", "remote_ids", "response_message", "created_on", "finalized_on",
}

func TestRepository_Insert(t *testing.T) {
	repo, mock, tx := NewMock(t)
	createdOn := time.Now()

	tests := []struct {
		name      string
		record    *domain.TransactionRecord
		mockSetup func(record *domain.TransactionRecord)
		expectErr bool
	}{
		{
			name: "record with targets",
			record: &domain.TransactionRecord{
				Source:      domain.AccountCard,
				Destination: domain.AccountEscrow,
				Amount:      money.D("10.29"),
				Currency:    money.USD,
				Status:      domain.TransactionPending,
				Category:    domain.CategoryEscrowHold,
				Targets:     []domain.EntityRef{domain.DeliverableRef(9), domain.InvoiceRef(5)},
			},
			mockSetup: func(record *domain.TransactionRecord) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transaction_records")).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_on"}).AddRow(100, createdOn))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transaction_targets")).
						WithArgs(100, domain.RefDeliverable, 9).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transaction_targets")).
						WithArgs(100, domain.RefInvoice, 5).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "database error",
			record: &domain.TransactionRecord{
				Amount:   money.D("1.00"),
				Currency: money.USD,
			},
			mockSetup: func(record *domain.TransactionRecord) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transaction_records")).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.record)
			err := repo.Insert(context.Background(), tt.record)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 100, tt.record.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByRemoteID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdOn := time.Now()
	payerID := 3

	tests := []struct {
		name      string
		remoteID  string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:     "record exists",
			remoteID: "txn_abc",
			mockSetup: func() {
				rows := pgxmock.NewRows(recordColumnNames).AddRow(
					100, domain.AccountCard, domain.AccountEscrow, money.D("10.29"), money.USD,
					&payerID, nil, domain.TransactionSuccess, domain.CategoryEscrowHold,
					[]string{"txn_abc"}, "", createdOn, nil,
				)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE $1 = ANY(remote_ids)")).
					WithArgs("txn_abc").
					WillReturnRows(rows)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT kind, entity_id FROM transaction_targets")).
					WithArgs(100).
					WillReturnRows(pgxmock.NewRows([]string{"kind", "entity_id"}).AddRow(domain.RefDeliverable, 9))
			},
			found: true,
		},
		{
			name:     "unknown id",
			remoteID: "txn_nope",
			mockSetup: func() {
				rows := pgxmock.NewRows(recordColumnNames)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE $1 = ANY(remote_ids)")).
					WithArgs("txn_nope").
					WillReturnRows(rows)
			},
		},
		{
			name:     "database error",
			remoteID: "txn_abc",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE $1 = ANY(remote_ids)")).
					WithArgs("txn_abc").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record, err := repo.FindByRemoteID(context.Background(), tt.remoteID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, record)
				return
			}
			require.NotNil(t, record)
			assert.Equal(t, 100, record.ID)
			assert.True(t, record.HasRemoteID("txn_abc"))
			assert.Equal(t, []domain.EntityRef{domain.DeliverableRef(9)}, record.Targets)
		})
	}
}

func TestRepository_Finalize(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		status    domain.TransactionStatus
		remoteID  string
		message   string
		expectErr bool
	}{
		{name: "mark successful", status: domain.TransactionSuccess, remoteID: "txn_abc"},
		{name: "mark failed", status: domain.TransactionFailure, message: "do_not_honor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
				// Only PENDING rows may move; finalized rows never change.
				mock.ExpectExec(regexp.QuoteMeta("AND status = $6")).
					WithArgs(tt.status, tt.message, pgxmock.AnyArg(), tt.remoteID, []int{100, 101}, domain.TransactionPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
				return fn(ctx)
			})
			err := repo.Finalize(context.Background(), []int{100, 101}, tt.status, tt.remoteID, tt.message)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Balance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID := 7
	statuses := []domain.TransactionStatus{domain.TransactionSuccess}

	t.Run("user balance", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transaction_records")).
			WithArgs(domain.AccountHoldings, statuses, userID).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(money.D("25.00")))

		balance, err := repo.Balance(context.Background(), &userID, domain.AccountHoldings, statuses)
		require.NoError(t, err)
		assert.True(t, money.D("25.00").Equal(balance))
	})

	t.Run("platform balance uses null matching", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("payee_id IS NULL")).
			WithArgs(domain.AccountReserve, statuses).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(money.D("100.00")))

		balance, err := repo.Balance(context.Background(), nil, domain.AccountReserve, statuses)
		require.NoError(t, err)
		assert.True(t, money.D("100.00").Equal(balance))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transaction_records")).
			WithArgs(domain.AccountHoldings, statuses, userID).
			WillReturnError(errors.New("database error"))

		_, err := repo.Balance(context.Background(), &userID, domain.AccountHoldings, statuses)
		assert.Error(t, err)
	})
}

func TestRepository_FindRecords(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdOn := time.Now()

	t.Run("filters compose", func(t *testing.T) {
		target := domain.DeliverableRef(9)
		status := domain.TransactionSuccess
		category := domain.CategoryEscrowHold
		rows := pgxmock.NewRows(recordColumnNames).AddRow(
			100, domain.AccountCard, domain.AccountEscrow, money.D("10.29"), money.USD,
			nil, nil, domain.TransactionSuccess, domain.CategoryEscrowHold,
			[]string{"txn_abc"}, "", createdOn, nil,
		)
		mock.ExpectQuery(regexp.QuoteMeta("id IN (SELECT transaction_id FROM transaction_targets WHERE kind = $1 AND entity_id = $2) AND status = $3 AND category = $4")).
			WithArgs(domain.RefDeliverable, 9, status, category).
			WillReturnRows(rows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT kind, entity_id FROM transaction_targets")).
			WithArgs(100).
			WillReturnRows(pgxmock.NewRows([]string{"kind", "entity_id"}).AddRow(domain.RefDeliverable, 9))

		records, err := repo.FindRecords(context.Background(), RecordFilter{
			Target:   &target,
			Status:   &status,
			Category: &category,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 100, records[0].ID)
	})

	t.Run("no rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transaction_records")).
			WillReturnRows(pgxmock.NewRows(recordColumnNames))

		records, err := repo.FindRecords(context.Background(), RecordFilter{})
		require.NoError(t, err)
		assert.Nil(t, records)
	})
}

func TestRepository_ListForUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdOn := time.Now()
	userID := 7

	t.Run("lists newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(recordColumnNames).
			AddRow(101, domain.AccountEscrow, domain.AccountHoldings, money.D("10.29"), money.USD,
				&userID, &userID, domain.TransactionSuccess, domain.CategoryEscrowRelease,
				[]string{}, "", createdOn, nil).
			AddRow(100, domain.AccountHoldings, domain.AccountBank, money.D("5.00"), money.USD,
				&userID, &userID, domain.TransactionPending, domain.CategoryCashWithdraw,
				[]string{}, "", createdOn, nil)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_on DESC, id DESC")).
			WithArgs(userID, domain.AccountHoldings).
			WillReturnRows(rows)

		records, err := repo.ListForUser(context.Background(), userID, domain.AccountHoldings)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 101, records[0].ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_on DESC, id DESC")).
			WithArgs(userID, domain.AccountHoldings).
			WillReturnError(errors.New("database error"))

		_, err := repo.ListForUser(context.Background(), userID, domain.AccountHoldings)
		assert.Error(t, err)
	})
}
