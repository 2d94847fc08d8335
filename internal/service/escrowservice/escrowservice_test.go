package escrowservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	ledgerrepo "github.com/inkwell-market/inkwell/internal/repo/ledger-repo"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/pkg/money"
)

type mocks struct {
	ledger  *MockLedger
	gateway *MockPaymentGateway
	notify  *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:  NewMockLedger(ctrl),
		gateway: NewMockPaymentGateway(ctrl),
		notify:  NewMockNotifier(ctrl),
	}
	return New(m.ledger, m.gateway, m.notify), m
}

func sellerSpecs(sellerID int) []invoiceservice.TransactionSpec {
	return []invoiceservice.TransactionSpec{
		{UserID: sellerID, Account: domain.AccountEscrow, Category: domain.CategoryEscrowHold, Amount: money.D("10.29")},
		{Account: domain.AccountReserve, Category: domain.CategoryShieldFee, Amount: money.D("1.71")},
	}
}

func TestHoldFundsApproved(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	deliverable := &domain.Deliverable{ID: 9, InvoiceID: 5}

	nextID := 100
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
		assert.Equal(t, domain.TransactionPending, record.Status)
		assert.Equal(t, domain.AccountCard, record.Source)
		require.NotNil(t, record.PayerID)
		assert.Equal(t, 3, *record.PayerID)
		assert.Contains(t, record.Targets, domain.DeliverableRef(9))
		assert.Contains(t, record.Targets, domain.InvoiceRef(5))
		posted := *record
		posted.ID = nextID
		nextID++
		return &posted, nil
	}).Times(2)
	m.gateway.EXPECT().Charge(ctx, 3, money.D("12.00"), gomock.Any()).DoAndReturn(func(_ context.Context, _ int, _ any, idempotencyKey string) (string, error) {
		assert.NotEmpty(t, idempotencyKey)
		return "txn_abc", nil
	})
	m.ledger.EXPECT().MarkSuccessful(ctx, []int{100, 101}, "txn_abc").Return(nil)

	records, err := svc.HoldFunds(ctx, deliverable, 3, sellerSpecs(7), money.D("12.00"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, domain.TransactionSuccess, record.Status)
		assert.Contains(t, record.RemoteIDs, "txn_abc")
	}
	require.NotNil(t, records[0].PayeeID)
	assert.Equal(t, 7, *records[0].PayeeID)
	assert.Nil(t, records[1].PayeeID)
}

func TestHoldFundsDeclined(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	deliverable := &domain.Deliverable{ID: 9, InvoiceID: 5}

	nextID := 100
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
		posted := *record
		posted.ID = nextID
		nextID++
		return &posted, nil
	}).Times(2)
	declined := errors.New("card_declined: insufficient funds")
	m.gateway.EXPECT().Charge(ctx, 3, money.D("12.00"), gomock.Any()).Return("", declined)
	m.ledger.EXPECT().MarkFailed(ctx, []int{100, 101}, declined.Error()).Return(nil)

	records, err := svc.HoldFunds(ctx, deliverable, 3, sellerSpecs(7), money.D("12.00"))
	assert.Nil(t, records)
	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.ErrorIs(t, err, declined)
}

func TestHoldFundsNothingToCharge(t *testing.T) {
	svc, _ := NewMock(t)
	_, err := svc.HoldFunds(context.Background(), &domain.Deliverable{ID: 9, InvoiceID: 5}, 3, nil, money.Zero)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestReleaseFunds(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	deliverable := &domain.Deliverable{ID: 9, InvoiceID: 5}
	plan := &domain.ServicePlan{BonusPercentage: money.D("4"), BonusStatic: money.D("0.50")}
	sellerID := 7
	hold := domain.TransactionRecord{
		ID:          100,
		Source:      domain.AccountCard,
		Destination: domain.AccountEscrow,
		Amount:      money.D("10.29"),
		Status:      domain.TransactionSuccess,
		Category:    domain.CategoryEscrowHold,
		RemoteIDs:   []string{"txn_abc"},
	}
	shieldFee := domain.TransactionRecord{
		ID:          101,
		Source:      domain.AccountCard,
		Destination: domain.AccountReserve,
		Amount:      money.D("1.71"),
		Status:      domain.TransactionSuccess,
		Category:    domain.CategoryShieldFee,
		RemoteIDs:   []string{"txn_abc"},
	}

	m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter ledgerrepo.RecordFilter) ([]domain.TransactionRecord, error) {
		require.NotNil(t, filter.Target)
		assert.Equal(t, domain.DeliverableRef(9), *filter.Target)
		require.NotNil(t, filter.Status)
		assert.Equal(t, domain.TransactionSuccess, *filter.Status)
		assert.Nil(t, filter.Category)
		return []domain.TransactionRecord{hold, shieldFee}, nil
	})
	var posted []*domain.TransactionRecord
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
		posted = append(posted, record)
		return record, nil
	}).Times(2)
	m.notify.EXPECT().Notify(ctx, sellerID, EventEscrowReleased, domain.DeliverableRef(9))

	require.NoError(t, svc.ReleaseFunds(ctx, deliverable, sellerID, plan))
	require.Len(t, posted, 2)

	release := posted[0]
	assert.Equal(t, domain.AccountEscrow, release.Source)
	assert.Equal(t, domain.AccountHoldings, release.Destination)
	assert.True(t, money.D("10.29").Equal(release.Amount))
	assert.Equal(t, domain.CategoryEscrowRelease, release.Category)
	assert.Equal(t, []string{"txn_abc"}, release.RemoteIDs)
	assert.Contains(t, release.Targets, domain.EntityRef{Kind: domain.RefTransaction, ID: 100})

	// The base is the full charged total, hold plus shield fee:
	// (10.29 + 1.71) * 4% + 0.50 = 0.98.
	bonus := posted[1]
	assert.Equal(t, domain.AccountReserve, bonus.Source)
	assert.Equal(t, domain.AccountUnprocessedEarnings, bonus.Destination)
	assert.True(t, money.D("0.98").Equal(bonus.Amount), bonus.Amount.String())
	assert.Equal(t, domain.CategoryPremiumBonus, bonus.Category)
}

func TestReleaseFundsNoBonusOnFreePlan(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	hold := domain.TransactionRecord{
		ID:       100,
		Amount:   money.D("10.29"),
		Status:   domain.TransactionSuccess,
		Category: domain.CategoryEscrowHold,
	}
	m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return([]domain.TransactionRecord{hold}, nil)
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
		assert.Equal(t, domain.CategoryEscrowRelease, record.Category)
		return record, nil
	})
	m.notify.EXPECT().Notify(ctx, 7, EventEscrowReleased, domain.DeliverableRef(9))

	err := svc.ReleaseFunds(ctx, &domain.Deliverable{ID: 9, InvoiceID: 5}, 7, &domain.ServicePlan{})
	assert.NoError(t, err)
}

func TestReleaseFundsWithoutHold(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return(nil, nil)

	err := svc.ReleaseFunds(ctx, &domain.Deliverable{ID: 9, InvoiceID: 5}, 7, &domain.ServicePlan{})
	var cErr *domain.ConsistencyError
	assert.ErrorAs(t, err, &cErr)
}

func refundFixture(deliverableID int) []domain.TransactionRecord {
	sellerID := 7
	targets := []domain.EntityRef{domain.DeliverableRef(deliverableID), domain.InvoiceRef(5)}
	return []domain.TransactionRecord{
		{
			ID:          100,
			Source:      domain.AccountCard,
			Destination: domain.AccountEscrow,
			Amount:      money.D("10.29"),
			PayeeID:     &sellerID,
			Status:      domain.TransactionSuccess,
			Category:    domain.CategoryEscrowHold,
			RemoteIDs:   []string{"txn_abc"},
			Targets:     targets,
		},
		{
			ID:          101,
			Source:      domain.AccountCard,
			Destination: domain.AccountReserve,
			Amount:      money.D("1.71"),
			Status:      domain.TransactionSuccess,
			Category:    domain.CategoryShieldFee,
			RemoteIDs:   []string{"txn_abc"},
			Targets:     targets,
		},
		{
			ID:       102,
			Amount:   money.D("0.76"),
			Status:   domain.TransactionSuccess,
			Category: domain.CategoryPremiumBonus,
			Targets:  targets,
		},
	}
}

func TestRefundFunds(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	buyerID := 3
	related := refundFixture(9)

	first := m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return(related[:1], nil)
	m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter ledgerrepo.RecordFilter) ([]domain.TransactionRecord, error) {
		assert.Nil(t, filter.Category)
		return related, nil
	}).After(first)
	m.gateway.EXPECT().Refund(ctx, "txn_abc", money.D("10.29"), gomock.Any()).Return("re_xyz", nil)
	var reversed []int
	m.ledger.EXPECT().Reverse(ctx, gomock.Any(), domain.CategoryEscrowRefund, "re_xyz").DoAndReturn(func(_ context.Context, record *domain.TransactionRecord, _ domain.TransactionCategory, _ ...string) (bool, *domain.TransactionRecord, error) {
		reversed = append(reversed, record.ID)
		return true, &domain.TransactionRecord{}, nil
	}).Times(2)
	m.notify.EXPECT().Notify(ctx, buyerID, EventEscrowRefunded, domain.DeliverableRef(9))

	require.NoError(t, svc.RefundFunds(ctx, &domain.Deliverable{ID: 9, InvoiceID: 5}, buyerID))
	// The bonus record is not part of the buyer's money and stays put.
	assert.Equal(t, []int{100, 101}, reversed)
}

func TestRefundFundsHoldInvariant(t *testing.T) {
	ctx := context.Background()
	related := refundFixture(9)

	tests := []struct {
		name  string
		holds []domain.TransactionRecord
	}{
		{name: "no holds", holds: nil},
		{name: "two holds", holds: []domain.TransactionRecord{related[0], related[0]}},
		{name: "hold without a processor id", holds: []domain.TransactionRecord{{ID: 100, Status: domain.TransactionSuccess, Category: domain.CategoryEscrowHold}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return(tt.holds, nil)
			err := svc.RefundFunds(ctx, &domain.Deliverable{ID: 9, InvoiceID: 5}, 3)
			var cErr *domain.ConsistencyError
			assert.ErrorAs(t, err, &cErr)
		})
	}
}

func TestRefundFundsProcessorRejection(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	related := refundFixture(9)

	first := m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return(related[:1], nil)
	m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return(related, nil).After(first)
	rejection := errors.New("refund_window_closed")
	m.gateway.EXPECT().Refund(ctx, "txn_abc", money.D("10.29"), gomock.Any()).Return("", rejection)
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
		assert.Equal(t, domain.TransactionFailure, record.Status)
		assert.Equal(t, domain.CategoryEscrowRefund, record.Category)
		assert.Equal(t, domain.AccountCard, record.Destination)
		assert.Equal(t, rejection.Error(), record.ResponseMessage)
		require.NotNil(t, record.FinalizedOn)
		return record, nil
	})

	err := svc.RefundFunds(ctx, &domain.Deliverable{ID: 9, InvoiceID: 5}, 3)
	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.ErrorIs(t, err, rejection)
}

func TestReconcileWebhook(t *testing.T) {
	ctx := context.Background()
	target := domain.DeliverableRef(9)

	t.Run("approves pending records once", func(t *testing.T) {
		svc, m := NewMock(t)
		pending := &domain.TransactionRecord{
			ID:        100,
			Status:    domain.TransactionPending,
			RemoteIDs: []string{"txn_abc"},
			Targets:   []domain.EntityRef{target},
		}
		sibling := domain.TransactionRecord{
			ID:        101,
			Status:    domain.TransactionPending,
			RemoteIDs: []string{"txn_abc"},
			Targets:   []domain.EntityRef{target},
		}
		unrelated := domain.TransactionRecord{
			ID:      102,
			Status:  domain.TransactionPending,
			Targets: []domain.EntityRef{target},
		}
		m.ledger.EXPECT().FindByRemoteID(ctx, "txn_abc").Return(pending, nil)
		m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return([]domain.TransactionRecord{*pending, sibling, unrelated}, nil)
		m.ledger.EXPECT().MarkSuccessful(ctx, []int{100, 101}, "txn_abc").Return(nil)

		result, err := svc.ReconcileWebhook(ctx, "txn_abc", true, "")
		require.NoError(t, err)
		assert.False(t, result.Duplicate)
		assert.Equal(t, []int{100, 101}, result.RecordIDs)
		require.NotNil(t, result.Target)
		assert.Equal(t, target, *result.Target)
	})

	t.Run("replayed event is acknowledged without writes", func(t *testing.T) {
		svc, m := NewMock(t)
		settled := &domain.TransactionRecord{
			ID:        100,
			Status:    domain.TransactionSuccess,
			RemoteIDs: []string{"txn_abc"},
			Targets:   []domain.EntityRef{target},
		}
		m.ledger.EXPECT().FindByRemoteID(ctx, "txn_abc").Return(settled, nil)

		result, err := svc.ReconcileWebhook(ctx, "txn_abc", true, "")
		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		require.NotNil(t, result.Target)
		assert.Equal(t, target, *result.Target)
	})

	t.Run("declined event fails the records", func(t *testing.T) {
		svc, m := NewMock(t)
		pending := &domain.TransactionRecord{
			ID:        100,
			Status:    domain.TransactionPending,
			RemoteIDs: []string{"txn_abc"},
			Targets:   []domain.EntityRef{target},
		}
		m.ledger.EXPECT().FindByRemoteID(ctx, "txn_abc").Return(pending, nil)
		m.ledger.EXPECT().FindRecords(ctx, gomock.Any()).Return([]domain.TransactionRecord{*pending}, nil)
		m.ledger.EXPECT().MarkFailed(ctx, []int{100}, "do_not_honor").Return(nil)

		result, err := svc.ReconcileWebhook(ctx, "txn_abc", false, "do_not_honor")
		require.NoError(t, err)
		assert.Equal(t, []int{100}, result.RecordIDs)
	})

	t.Run("unknown processor id", func(t *testing.T) {
		svc, m := NewMock(t)
		m.ledger.EXPECT().FindByRemoteID(ctx, "txn_nope").Return(nil, nil)

		_, err := svc.ReconcileWebhook(ctx, "txn_nope", true, "")
		var cErr *domain.ConsistencyError
		assert.ErrorAs(t, err, &cErr)
	})

	t.Run("empty processor id", func(t *testing.T) {
		svc, _ := NewMock(t)
		_, err := svc.ReconcileWebhook(ctx, "", true, "")
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
