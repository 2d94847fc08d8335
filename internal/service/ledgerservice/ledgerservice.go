package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
	ledgerrepo "github.com/inkwell-market/inkwell/internal/repo/ledger-repo"
	"github.com/inkwell-market/inkwell/pkg/money"
)

// Repo is the persistence surface for ledger records.
type Repo interface {
	Insert(ctx context.Context, record *domain.TransactionRecord) error
	FindByRemoteID(ctx context.Context, remoteID string) (*domain.TransactionRecord, error)
	FindRecords(ctx context.Context, filter ledgerrepo.RecordFilter) ([]domain.TransactionRecord, error)
	Finalize(ctx context.Context, ids []int, status domain.TransactionStatus, remoteID, responseMessage string) error
	Balance(ctx context.Context, userID *int, account domain.Account, statuses []domain.TransactionStatus) (decimal.Decimal, error)
	ListForUser(ctx context.Context, userID int, account domain.Account) ([]domain.TransactionRecord, error)
}

// PayoutGateway initiates bank transfers with the processor.
type PayoutGateway interface {
	Payout(ctx context.Context, userID int, amount decimal.Decimal, idempotencyKey string) (string, error)
}

type Service struct {
	repo    Repo
	gateway PayoutGateway
}

func New(repo Repo, gateway PayoutGateway) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Post appends a new record. Drafts must carry a representable amount; the
// ledger never accepts sub-cent values or negative movements.
func (s *Service) Post(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
	if record.Amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}
	if !money.IsCents(record.Amount) {
		return nil, domain.NewValidationError("amount", "must be a whole number of cents")
	}
	if record.Currency == "" {
		record.Currency = money.USD
	}
	if record.Status != domain.TransactionPending && record.FinalizedOn == nil {
		now := time.Now()
		record.FinalizedOn = &now
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		zap.L().Error("failed to post ledger record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// FindByRemoteID supports idempotent webhook replay: a SUCCESS record already
// carrying the external id means the event was processed before.
func (s *Service) FindByRemoteID(ctx context.Context, remoteID string) (*domain.TransactionRecord, error) {
	record, err := s.repo.FindByRemoteID(ctx, remoteID)
	if err != nil {
		zap.L().Error("failed to look up remote id", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *Service) FindRecords(ctx context.Context, filter ledgerrepo.RecordFilter) ([]domain.TransactionRecord, error) {
	return s.repo.FindRecords(ctx, filter)
}

// MarkSuccessful finalizes PENDING records, appending the confirming remote
// id. Amount, source and destination are untouched.
func (s *Service) MarkSuccessful(ctx context.Context, ids []int, remoteID string) error {
	return s.repo.Finalize(ctx, ids, domain.TransactionSuccess, remoteID, "")
}

// MarkFailed finalizes records as FAILURE with the processor's message.
func (s *Service) MarkFailed(ctx context.Context, ids []int, responseMessage string) error {
	return s.repo.Finalize(ctx, ids, domain.TransactionFailure, "", responseMessage)
}

func statusesFor(filter domain.BalanceFilter) ([]domain.TransactionStatus, error) {
	switch filter {
	case domain.BalanceAll:
		return []domain.TransactionStatus{domain.TransactionSuccess, domain.TransactionPending}, nil
	case domain.BalancePostedOnly:
		return []domain.TransactionStatus{domain.TransactionSuccess}, nil
	case domain.BalancePending:
		return []domain.TransactionStatus{domain.TransactionPending}, nil
	default:
		return nil, domain.NewValidationError("filter", "unknown balance filter")
	}
}

// Balance sums signed amounts for the user and account: payee-matching rows
// positive, payer-matching rows negative. A nil user asks for the platform's
// own balance.
func (s *Service) Balance(ctx context.Context, userID *int, account domain.Account, filter domain.BalanceFilter) (decimal.Decimal, error) {
	statuses, err := statusesFor(filter)
	if err != nil {
		return decimal.Zero, err
	}
	balance, err := s.repo.Balance(ctx, userID, account, statuses)
	if err != nil {
		zap.L().Error("failed to compute balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *Service) TransactionsFor(ctx context.Context, userID int, account domain.Account) ([]domain.TransactionRecord, error) {
	records, err := s.repo.ListForUser(ctx, userID, account)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// Reverse posts the inverse of a SUCCESS record unless one already exists, in
// which case the existing inverse is returned and created is false.
func (s *Service) Reverse(ctx context.Context, record *domain.TransactionRecord, category domain.TransactionCategory, extraRemoteIDs ...string) (bool, *domain.TransactionRecord, error) {
	if record.Status != domain.TransactionSuccess {
		return false, nil, domain.NewValidationError("record", "only successful records may be reversed")
	}
	ref := domain.EntityRef{Kind: domain.RefTransaction, ID: record.ID}
	existing, err := s.repo.FindRecords(ctx, ledgerrepo.RecordFilter{Target: &ref})
	if err != nil {
		return false, nil, err
	}
	for i := range existing {
		candidate := &existing[i]
		if candidate.Source == record.Destination && candidate.Destination == record.Source &&
			candidate.Amount.Equal(record.Amount) && candidate.Status != domain.TransactionFailure {
			return false, candidate, nil
		}
	}
	remoteIDs := make([]string, 0, len(record.RemoteIDs)+len(extraRemoteIDs))
	remoteIDs = append(remoteIDs, record.RemoteIDs...)
	for _, id := range extraRemoteIDs {
		if id != "" {
			remoteIDs = append(remoteIDs, id)
		}
	}
	inverse := &domain.TransactionRecord{
		Source:      record.Destination,
		Destination: record.Source,
		Amount:      record.Amount,
		Currency:    record.Currency,
		PayerID:     record.PayeeID,
		PayeeID:     record.PayerID,
		Status:      domain.TransactionSuccess,
		Category:    category,
		RemoteIDs:   remoteIDs,
		Targets:     append(append([]domain.EntityRef{}, record.Targets...), ref),
	}
	posted, err := s.Post(ctx, inverse)
	if err != nil {
		return false, nil, err
	}
	return true, posted, nil
}

// WithdrawHoldings moves a seller's finalized earnings to their bank. The
// posting carries the processor's payout id and stays PENDING until the
// settlement webhook confirms it.
func (s *Service) WithdrawHoldings(ctx context.Context, userID int, amount decimal.Decimal) (*domain.TransactionRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	balance, err := s.Balance(ctx, &userID, domain.AccountHoldings, domain.BalancePostedOnly)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, ErrInsufficientBalance
	}
	payoutID, err := s.gateway.Payout(ctx, userID, amount, uuid.NewString())
	if err != nil {
		now := time.Now()
		failure := &domain.TransactionRecord{
			Source:          domain.AccountHoldings,
			Destination:     domain.AccountBank,
			Amount:          amount,
			PayerID:         &userID,
			PayeeID:         &userID,
			Status:          domain.TransactionFailure,
			Category:        domain.CategoryCashWithdraw,
			ResponseMessage: err.Error(),
			FinalizedOn:     &now,
		}
		if _, postErr := s.Post(ctx, failure); postErr != nil {
			return nil, postErr
		}
		zap.L().Warn("payout rejected by processor",
			zap.Int("userID", userID),
			zap.Error(err),
		)
		return nil, &domain.GatewayError{Message: "the processor rejected the payout", Err: err}
	}
	record := &domain.TransactionRecord{
		Source:      domain.AccountHoldings,
		Destination: domain.AccountBank,
		Amount:      amount,
		PayerID:     &userID,
		PayeeID:     &userID,
		Status:      domain.TransactionPending,
		Category:    domain.CategoryCashWithdraw,
		RemoteIDs:   []string{payoutID},
	}
	return s.Post(ctx, record)
}

// ChargeBankFee deducts the flat bank-connection fee from HOLDINGS. Fails
// with ErrInsufficientBalance before writing anything when the posted
// balance cannot cover it.
func (s *Service) ChargeBankFee(ctx context.Context, userID int, fee decimal.Decimal) (*domain.TransactionRecord, error) {
	balance, err := s.Balance(ctx, &userID, domain.AccountHoldings, domain.BalancePostedOnly)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(fee) {
		return nil, ErrInsufficientBalance
	}
	record := &domain.TransactionRecord{
		Source:      domain.AccountHoldings,
		Destination: domain.AccountACHMiscFees,
		Amount:      fee,
		PayerID:     &userID,
		Status:      domain.TransactionSuccess,
		Category:    domain.CategoryThirdPartyFee,
	}
	return s.Post(ctx, record)
}
