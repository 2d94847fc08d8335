package escrowservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
	ledgerrepo "github.com/inkwell-market/inkwell/internal/repo/ledger-repo"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/pkg/money"
)

// Ledger is the posting surface the coordinator needs.
type Ledger interface {
	Post(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error)
	FindByRemoteID(ctx context.Context, remoteID string) (*domain.TransactionRecord, error)
	FindRecords(ctx context.Context, filter ledgerrepo.RecordFilter) ([]domain.TransactionRecord, error)
	MarkSuccessful(ctx context.Context, ids []int, remoteID string) error
	MarkFailed(ctx context.Context, ids []int, responseMessage string) error
	Reverse(ctx context.Context, record *domain.TransactionRecord, category domain.TransactionCategory, extraRemoteIDs ...string) (bool, *domain.TransactionRecord, error)
}

// PaymentGateway is the external card processor. Charge returns the
// processor's transaction id on approval; a declined charge returns the
// processor's message as an error.
type PaymentGateway interface {
	Charge(ctx context.Context, userID int, amount decimal.Decimal, idempotencyKey string) (string, error)
	Refund(ctx context.Context, remoteID string, amount decimal.Decimal, idempotencyKey string) (string, error)
}

// Notifier delivers user-facing events. Recall withdraws an event that no
// longer applies, such as a dispute notice after staff resolution.
type Notifier interface {
	Notify(ctx context.Context, userID int, event string, ref domain.EntityRef)
	Recall(ctx context.Context, userID int, event string, ref domain.EntityRef)
}

const (
	EventDisputeClaimed = "dispute_claimed"
	EventEscrowReleased = "escrow_released"
	EventEscrowRefunded = "escrow_refunded"
)

type Service struct {
	ledger  Ledger
	gateway PaymentGateway
	notify  Notifier
}

func New(ledger Ledger, gateway PaymentGateway, notify Notifier) *Service {
	return &Service{
		ledger:  ledger,
		gateway: gateway,
		notify:  notify,
	}
}

// HoldFunds posts the invoice's attributed amounts as PENDING records, then
// charges the buyer's card for the grand total. On approval every record is
// finalized SUCCESS under the processor id; on decline they are finalized
// FAILURE and a GatewayError carries the processor's message out. The
// records exist in both outcomes, so a duplicate submission is visible in
// the ledger rather than silently retried.
func (s *Service) HoldFunds(ctx context.Context, deliverable *domain.Deliverable, buyerID int, specs []invoiceservice.TransactionSpec, total decimal.Decimal) ([]domain.TransactionRecord, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("total", "nothing to charge")
	}
	targets := []domain.EntityRef{
		domain.DeliverableRef(deliverable.ID),
		domain.InvoiceRef(deliverable.InvoiceID),
	}
	records := make([]domain.TransactionRecord, 0, len(specs))
	ids := make([]int, 0, len(specs))
	for _, spec := range specs {
		record := &domain.TransactionRecord{
			Source:      domain.AccountCard,
			Destination: spec.Account,
			Amount:      spec.Amount,
			PayerID:     &buyerID,
			Status:      domain.TransactionPending,
			Category:    spec.Category,
			Targets:     targets,
		}
		if spec.UserID != 0 {
			userID := spec.UserID
			record.PayeeID = &userID
		}
		posted, err := s.ledger.Post(ctx, record)
		if err != nil {
			return nil, err
		}
		records = append(records, *posted)
		ids = append(ids, posted.ID)
	}
	remoteID, err := s.gateway.Charge(ctx, buyerID, total, uuid.NewString())
	if err != nil {
		if failErr := s.ledger.MarkFailed(ctx, ids, err.Error()); failErr != nil {
			return nil, failErr
		}
		zap.L().Warn("card charge declined",
			zap.Int("deliverableID", deliverable.ID),
			zap.Error(err),
		)
		return nil, &domain.GatewayError{Message: "the card charge was declined", Err: err}
	}
	if err := s.ledger.MarkSuccessful(ctx, ids, remoteID); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Status = domain.TransactionSuccess
		records[i].RemoteIDs = append(records[i].RemoteIDs, remoteID)
	}
	return records, nil
}

// holdsFor returns the SUCCESS escrow-hold records targeting the deliverable.
func (s *Service) holdsFor(ctx context.Context, deliverableID int) ([]domain.TransactionRecord, error) {
	ref := domain.DeliverableRef(deliverableID)
	status := domain.TransactionSuccess
	category := domain.CategoryEscrowHold
	return s.ledger.FindRecords(ctx, ledgerrepo.RecordFilter{
		Target:   &ref,
		Status:   &status,
		Category: &category,
	})
}

// ReleaseFunds moves held money to the seller's finalized earnings and pays
// out the plan bonus from the reserve. The processor ids of the original
// hold are carried onto the release records so the whole chain is traceable
// from a single external id.
func (s *Service) ReleaseFunds(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan) error {
	ref := domain.DeliverableRef(deliverable.ID)
	success := domain.TransactionSuccess
	settled, err := s.ledger.FindRecords(ctx, ledgerrepo.RecordFilter{Target: &ref, Status: &success})
	if err != nil {
		return err
	}
	var holds []domain.TransactionRecord
	charged := decimal.Zero
	for _, record := range settled {
		if record.Category == domain.CategoryEscrowHold {
			holds = append(holds, record)
		}
		// The bonus is cut from what the buyer actually paid, fees
		// included, not from the seller's net share of it.
		if record.Source == domain.AccountCard || record.Source == domain.AccountCashDeposit {
			charged = charged.Add(record.Amount)
		}
	}
	if len(holds) == 0 {
		return domain.NewConsistencyError("deliverable %d has no successful escrow hold to release", deliverable.ID)
	}
	targets := []domain.EntityRef{
		domain.DeliverableRef(deliverable.ID),
		domain.InvoiceRef(deliverable.InvoiceID),
	}
	for i := range holds {
		hold := &holds[i]
		record := &domain.TransactionRecord{
			Source:      domain.AccountEscrow,
			Destination: domain.AccountHoldings,
			Amount:      hold.Amount,
			PayerID:     &sellerID,
			PayeeID:     &sellerID,
			Status:      domain.TransactionSuccess,
			Category:    domain.CategoryEscrowRelease,
			RemoteIDs:   hold.RemoteIDs,
			Targets:     append(append([]domain.EntityRef{}, targets...), domain.EntityRef{Kind: domain.RefTransaction, ID: hold.ID}),
		}
		if _, err := s.ledger.Post(ctx, record); err != nil {
			return err
		}
	}
	bonus := money.RoundCents(charged.Mul(money.PercentMultiplier(plan.BonusPercentage)).Add(plan.BonusStatic))
	if bonus.IsPositive() {
		record := &domain.TransactionRecord{
			Source:      domain.AccountReserve,
			Destination: domain.AccountUnprocessedEarnings,
			Amount:      bonus,
			PayeeID:     &sellerID,
			Status:      domain.TransactionSuccess,
			Category:    domain.CategoryPremiumBonus,
			Targets:     targets,
		}
		if _, err := s.ledger.Post(ctx, record); err != nil {
			return err
		}
	}
	s.notify.Notify(ctx, sellerID, EventEscrowReleased, domain.DeliverableRef(deliverable.ID))
	return nil
}

// RefundFunds sends the held amount back through the processor and posts the
// inverse records. Exactly one successful hold must exist; anything else
// means the books disagree with the state machine and a human has to look.
func (s *Service) RefundFunds(ctx context.Context, deliverable *domain.Deliverable, buyerID int) error {
	holds, err := s.holdsFor(ctx, deliverable.ID)
	if err != nil {
		return err
	}
	if len(holds) != 1 {
		return domain.NewConsistencyError("deliverable %d has %d successful escrow holds, refund needs exactly one", deliverable.ID, len(holds))
	}
	hold := &holds[0]
	if len(hold.RemoteIDs) == 0 {
		return domain.NewConsistencyError("escrow hold %d has no processor id to refund against", hold.ID)
	}
	ref := domain.DeliverableRef(deliverable.ID)
	status := domain.TransactionSuccess
	related, err := s.ledger.FindRecords(ctx, ledgerrepo.RecordFilter{Target: &ref, Status: &status})
	if err != nil {
		return err
	}
	refundID, err := s.gateway.Refund(ctx, hold.RemoteIDs[len(hold.RemoteIDs)-1], hold.Amount, uuid.NewString())
	if err != nil {
		now := time.Now()
		failure := &domain.TransactionRecord{
			Source:          domain.AccountEscrow,
			Destination:     refundDestination(hold.Source),
			Amount:          hold.Amount,
			PayerID:         hold.PayeeID,
			PayeeID:         &buyerID,
			Status:          domain.TransactionFailure,
			Category:        domain.CategoryEscrowRefund,
			ResponseMessage: err.Error(),
			Targets:         hold.Targets,
			FinalizedOn:     &now,
		}
		if _, postErr := s.ledger.Post(ctx, failure); postErr != nil {
			return postErr
		}
		return &domain.GatewayError{Message: "the processor rejected the refund", Err: err}
	}
	for i := range related {
		record := &related[i]
		switch record.Category {
		case domain.CategoryEscrowHold, domain.CategoryShieldFee, domain.CategoryTableHandling, domain.CategoryTaxes:
		default:
			continue
		}
		if _, _, err := s.ledger.Reverse(ctx, record, domain.CategoryEscrowRefund, refundID); err != nil {
			return err
		}
	}
	s.notify.Notify(ctx, buyerID, EventEscrowRefunded, ref)
	return nil
}

// refundDestination picks where reversed card money is considered to land.
// Cash-paid orders never touched the processor, so their refunds settle to
// the cash deposit pool.
func refundDestination(source domain.Account) domain.Account {
	if source == domain.AccountCashDeposit {
		return domain.AccountCashDeposit
	}
	return domain.AccountCard
}

// WebhookResult reports what a processor event actually changed. Target is
// the business object the finalized records point at, so the caller can
// advance its state machine.
type WebhookResult struct {
	Duplicate bool
	RecordIDs []int
	Target    *domain.EntityRef
}

// ReconcileWebhook applies a processor settlement event at most once. A
// SUCCESS record already carrying the event's id means a replay, which is
// acknowledged without touching the books.
func (s *Service) ReconcileWebhook(ctx context.Context, remoteID string, approved bool, message string) (*WebhookResult, error) {
	if remoteID == "" {
		return nil, domain.NewValidationError("remote_id", "must not be empty")
	}
	existing, err := s.ledger.FindByRemoteID(ctx, remoteID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewConsistencyError("webhook references unknown processor id %s", remoteID)
	}
	if existing.Status != domain.TransactionPending {
		zap.L().Info("duplicate processor webhook",
			zap.String("remoteID", remoteID),
			zap.Int("recordID", existing.ID),
		)
		return &WebhookResult{Duplicate: true, Target: firstTarget(existing)}, nil
	}
	pending := domain.TransactionPending
	matches, err := s.ledger.FindRecords(ctx, ledgerrepo.RecordFilter{Status: &pending, Target: firstTarget(existing)})
	if err != nil {
		return nil, err
	}
	ids := []int{existing.ID}
	for i := range matches {
		if matches[i].ID != existing.ID && matches[i].HasRemoteID(remoteID) {
			ids = append(ids, matches[i].ID)
		}
	}
	if approved {
		err = s.ledger.MarkSuccessful(ctx, ids, remoteID)
	} else {
		err = s.ledger.MarkFailed(ctx, ids, message)
	}
	if err != nil {
		return nil, err
	}
	return &WebhookResult{RecordIDs: ids, Target: firstTarget(existing)}, nil
}

func firstTarget(record *domain.TransactionRecord) *domain.EntityRef {
	if len(record.Targets) == 0 {
		return nil
	}
	return &record.Targets[0]
}
