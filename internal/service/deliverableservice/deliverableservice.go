package deliverableservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/pg"
	"github.com/inkwell-market/inkwell/internal/service/escrowservice"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/pkg/money"
)

// Repo is the persistence surface for orders and deliverables.
type Repo interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, d *domain.Deliverable) error
	Get(ctx context.Context, id int) (*domain.Deliverable, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Deliverable, error)
	Update(ctx context.Context, d *domain.Deliverable) error
	ClaimDispute(ctx context.Context, deliverableID, arbitratorID int) (bool, error)
	CountActiveForSeller(ctx context.Context, sellerID int) (int, error)
	FindReviewPastDeadline(ctx context.Context, now time.Time, limit uint32) ([]domain.Deliverable, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Deliverable, error)
}

// Invoices is the line-item engine surface the state machine drives.
type Invoices interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	InsertBaseLine(ctx context.Context, line *domain.LineItem) error
	AddLine(ctx context.Context, line *domain.LineItem) error
	RemoveLine(ctx context.Context, invoiceID, lineID int) error
	LinesFor(ctx context.Context, invoiceID int) ([]domain.LineItem, error)
	InvoiceTotal(ctx context.Context, invoiceID int) (decimal.Decimal, error)
	Specs(ctx context.Context, invoiceID int) ([]invoiceservice.TransactionSpec, error)
	DeclareTotal(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan, target decimal.Decimal) error
	VerifyTotal(ctx context.Context, deliverable *domain.Deliverable) error
	ReconcileLines(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan) error
	MarkPaid(ctx context.Context, invoiceID int) error
	VoidInvoice(ctx context.Context, invoiceID int) error
}

// Escrow posts ledger movements for transitions with financial consequences.
type Escrow interface {
	HoldFunds(ctx context.Context, deliverable *domain.Deliverable, buyerID int, specs []invoiceservice.TransactionSpec, total decimal.Decimal) ([]domain.TransactionRecord, error)
	ReleaseFunds(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan) error
	RefundFunds(ctx context.Context, deliverable *domain.Deliverable, buyerID int) error
	ReconcileWebhook(ctx context.Context, remoteID string, approved bool, message string) (*escrowservice.WebhookResult, error)
}

// Plans resolves the seller's fee plan.
type Plans interface {
	PlanFor(ctx context.Context, userID int) (*domain.ServicePlan, error)
}

// Notifier delivers and withdraws user-facing events.
type Notifier interface {
	Notify(ctx context.Context, userID int, event string, ref domain.EntityRef)
	Recall(ctx context.Context, userID int, event string, ref domain.EntityRef)
}

const (
	EventOrderPlaced    = "order_placed"
	EventOrderAccepted  = "order_accepted"
	EventOrderPaid      = "order_paid"
	EventFinalUploaded  = "final_uploaded"
	EventDisputeFiled   = "dispute_filed"
	EventDisputeClaimed = "dispute_claimed"
	EventOrderCompleted = "order_completed"
	EventOrderRefunded  = "order_refunded"
	EventOrderCancelled = "order_cancelled"
)

var ErrDisputeAlreadyClaimed = errors.New("the dispute has already been claimed by another arbitrator")

type Service struct {
	repo      Repo
	invoices  Invoices
	escrow    Escrow
	plans     Plans
	notify    Notifier
	txManager pg.TXManager

	autoFinalize time.Duration
}

func New(repo Repo, invoices Invoices, escrow Escrow, plans Plans, notify Notifier, txManager pg.TXManager, autoFinalizeDays int) *Service {
	return &Service{
		repo:         repo,
		invoices:     invoices,
		escrow:       escrow,
		plans:        plans,
		notify:       notify,
		txManager:    txManager,
		autoFinalize: time.Duration(autoFinalizeDays) * 24 * time.Hour,
	}
}

// OrderIntent is everything needed to open a new deliverable.
type OrderIntent struct {
	BuyerID            int
	SellerID           int
	Price              decimal.Decimal
	TaskWeight         int
	ExpectedTurnaround int
	Revisions          int
	EscrowEnabled      bool
	TableOrder         bool
	CascadeFees        bool
	WaitList           bool
}

// locked runs fn with the deliverable row exclusively locked for the whole
// unit of work. Everything fn writes commits or rolls back together.
func (s *Service) locked(ctx context.Context, deliverableID int, fn func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		deliverable, err := s.repo.GetForUpdate(ctx, deliverableID)
		if err != nil {
			return err
		}
		if deliverable == nil {
			return domain.NewValidationError("deliverable", "not found")
		}
		order, err := s.repo.GetOrder(ctx, deliverable.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NewConsistencyError("deliverable %d references missing order %d", deliverable.ID, deliverable.OrderID)
		}
		return fn(ctx, deliverable, order)
	})
}

func requireStatus(d *domain.Deliverable, operation string, allowed ...domain.DeliverableStatus) error {
	for _, status := range allowed {
		if d.Status == status {
			return nil
		}
	}
	return &domain.StateConflictError{Current: d.Status, Operation: operation}
}

func requireActor(actor Actor, order *domain.Order, p Predicate) error {
	if !p(actor, order) {
		return ErrPermission
	}
	return nil
}

// reconcile refreshes the derived line items for the deliverable's current
// flags and re-verifies the resulting total.
func (s *Service) reconcile(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
	plan, err := s.plans.PlanFor(ctx, order.SellerID)
	if err != nil {
		return err
	}
	if err := s.invoices.ReconcileLines(ctx, d, order.SellerID, plan); err != nil {
		return err
	}
	return s.invoices.VerifyTotal(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Deliverable, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Deliverable, error) {
	return s.repo.ListForUser(ctx, userID)
}

// PlaceOrder opens an order with one deliverable and its invoice. The
// deliverable starts NEW when the seller has a free slot, WAITING on the
// wait list when they are at capacity, and LIMBO when they are at capacity
// with no wait list.
func (s *Service) PlaceOrder(ctx context.Context, intent OrderIntent) (*domain.Deliverable, error) {
	if intent.BuyerID == intent.SellerID {
		return nil, domain.NewValidationError("seller", "buyer and seller must differ")
	}
	if intent.Price.IsNegative() || !money.IsCents(intent.Price) {
		return nil, domain.NewValidationError("price", "must be a non-negative whole number of cents")
	}
	plan, err := s.plans.PlanFor(ctx, intent.SellerID)
	if err != nil {
		return nil, err
	}
	var deliverable *domain.Deliverable
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		active, err := s.repo.CountActiveForSeller(ctx, intent.SellerID)
		if err != nil {
			return err
		}
		status := domain.StatusNew
		if plan.MaxSimultaneous > 0 && active >= plan.MaxSimultaneous {
			status = domain.StatusLimbo
			if intent.WaitList {
				status = domain.StatusWaiting
			}
		}
		order := &domain.Order{BuyerID: intent.BuyerID, SellerID: intent.SellerID}
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		invoice := &domain.Invoice{
			BillToID: &intent.BuyerID,
			IssuerID: intent.SellerID,
			Status:   domain.InvoiceDraft,
		}
		if err := s.invoices.CreateInvoice(ctx, invoice); err != nil {
			return err
		}
		sellerID := intent.SellerID
		baseLine := &domain.LineItem{
			InvoiceID:          invoice.ID,
			Type:               domain.LineBasePrice,
			Amount:             intent.Price,
			Priority:           domain.PriorityFor(domain.LineBasePrice),
			DestinationAccount: domain.AccountEscrow,
			DestinationUserID:  &sellerID,
		}
		if err := s.invoices.InsertBaseLine(ctx, baseLine); err != nil {
			return err
		}
		deliverable = &domain.Deliverable{
			OrderID:            order.ID,
			InvoiceID:          invoice.ID,
			Status:             status,
			TaskWeight:         intent.TaskWeight,
			ExpectedTurnaround: intent.ExpectedTurnaround,
			Revisions:          intent.Revisions,
			EscrowEnabled:      intent.EscrowEnabled,
			TableOrder:         intent.TableOrder,
			CascadeFees:        intent.CascadeFees,
		}
		if err := s.repo.Create(ctx, deliverable); err != nil {
			return err
		}
		if err := s.reconcile(ctx, deliverable, order); err != nil {
			return err
		}
		s.notify.Notify(ctx, intent.SellerID, EventOrderPlaced, domain.DeliverableRef(deliverable.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deliverable, nil
}

// AddLineItem attaches an add-on, extra or tip to the deliverable's invoice.
// The seller controls add-ons and extras; tips are the buyer's. Lines can
// only change before money moves.
func (s *Service) AddLineItem(ctx context.Context, actor Actor, deliverableID int, line *domain.LineItem) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "edit line items of", domain.StatusWaiting, domain.StatusLimbo, domain.StatusNew, domain.StatusPaymentPending); err != nil {
			return err
		}
		var who Predicate
		if line.Type == domain.LineTip {
			who = AnyOf(IsBuyer, HasStaffPower)
		} else {
			who = AnyOf(IsSeller, HasStaffPower)
		}
		if err := requireActor(actor, order, who); err != nil {
			return err
		}
		line.InvoiceID = d.InvoiceID
		line.DestinationAccount = domain.AccountEscrow
		sellerID := order.SellerID
		line.DestinationUserID = &sellerID
		if err := s.invoices.AddLine(ctx, line); err != nil {
			return err
		}
		return s.reconcile(ctx, d, order)
	})
}

// RemoveLineItem deletes a caller-added line and reconciles the fees.
func (s *Service) RemoveLineItem(ctx context.Context, actor Actor, deliverableID, lineID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "edit line items of", domain.StatusWaiting, domain.StatusLimbo, domain.StatusNew, domain.StatusPaymentPending); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, IsBuyer, HasStaffPower)); err != nil {
			return err
		}
		if err := s.invoices.RemoveLine(ctx, d.InvoiceID, lineID); err != nil {
			return err
		}
		return s.reconcile(ctx, d, order)
	})
}

// Accept is the seller taking the order. A zero invoice total skips payment
// entirely and queues the work.
func (s *Service) Accept(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "accept", domain.StatusNew, domain.StatusWaiting); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		if err := s.reconcile(ctx, d, order); err != nil {
			return err
		}
		total, err := s.invoices.InvoiceTotal(ctx, d.InvoiceID)
		if err != nil {
			return err
		}
		if total.IsZero() {
			d.Status = domain.StatusQueued
		} else {
			d.Status = domain.StatusPaymentPending
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		if err := s.reconcile(ctx, d, order); err != nil {
			return err
		}
		s.notify.Notify(ctx, order.BuyerID, EventOrderAccepted, domain.DeliverableRef(d.ID))
		return nil
	})
}

// advancePaid moves a PAYMENT_PENDING deliverable into the working states
// once its money is settled.
func (s *Service) advancePaid(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
	now := time.Now()
	d.PaidOn = &now
	turnaround := d.ExpectedTurnaround + d.AdjustmentExpectedTurnaround
	if turnaround > 0 {
		disputeOn := now.Add(time.Duration(turnaround) * 24 * time.Hour)
		d.DisputeAvailableOn = &disputeOn
	}
	switch {
	case d.FinalUploaded:
		d.Status = domain.StatusQueued
	case d.Revisions > 0:
		d.Status = domain.StatusInProgress
	default:
		d.Status = domain.StatusQueued
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}
	if err := s.invoices.MarkPaid(ctx, d.InvoiceID); err != nil {
		return err
	}
	s.notify.Notify(ctx, order.SellerID, EventOrderPaid, domain.DeliverableRef(d.ID))
	return nil
}

// Pay charges the buyer and posts the escrow hold. On a declined card the
// unit of work still commits so the FAILURE records and their response
// message survive; the deliverable stays PAYMENT_PENDING and the returned
// GatewayError tells the buyer to retry.
func (s *Service) Pay(ctx context.Context, actor Actor, deliverableID int) error {
	var declined *domain.GatewayError
	err := s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "pay for", domain.StatusPaymentPending); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsBuyer, HasStaffPower)); err != nil {
			return err
		}
		if err := s.reconcile(ctx, d, order); err != nil {
			return err
		}
		total, err := s.invoices.InvoiceTotal(ctx, d.InvoiceID)
		if err != nil {
			return err
		}
		if d.EscrowEnabled && total.IsPositive() {
			specs, err := s.invoices.Specs(ctx, d.InvoiceID)
			if err != nil {
				return err
			}
			if _, err := s.escrow.HoldFunds(ctx, d, order.BuyerID, specs, total); err != nil {
				if errors.As(err, &declined) {
					return nil
				}
				return err
			}
		}
		return s.advancePaid(ctx, d, order)
	})
	if err != nil {
		return err
	}
	if declined != nil {
		return declined
	}
	return nil
}

// SetBuyerTotal reprices the order from the figure the seller wants the
// buyer to see. The invoice's add-on line absorbs the difference and the
// derived fee lines are reconciled under the same lock.
func (s *Service) SetBuyerTotal(ctx context.Context, actor Actor, deliverableID int, target decimal.Decimal) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "reprice", domain.StatusWaiting, domain.StatusLimbo, domain.StatusNew, domain.StatusPaymentPending); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		plan, err := s.plans.PlanFor(ctx, order.SellerID)
		if err != nil {
			return err
		}
		if err := s.invoices.DeclareTotal(ctx, d, order.SellerID, plan, target); err != nil {
			return err
		}
		return s.reconcile(ctx, d, order)
	})
}

// Start begins work on a queued deliverable.
func (s *Service) Start(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "start", domain.StatusQueued); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		d.Status = domain.StatusInProgress
		return s.repo.Update(ctx, d)
	})
}

// MarkFinal records the final upload. With escrow disabled there is nothing
// to release and the deliverable completes immediately; otherwise the buyer
// gets a review window before funds auto-finalize.
func (s *Service) MarkFinal(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "upload the final for", domain.StatusInProgress, domain.StatusQueued); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		now := time.Now()
		d.FinalUploaded = true
		if !d.EscrowEnabled {
			d.Status = domain.StatusCompleted
			d.FinalizedOn = &now
			d.AutoFinalizeOn = nil
		} else {
			deadline := now.Add(s.autoFinalize)
			d.Status = domain.StatusReview
			d.AutoFinalizeOn = &deadline
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		s.notify.Notify(ctx, order.BuyerID, EventFinalUploaded, domain.DeliverableRef(d.ID))
		return nil
	})
}

// Dispute lets the buyer contest the work. From REVIEW it is always
// available; earlier it requires the turnaround-based window to have
// elapsed.
func (s *Service) Dispute(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "dispute", domain.StatusInProgress, domain.StatusQueued, domain.StatusReview); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsBuyer, HasStaffPower)); err != nil {
			return err
		}
		if !d.DisputeWindowOpen(time.Now()) {
			return &domain.StateConflictError{Current: d.Status, Operation: "dispute (the turnaround window has not elapsed for)"}
		}
		now := time.Now()
		d.Status = domain.StatusDisputed
		d.DisputedOn = &now
		d.AutoFinalizeOn = nil
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		s.notify.Notify(ctx, order.SellerID, EventDisputeFiled, domain.DeliverableRef(d.ID))
		return nil
	})
}

// ClaimDispute assigns the first claiming staff member as arbitrator. A
// losing concurrent claim fails with ErrDisputeAlreadyClaimed and changes
// nothing.
func (s *Service) ClaimDispute(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "claim the dispute of", domain.StatusDisputed); err != nil {
			return err
		}
		if err := requireActor(actor, order, HasStaffPower); err != nil {
			return err
		}
		claimed, err := s.repo.ClaimDispute(ctx, d.ID, actor.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrDisputeAlreadyClaimed
		}
		ref := domain.DeliverableRef(d.ID)
		s.notify.Notify(ctx, order.BuyerID, EventDisputeClaimed, ref)
		s.notify.Notify(ctx, order.SellerID, EventDisputeClaimed, ref)
		return nil
	})
}

// Approve completes the deliverable and releases held funds to the seller.
// Staff resolving a dispute also clears the dispute marker and recalls the
// notification.
func (s *Service) Approve(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "approve", domain.StatusReview, domain.StatusDisputed); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsBuyer, HasStaffPower)); err != nil {
			return err
		}
		fromDispute := d.Status == domain.StatusDisputed
		now := time.Now()
		d.Status = domain.StatusCompleted
		d.FinalizedOn = &now
		d.AutoFinalizeOn = nil
		if fromDispute && HasStaffPower(actor, order) {
			d.DisputedOn = nil
			s.notify.Recall(ctx, order.SellerID, EventDisputeFiled, domain.DeliverableRef(d.ID))
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		if d.EscrowEnabled {
			plan, err := s.plans.PlanFor(ctx, order.SellerID)
			if err != nil {
				return err
			}
			if err := s.escrow.ReleaseFunds(ctx, d, order.SellerID, plan); err != nil {
				return err
			}
		}
		s.notify.Notify(ctx, order.SellerID, EventOrderCompleted, domain.DeliverableRef(d.ID))
		return nil
	})
}

// Refund reverses the escrow hold and retires the deliverable. If the
// processor rejects the refund the unit of work still commits so the
// FAILURE record persists; the status does not advance and the caller must
// retry.
func (s *Service) Refund(ctx context.Context, actor Actor, deliverableID int) error {
	var declined *domain.GatewayError
	err := s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "refund", domain.StatusQueued, domain.StatusInProgress, domain.StatusReview, domain.StatusDisputed); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		if d.EscrowEnabled {
			if err := s.escrow.RefundFunds(ctx, d, order.BuyerID); err != nil {
				if errors.As(err, &declined) {
					return nil
				}
				return err
			}
		}
		now := time.Now()
		d.Status = domain.StatusRefunded
		d.RefundedOn = &now
		d.AutoFinalizeOn = nil
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		s.notify.Notify(ctx, order.BuyerID, EventOrderRefunded, domain.DeliverableRef(d.ID))
		return nil
	})
	if err != nil {
		return err
	}
	if declined != nil {
		return declined
	}
	return nil
}

// Cancel retires a deliverable no money has been held for. A deliverable
// the seller never picked up is recorded as MISSED rather than CANCELLED.
func (s *Service) Cancel(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "cancel", domain.StatusWaiting, domain.StatusLimbo, domain.StatusNew, domain.StatusPaymentPending); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsBuyer, IsSeller, HasStaffPower)); err != nil {
			return err
		}
		if d.Status == domain.StatusLimbo {
			d.Status = domain.StatusMissed
		} else {
			d.Status = domain.StatusCancelled
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		if err := s.invoices.VoidInvoice(ctx, d.InvoiceID); err != nil {
			return err
		}
		s.notify.Notify(ctx, order.BuyerID, EventOrderCancelled, domain.DeliverableRef(d.ID))
		return nil
	})
}

// Reopen pulls a deliverable back into revision. Final upload state and the
// auto-finalize deadline are cleared; a COMPLETED deliverable can only be
// reopened when escrow was disabled and the finalization window has not
// elapsed.
func (s *Service) Reopen(ctx context.Context, actor Actor, deliverableID int) error {
	return s.locked(ctx, deliverableID, func(ctx context.Context, d *domain.Deliverable, order *domain.Order) error {
		if err := requireStatus(d, "reopen", domain.StatusReview, domain.StatusPaymentPending, domain.StatusDisputed, domain.StatusCompleted); err != nil {
			return err
		}
		if err := requireActor(actor, order, AnyOf(IsSeller, HasStaffPower)); err != nil {
			return err
		}
		if d.Status == domain.StatusCompleted {
			if d.EscrowEnabled {
				return &domain.StateConflictError{Current: d.Status, Operation: "reopen an escrow-backed"}
			}
			if d.FinalizedOn == nil || time.Now().After(d.FinalizedOn.Add(s.autoFinalize)) {
				return &domain.StateConflictError{Current: d.Status, Operation: "reopen (the revision window has closed for)"}
			}
		}
		d.FinalUploaded = false
		d.AutoFinalizeOn = nil
		switch d.Status {
		case domain.StatusReview, domain.StatusCompleted:
			d.Status = domain.StatusInProgress
			d.FinalizedOn = nil
		case domain.StatusPaymentPending, domain.StatusDisputed:
			// Status holds; only the upload state resets.
		}
		return s.repo.Update(ctx, d)
	})
}

// HandlePaymentEvent applies a processor webhook. Replayed events are
// acknowledged without effect; a first-time approval settles the pending
// hold and advances the deliverable exactly as an in-band payment would.
func (s *Service) HandlePaymentEvent(ctx context.Context, remoteID string, approved bool, message string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		result, err := s.escrow.ReconcileWebhook(ctx, remoteID, approved, message)
		if err != nil {
			return err
		}
		if result.Duplicate || !approved {
			return nil
		}
		if result.Target == nil || result.Target.Kind != domain.RefDeliverable {
			return nil
		}
		d, err := s.repo.GetForUpdate(ctx, result.Target.ID)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.NewConsistencyError("webhook %s targets missing deliverable %d", remoteID, result.Target.ID)
		}
		if d.Status != domain.StatusPaymentPending {
			zap.L().Info("payment event for already-settled deliverable",
				zap.String("remoteID", remoteID),
				zap.Int("deliverableID", d.ID),
				zap.String("status", d.Status.String()),
			)
			return nil
		}
		order, err := s.repo.GetOrder(ctx, d.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NewConsistencyError("deliverable %d references missing order %d", d.ID, d.OrderID)
		}
		return s.advancePaid(ctx, d, order)
	})
}

// ReviewPastDeadline lists deliverables the auto-finalize sweep should
// approve on the platform's behalf.
func (s *Service) ReviewPastDeadline(ctx context.Context, now time.Time, limit uint32) ([]domain.Deliverable, error) {
	return s.repo.FindReviewPastDeadline(ctx, now, limit)
}
