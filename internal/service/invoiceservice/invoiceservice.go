package invoiceservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/pkg/money"
)

// Repo is the persistence surface for invoices and line items.
type Repo interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	GetInvoice(ctx context.Context, id int) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id int, status domain.InvoiceStatus) error
	LinesFor(ctx context.Context, invoiceID int) ([]domain.LineItem, error)
	InsertLine(ctx context.Context, line *domain.LineItem) error
	UpsertDerivedLine(ctx context.Context, line *domain.LineItem) error
	DeleteLine(ctx context.Context, lineID int) error
	DeleteLinesOfTypes(ctx context.Context, invoiceID int, types []domain.LineItemType) error
}

// Table-service fee configuration, only applied to convention table orders.
var (
	tablePercentage = money.D("10")
	tableStatic     = money.D("2.00")
	tableTax        = money.D("8.25")
)

// cascadeBase is the set of buyer-facing line types fees are carved out of.
var cascadeBase = []domain.LineItemType{domain.LineBasePrice, domain.LineAddOn, domain.LineTip}

type Service struct {
	repo         Repo
	minimumPrice decimal.Decimal
}

func New(repo Repo, minimumPrice decimal.Decimal) *Service {
	return &Service{
		repo:         repo,
		minimumPrice: minimumPrice,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	return s.repo.CreateInvoice(ctx, invoice)
}

func (s *Service) GetInvoice(ctx context.Context, id int) (*domain.Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) MarkPaid(ctx context.Context, invoiceID int) error {
	return s.repo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoicePaid)
}

func (s *Service) VoidInvoice(ctx context.Context, invoiceID int) error {
	return s.repo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceVoid)
}

func (s *Service) LinesFor(ctx context.Context, invoiceID int) ([]domain.LineItem, error) {
	return s.repo.LinesFor(ctx, invoiceID)
}

// InvoiceTotal reckons the current line set to the owed amount.
func (s *Service) InvoiceTotal(ctx context.Context, invoiceID int) (decimal.Decimal, error) {
	lines, err := s.repo.LinesFor(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}
	return Total(lines), nil
}

// Specs computes the ledger postings the current line set implies.
func (s *Service) Specs(ctx context.Context, invoiceID int) ([]TransactionSpec, error) {
	lines, err := s.repo.LinesFor(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return TransactionSpecs(lines), nil
}

// InsertBaseLine persists the invoice's price line. Called once when the
// order is opened; thereafter the base price changes via updates, not
// re-insertion.
func (s *Service) InsertBaseLine(ctx context.Context, line *domain.LineItem) error {
	if line.Type != domain.LineBasePrice {
		return domain.NewValidationError("type", "must be the base price")
	}
	if !money.IsCents(line.Amount) {
		return domain.NewValidationError("amount", "must be a whole number of cents")
	}
	line.Priority = domain.PriorityFor(domain.LineBasePrice)
	return s.repo.InsertLine(ctx, line)
}

// AddLine validates and persists a caller-supplied line item (add-on, tip,
// extra). Derived fee lines are never added this way.
func (s *Service) AddLine(ctx context.Context, line *domain.LineItem) error {
	switch line.Type {
	case domain.LineAddOn, domain.LineTip, domain.LineExtra:
	default:
		return domain.NewValidationError("type", "only add-on, tip and extra lines may be added directly")
	}
	if !money.IsCents(line.Amount) {
		return domain.NewValidationError("amount", "must be a whole number of cents")
	}
	if !line.Percentage.IsZero() {
		return domain.NewValidationError("percentage", "direct lines are flat amounts")
	}
	line.Priority = domain.PriorityFor(line.Type)
	return s.repo.InsertLine(ctx, line)
}

func (s *Service) RemoveLine(ctx context.Context, invoiceID, lineID int) error {
	lines, err := s.repo.LinesFor(ctx, invoiceID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.ID != lineID {
			continue
		}
		if line.Type == domain.LineBasePrice {
			return domain.NewValidationError("line", "the base price cannot be removed")
		}
		return s.repo.DeleteLine(ctx, lineID)
	}
	return domain.NewValidationError("line", "no such line item on this invoice")
}

// DeclareTotal lets the seller quote the figure the buyer should pay in
// total. The invoice's add-on line absorbs the difference between that
// figure and the declared lines, accounting for the shield percentage when
// the fee rides on top of the price.
func (s *Service) DeclareTotal(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan, target decimal.Decimal) error {
	if !money.IsCents(target) {
		return domain.NewValidationError("total", "must be a whole number of cents")
	}
	lines, err := s.repo.LinesFor(ctx, deliverable.InvoiceID)
	if err != nil {
		return err
	}
	declared := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		if line.Type == domain.LineAddOn {
			continue
		}
		if line.Priority >= domain.PriorityFor(domain.LineShield) {
			continue
		}
		declared = append(declared, line)
	}
	percentage := decimal.Zero
	if deliverable.EscrowEnabled && !deliverable.CascadeFees {
		percentage = plan.ShieldPercentage
	}
	amount, err := SolveBackInto(target, Total(declared), percentage)
	if err != nil {
		return err
	}
	addOn := &domain.LineItem{
		InvoiceID:          deliverable.InvoiceID,
		Type:               domain.LineAddOn,
		Amount:             amount,
		Priority:           domain.PriorityFor(domain.LineAddOn),
		DestinationAccount: domain.AccountEscrow,
		DestinationUserID:  &sellerID,
	}
	return s.repo.UpsertDerivedLine(ctx, addOn)
}

// VerifyTotal re-derives the invoice total and rejects configurations that
// could never be charged: negative totals, escrow totals below the platform
// minimum, or an invoice missing its base price line.
func (s *Service) VerifyTotal(ctx context.Context, deliverable *domain.Deliverable) error {
	lines, err := s.repo.LinesFor(ctx, deliverable.InvoiceID)
	if err != nil {
		return err
	}
	baseLines := 0
	for _, line := range lines {
		if line.Type == domain.LineBasePrice {
			baseLines++
		}
	}
	if baseLines != 1 {
		return domain.NewConsistencyError("invoice %d has %d base price lines", deliverable.InvoiceID, baseLines)
	}
	total := Total(lines)
	if total.IsNegative() {
		return domain.NewValidationError("total", "cannot end up less than $0")
	}
	if total.IsZero() {
		return nil
	}
	if deliverable.EscrowEnabled && total.LessThan(s.minimumPrice) {
		return domain.NewValidationError("total", "cannot end up less than the platform minimum of $"+s.minimumPrice.StringFixed(2))
	}
	return nil
}

// ReconcileLines recomputes which derived line items should exist for the
// deliverable's current flags and seller plan, updating, creating and
// deleting so that at most one live line of each derived type remains.
// Safe to call repeatedly: a second call with no intervening state change
// leaves the line set untouched.
func (s *Service) ReconcileLines(ctx context.Context, deliverable *domain.Deliverable, sellerID int, plan *domain.ServicePlan) error {
	switch deliverable.Status {
	case domain.StatusWaiting, domain.StatusNew, domain.StatusLimbo, domain.StatusPaymentPending:
	default:
		return nil
	}
	invoice, err := s.repo.GetInvoice(ctx, deliverable.InvoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.NewConsistencyError("deliverable %d has no invoice", deliverable.ID)
	}
	if deliverable.Status == domain.StatusPaymentPending && invoice.Status == domain.InvoiceDraft {
		if err := s.repo.UpdateInvoiceStatus(ctx, invoice.ID, domain.InvoiceOpen); err != nil {
			return err
		}
	}
	lines, err := s.repo.LinesFor(ctx, deliverable.InvoiceID)
	if err != nil {
		return err
	}
	var declared []domain.LineItem
	for _, line := range lines {
		if line.Priority < domain.PriorityFor(domain.LineShield) {
			declared = append(declared, line)
		}
	}
	baseTotal := Total(declared)
	escrowEnabled := deliverable.EscrowEnabled && baseTotal.IsPositive()

	switch {
	case deliverable.TableOrder:
		tableLine := &domain.LineItem{
			InvoiceID:          invoice.ID,
			Type:               domain.LineTableService,
			Amount:             tableStatic,
			Percentage:         tablePercentage,
			Priority:           domain.PriorityFor(domain.LineTableService),
			DestinationAccount: domain.AccountReserve,
		}
		if deliverable.CascadeFees {
			tableLine.CascadeUnder = cascadeBase
		}
		if err := s.repo.UpsertDerivedLine(ctx, tableLine); err != nil {
			return err
		}
		taxLine := &domain.LineItem{
			InvoiceID:          invoice.ID,
			Type:               domain.LineTax,
			Percentage:         tableTax,
			Priority:           domain.PriorityFor(domain.LineTax),
			BackIntoPercentage: deliverable.CascadeFees,
			DestinationAccount: domain.AccountMoneyHole,
		}
		if deliverable.CascadeFees {
			taxLine.CascadeUnder = cascadeBase
		}
		if err := s.repo.UpsertDerivedLine(ctx, taxLine); err != nil {
			return err
		}
		if err := s.repo.DeleteLinesOfTypes(ctx, invoice.ID, []domain.LineItemType{domain.LineShield, domain.LineDeliverableTracking}); err != nil {
			return err
		}
	case escrowEnabled:
		shieldLine := &domain.LineItem{
			InvoiceID:          invoice.ID,
			Type:               domain.LineShield,
			Amount:             plan.ShieldStatic,
			Percentage:         plan.ShieldPercentage,
			Priority:           domain.PriorityFor(domain.LineShield),
			BackIntoPercentage: !deliverable.CascadeFees,
			DestinationAccount: domain.AccountReserve,
		}
		if deliverable.CascadeFees {
			shieldLine.CascadeUnder = cascadeBase
		}
		if err := s.repo.UpsertDerivedLine(ctx, shieldLine); err != nil {
			return err
		}
		if err := s.repo.DeleteLinesOfTypes(ctx, invoice.ID, []domain.LineItemType{domain.LineTableService, domain.LineTax, domain.LineDeliverableTracking}); err != nil {
			return err
		}
	default:
		if err := s.repo.DeleteLinesOfTypes(ctx, invoice.ID, []domain.LineItemType{domain.LineShield, domain.LineTableService, domain.LineTax}); err != nil {
			return err
		}
		if plan.PerDeliverablePrice.IsPositive() {
			trackingLine := &domain.LineItem{
				InvoiceID:          invoice.ID,
				Type:               domain.LineDeliverableTracking,
				Amount:             plan.PerDeliverablePrice,
				Priority:           domain.PriorityFor(domain.LineDeliverableTracking),
				DestinationAccount: domain.AccountUnprocessedEarnings,
			}
			if err := s.repo.UpsertDerivedLine(ctx, trackingLine); err != nil {
				return err
			}
		} else {
			if err := s.repo.DeleteLinesOfTypes(ctx, invoice.ID, []domain.LineItemType{domain.LineDeliverableTracking}); err != nil {
				return err
			}
		}
	}
	zap.L().Debug("reconciled line items",
		zap.Int("deliverableID", deliverable.ID),
		zap.Int("invoiceID", invoice.ID),
		zap.Int("sellerID", sellerID),
		zap.Bool("escrow", escrowEnabled),
	)
	return nil
}
