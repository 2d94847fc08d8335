package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	PlanID       int       `db:"plan_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// ServicePlan carries the fee constants applied to a seller's deliverables.
// Percentages are human percentages: 8 means 8%.
type ServicePlan struct {
	ID                  int             `db:"id"`
	Name                string          `db:"name"`
	ShieldPercentage    decimal.Decimal `db:"shield_percentage"`
	ShieldStatic        decimal.Decimal `db:"shield_static"`
	BonusPercentage     decimal.Decimal `db:"bonus_percentage"`
	BonusStatic         decimal.Decimal `db:"bonus_static"`
	PerDeliverablePrice decimal.Decimal `db:"per_deliverable_price"`
	MaxSimultaneous     int             `db:"max_simultaneous"`
}

// EntityRef is a weak reference from a ledger record to a business object.
// The ledger never owns or cascade-deletes what it points at.
type EntityRef struct {
	Kind RefKind `db:"kind"`
	ID   int     `db:"entity_id"`
}

func DeliverableRef(id int) EntityRef { return EntityRef{Kind: RefDeliverable, ID: id} }
func InvoiceRef(id int) EntityRef     { return EntityRef{Kind: RefInvoice, ID: id} }

// TransactionRecord is one movement of money between two logical accounts.
// Once status is SUCCESS the amount, source and destination never change;
// only FinalizedOn and RemoteIDs may be appended to.
type TransactionRecord struct {
	ID              int                 `db:"id"`
	Source          Account             `db:"source"`
	Destination     Account             `db:"destination"`
	Amount          decimal.Decimal     `db:"amount"`
	Currency        string              `db:"currency"`
	PayerID         *int                `db:"payer_id"`
	PayeeID         *int                `db:"payee_id"`
	Status          TransactionStatus   `db:"status"`
	Category        TransactionCategory `db:"category"`
	RemoteIDs       []string            `db:"remote_ids"`
	ResponseMessage string              `db:"response_message"`
	Targets         []EntityRef         `db:"-"`
	CreatedOn       time.Time           `db:"created_on"`
	FinalizedOn     *time.Time          `db:"finalized_on"`
}

// HasRemoteID reports whether the record already carries the given external
// processor id.
func (t *TransactionRecord) HasRemoteID(id string) bool {
	for _, existing := range t.RemoteIDs {
		if existing == id {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID       int           `db:"id"`
	BillToID *int          `db:"bill_to_id"`
	IssuerID int           `db:"issuer_id"`
	Status   InvoiceStatus `db:"status"`
}

// LineItem is one priced or percentage-based component of an invoice.
type LineItem struct {
	ID                 int             `db:"id"`
	InvoiceID          int             `db:"invoice_id"`
	Type               LineItemType    `db:"type"`
	Amount             decimal.Decimal `db:"amount"`
	Percentage         decimal.Decimal `db:"percentage"`
	Priority           int             `db:"priority"`
	CascadeUnder       []LineItemType  `db:"cascade_under"`
	BackIntoPercentage bool            `db:"back_into_percentage"`
	DestinationAccount Account         `db:"destination_account"`
	DestinationUserID  *int            `db:"destination_user_id"`
}

// Cascades reports whether this line's contribution is carved out of the
// subtotals of lower-priority lines instead of increasing the grand total.
func (l *LineItem) Cascades() bool {
	return len(l.CascadeUnder) > 0
}

// CascadesOver reports whether t is one of the types this line taxes.
func (l *LineItem) CascadesOver(t LineItemType) bool {
	for _, under := range l.CascadeUnder {
		if under == t {
			return true
		}
	}
	return false
}

// Order is a thin grouping of deliverables between a buyer and a seller.
type Order struct {
	ID        int       `db:"id"`
	BuyerID   int       `db:"buyer_id"`
	SellerID  int       `db:"seller_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Deliverable is one unit of commissioned work. It is mutated only through
// the state machine operations, and never hard-deleted once any ledger entry
// targets it.
type Deliverable struct {
	ID                           int               `db:"id"`
	OrderID                      int               `db:"order_id"`
	InvoiceID                    int               `db:"invoice_id"`
	Status                       DeliverableStatus `db:"status"`
	TaskWeight                   int               `db:"task_weight"`
	ExpectedTurnaround           int               `db:"expected_turnaround"`
	AdjustmentTaskWeight         int               `db:"adjustment_task_weight"`
	AdjustmentExpectedTurnaround int               `db:"adjustment_expected_turnaround"`
	Revisions                    int               `db:"revisions"`
	EscrowEnabled                bool              `db:"escrow_enabled"`
	TableOrder                   bool              `db:"table_order"`
	CascadeFees                  bool              `db:"cascade_fees"`
	FinalUploaded                bool              `db:"final_uploaded"`
	AutoFinalizeOn               *time.Time        `db:"auto_finalize_on"`
	DisputeAvailableOn           *time.Time        `db:"dispute_available_on"`
	DisputedOn                   *time.Time        `db:"disputed_on"`
	ArbitratorID                 *int              `db:"arbitrator_id"`
	PaidOn                       *time.Time        `db:"paid_on"`
	FinalizedOn                  *time.Time        `db:"finalized_on"`
	RefundedOn                   *time.Time        `db:"refunded_on"`
	CreatedAt                    time.Time         `db:"created_at"`
}

// DisputeWindowOpen reports whether the time-based dispute guard has elapsed.
func (d *Deliverable) DisputeWindowOpen(now time.Time) bool {
	if d.Status == StatusReview {
		return true
	}
	return d.DisputeAvailableOn != nil && !now.Before(*d.DisputeAvailableOn)
}
