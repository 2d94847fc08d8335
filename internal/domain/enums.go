package domain

// Account identifies a logical money pool. CARD and BANK represent
// processor-side movement and have no platform-held balance.
type Account int

const (
	AccountCard                    Account = 300
	AccountBank                    Account = 301
	AccountEscrow                  Account = 302
	AccountHoldings                Account = 303
	AccountReserve                 Account = 304
	AccountUnprocessedEarnings     Account = 305
	AccountACHMiscFees             Account = 309
	AccountMoneyHole               Account = 311
	AccountCashDeposit             Account = 407
	AccountPayoutMirrorSource      Account = 500
	AccountPayoutMirrorDestination Account = 501
)

// TransactionStatus of a ledger record.
type TransactionStatus int

const (
	TransactionSuccess TransactionStatus = 0
	TransactionFailure TransactionStatus = 1
	TransactionPending TransactionStatus = 2
)

// TransactionCategory describes why money moved.
type TransactionCategory int

const (
	CategoryShieldFee        TransactionCategory = 400
	CategoryEscrowHold       TransactionCategory = 401
	CategoryEscrowRelease    TransactionCategory = 402
	CategoryEscrowRefund     TransactionCategory = 403
	CategorySubscriptionDues TransactionCategory = 404
	CategoryCashWithdraw     TransactionCategory = 406
	CategoryThirdPartyFee    TransactionCategory = 408
	CategoryPremiumBonus     TransactionCategory = 409
	CategoryInternalTransfer TransactionCategory = 410
	CategoryCorrection       TransactionCategory = 412
	CategoryTableHandling    TransactionCategory = 413
	CategoryTaxes            TransactionCategory = 414
	CategoryExtraItem        TransactionCategory = 415
	CategoryTipSend          TransactionCategory = 419
)

// LineItemType identifies one priced component of an invoice.
type LineItemType int

const (
	LineBasePrice           LineItemType = 0
	LineAddOn               LineItemType = 1
	LineShield              LineItemType = 2
	LineTip                 LineItemType = 4
	LineTableService        LineItemType = 5
	LineTax                 LineItemType = 6
	LineExtra               LineItemType = 7
	LineDeliverableTracking LineItemType = 10
)

// PriorityFor returns the evaluation order for a line item type. Lower
// priorities are folded into the total first; percentage lines cascade over
// the subtotals of everything beneath them.
func PriorityFor(t LineItemType) int {
	switch t {
	case LineBasePrice:
		return 0
	case LineAddOn:
		return 100
	case LineDeliverableTracking:
		return 115
	case LineTip:
		return 200
	case LineShield, LineTableService:
		return 300
	case LineExtra:
		return 400
	case LineTax:
		return 600
	default:
		return 1000
	}
}

// CategoryFor maps a line item type to the ledger category its subtotal is
// posted under.
func CategoryFor(t LineItemType) TransactionCategory {
	switch t {
	case LineBasePrice, LineAddOn:
		return CategoryEscrowHold
	case LineShield:
		return CategoryShieldFee
	case LineTip:
		return CategoryTipSend
	case LineTableService:
		return CategoryTableHandling
	case LineTax:
		return CategoryTaxes
	case LineExtra:
		return CategoryExtraItem
	case LineDeliverableTracking:
		return CategorySubscriptionDues
	default:
		return CategoryInternalTransfer
	}
}

// InvoiceStatus lifecycle.
type InvoiceStatus int

const (
	InvoiceDraft InvoiceStatus = 0
	InvoiceOpen  InvoiceStatus = 1
	InvoicePaid  InvoiceStatus = 2
	InvoiceVoid  InvoiceStatus = 5
)

// DeliverableStatus is the state machine position of one unit of
// commissioned work.
type DeliverableStatus int

const (
	StatusWaiting        DeliverableStatus = 0
	StatusNew            DeliverableStatus = 1
	StatusPaymentPending DeliverableStatus = 2
	StatusQueued         DeliverableStatus = 3
	StatusInProgress     DeliverableStatus = 4
	StatusReview         DeliverableStatus = 5
	StatusCancelled      DeliverableStatus = 6
	StatusDisputed       DeliverableStatus = 7
	StatusCompleted      DeliverableStatus = 8
	StatusRefunded       DeliverableStatus = 9
	StatusLimbo          DeliverableStatus = 10
	StatusMissed         DeliverableStatus = 11
)

var deliverableStatusNames = map[DeliverableStatus]string{
	StatusWaiting:        "WAITING",
	StatusNew:            "NEW",
	StatusPaymentPending: "PAYMENT_PENDING",
	StatusQueued:         "QUEUED",
	StatusInProgress:     "IN_PROGRESS",
	StatusReview:         "REVIEW",
	StatusCancelled:      "CANCELLED",
	StatusDisputed:       "DISPUTED",
	StatusCompleted:      "COMPLETED",
	StatusRefunded:       "REFUNDED",
	StatusLimbo:          "LIMBO",
	StatusMissed:         "MISSED",
}

func (s DeliverableStatus) String() string {
	if name, ok := deliverableStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// BalanceFilter restricts which record statuses a balance query sums.
type BalanceFilter int

const (
	BalanceAll        BalanceFilter = 0
	BalancePostedOnly BalanceFilter = 1
	BalancePending    BalanceFilter = 2
)

// RefKind tags an EntityRef.
type RefKind string

const (
	RefDeliverable RefKind = "deliverable"
	RefInvoice     RefKind = "invoice"
	RefLineItem    RefKind = "line_item"
	RefServicePlan RefKind = "service_plan"
	RefTransaction RefKind = "transaction"
)

// Role of an authenticated actor.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleStaff  Role = "staff"
)

var accountNames = map[Account]string{
	AccountCard:                    "CARD",
	AccountBank:                    "BANK",
	AccountEscrow:                  "ESCROW",
	AccountHoldings:                "HOLDINGS",
	AccountReserve:                 "RESERVE",
	AccountUnprocessedEarnings:     "UNPROCESSED_EARNINGS",
	AccountACHMiscFees:             "ACH_MISC_FEES",
	AccountMoneyHole:               "MONEY_HOLE",
	AccountCashDeposit:             "CASH_DEPOSIT",
	AccountPayoutMirrorSource:      "PAYOUT_MIRROR_SOURCE",
	AccountPayoutMirrorDestination: "PAYOUT_MIRROR_DESTINATION",
}

func (a Account) String() string {
	if name, ok := accountNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s TransactionStatus) String() string {
	switch s {
	case TransactionSuccess:
		return "SUCCESS"
	case TransactionFailure:
		return "FAILURE"
	case TransactionPending:
		return "PENDING"
	}
	return "UNKNOWN"
}

var categoryNames = map[TransactionCategory]string{
	CategoryShieldFee:        "SHIELD_FEE",
	CategoryEscrowHold:       "ESCROW_HOLD",
	CategoryEscrowRelease:    "ESCROW_RELEASE",
	CategoryEscrowRefund:     "ESCROW_REFUND",
	CategorySubscriptionDues: "SUBSCRIPTION_DUES",
	CategoryCashWithdraw:     "CASH_WITHDRAW",
	CategoryThirdPartyFee:    "THIRD_PARTY_FEE",
	CategoryPremiumBonus:     "PREMIUM_BONUS",
	CategoryInternalTransfer: "INTERNAL_TRANSFER",
	CategoryCorrection:       "CORRECTION",
	CategoryTableHandling:    "TABLE_HANDLING",
	CategoryTaxes:            "TAXES",
	CategoryExtraItem:        "EXTRA_ITEM",
	CategoryTipSend:          "TIP_SEND",
}

func (c TransactionCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

var lineItemTypeNames = map[LineItemType]string{
	LineBasePrice:           "base_price",
	LineAddOn:               "add_on",
	LineShield:              "shield",
	LineTip:                 "tip",
	LineTableService:        "table_service",
	LineTax:                 "tax",
	LineExtra:               "extra",
	LineDeliverableTracking: "deliverable_tracking",
}

func (t LineItemType) String() string {
	if name, ok := lineItemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseLineItemType maps the wire name of a line type back to its constant.
func ParseLineItemType(name string) (LineItemType, bool) {
	for t, n := range lineItemTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

func (s InvoiceStatus) String() string {
	switch s {
	case InvoiceDraft:
		return "DRAFT"
	case InvoiceOpen:
		return "OPEN"
	case InvoicePaid:
		return "PAID"
	case InvoiceVoid:
		return "VOID"
	}
	return "UNKNOWN"
}
