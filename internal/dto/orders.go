package dto

import "time"

type PlaceOrderRequestDTO struct {
	SellerID           int    `json:"seller_id" validate:"required" example:"42"`
	Price              string `json:"price" validate:"required" example:"10.00"`
	TaskWeight         int    `json:"task_weight" example:"3"`
	ExpectedTurnaround int    `json:"expected_turnaround" example:"5"`
	Revisions          int    `json:"revisions" example:"1"`
	EscrowEnabled      bool   `json:"escrow_enabled" example:"true"`
	TableOrder         bool   `json:"table_order"`
	CascadeFees        bool   `json:"cascade_fees" example:"true"`
	WaitList           bool   `json:"wait_list"`
}

type DeliverableResponseDTO struct {
	ID                 int        `json:"id" example:"7"`
	OrderID            int        `json:"order_id" example:"5"`
	InvoiceID          int        `json:"invoice_id" example:"9"`
	Status             string     `json:"status" example:"PAYMENT_PENDING"`
	Total              string     `json:"total,omitempty" example:"12.00"`
	EscrowEnabled      bool       `json:"escrow_enabled"`
	FinalUploaded      bool       `json:"final_uploaded"`
	AutoFinalizeOn     *time.Time `json:"auto_finalize_on,omitempty"`
	DisputeAvailableOn *time.Time `json:"dispute_available_on,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AddLineItemRequestDTO struct {
	Type   string `json:"type" validate:"required,oneof=add_on tip extra" example:"tip"`
	Amount string `json:"amount" validate:"required" example:"2.00"`
}

type SetTotalRequestDTO struct {
	Total string `json:"total" validate:"required" example:"25.00"`
}

type LineItemResponseDTO struct {
	ID         int    `json:"id" example:"3"`
	Type       string `json:"type" example:"base_price"`
	Amount     string `json:"amount" example:"10.00"`
	Percentage string `json:"percentage,omitempty" example:"8"`
	Attributed string `json:"attributed" example:"8.57"`
}

type InvoiceResponseDTO struct {
	ID     int                   `json:"id" example:"9"`
	Status string                `json:"status" example:"OPEN"`
	Total  string                `json:"total" example:"12.00"`
	Lines  []LineItemResponseDTO `json:"lines"`
}
