package dto

import "time"

type BalanceResponseDTO struct {
	Posted  string `json:"posted" example:"120.50"`
	Pending string `json:"pending" example:"15.00"`
}

type WithdrawRequestDTO struct {
	Amount string `json:"amount" validate:"required" example:"50.00"`
}

type TransactionResponseDTO struct {
	ID          int        `json:"id" example:"11"`
	Source      string     `json:"source" example:"ESCROW"`
	Destination string     `json:"destination" example:"HOLDINGS"`
	Amount      string     `json:"amount" example:"8.57"`
	Status      string     `json:"status" example:"SUCCESS"`
	Category    string     `json:"category" example:"ESCROW_RELEASE"`
	CreatedOn   time.Time  `json:"created_on"`
	FinalizedOn *time.Time `json:"finalized_on,omitempty"`
}
