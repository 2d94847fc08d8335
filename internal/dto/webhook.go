package dto

// PaymentEventDTO is the processor's webhook payload. RemoteID doubles as
// the idempotency key: redelivered events carry the same id and must not
// post twice.
type PaymentEventDTO struct {
	RemoteID string `json:"remote_id" validate:"required" example:"ch_7a81"`
	Status   string `json:"status" validate:"required,oneof=approved declined" example:"approved"`
	Message  string `json:"message,omitempty"`
}

type PaymentEventResponseDTO struct {
	Message string `json:"message"`
}
