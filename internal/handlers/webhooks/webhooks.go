package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/dto"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

// Service applies a processor event to the ledger and state machine.
type Service interface {
	HandlePaymentEvent(ctx context.Context, remoteID string, approved bool, message string) error
}

type WebhookHandler struct {
	deliverables Service
}

func New(deliverables Service) *WebhookHandler {
	return &WebhookHandler{
		deliverables: deliverables,
	}
}

// PaymentEvent godoc
//
//	@Summary		Ingest a processor settlement event
//	@Description	Idempotent by remote id; a redelivered event is acknowledged without posting
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PaymentEventDTO	true	"Processor event"
//	@Success		200	{object}	dto.PaymentEventResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payload"
//	@Failure		422	{object}	utils.Response	"Unknown remote id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/payments [post]
func (h *WebhookHandler) PaymentEvent(w http.ResponseWriter, r *http.Request) {
	var event dto.PaymentEventDTO
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.RemoteID == "" || (event.Status != "approved" && event.Status != "declined") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	err := h.deliverables.HandlePaymentEvent(r.Context(), event.RemoteID, event.Status == "approved", event.Message)
	if err != nil {
		var (
			validation  *domain.ValidationError
			consistency *domain.ConsistencyError
		)
		switch {
		case errors.As(err, &validation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, validation.Error())
		case errors.As(err, &consistency):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, consistency.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentEventResponseDTO{Message: "Event processed"})
}
