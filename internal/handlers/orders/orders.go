package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/dto"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/pkg/auth"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

// Service is the deliverable state machine surface the HTTP layer drives.
type Service interface {
	PlaceOrder(ctx context.Context, intent deliverableservice.OrderIntent) (*domain.Deliverable, error)
	Get(ctx context.Context, id int) (*domain.Deliverable, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Deliverable, error)
	AddLineItem(ctx context.Context, actor deliverableservice.Actor, deliverableID int, line *domain.LineItem) error
	SetBuyerTotal(ctx context.Context, actor deliverableservice.Actor, deliverableID int, target decimal.Decimal) error
	RemoveLineItem(ctx context.Context, actor deliverableservice.Actor, deliverableID, lineID int) error
	Accept(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Pay(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Start(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	MarkFinal(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Dispute(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	ClaimDispute(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Approve(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Refund(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Cancel(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
	Reopen(ctx context.Context, actor deliverableservice.Actor, deliverableID int) error
}

// Invoices renders invoice contents for display.
type Invoices interface {
	LinesFor(ctx context.Context, invoiceID int) ([]domain.LineItem, error)
	GetInvoice(ctx context.Context, id int) (*domain.Invoice, error)
}

type OrderHandler struct {
	orderService Service
	invoices     Invoices
}

func New(orderService Service, invoices Invoices) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		invoices:     invoices,
	}
}

func actorFrom(r *http.Request) deliverableservice.Actor {
	return deliverableservice.Actor{
		ID:   r.Context().Value(auth.UserIDKey).(int),
		Role: domain.Role(r.Context().Value(auth.RoleKey).(string)),
	}
}

func deliverableID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// respondWithDomainError maps the error taxonomy onto HTTP statuses.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var (
		validation  *domain.ValidationError
		conflict    *domain.StateConflictError
		gatewayFail *domain.GatewayError
	)
	switch {
	case errors.As(err, &validation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, validation.Error())
	case errors.As(err, &conflict):
		utils.RespondWithError(w, http.StatusConflict, conflict.Error())
	case errors.Is(err, deliverableservice.ErrPermission):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, deliverableservice.ErrDisputeAlreadyClaimed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &gatewayFail):
		utils.RespondWithError(w, http.StatusPaymentRequired, gatewayFail.Message)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDeliverableDTO(d *domain.Deliverable, total string) dto.DeliverableResponseDTO {
	return dto.DeliverableResponseDTO{
		ID:                 d.ID,
		OrderID:            d.OrderID,
		InvoiceID:          d.InvoiceID,
		Status:             d.Status.String(),
		Total:              total,
		EscrowEnabled:      d.EscrowEnabled,
		FinalUploaded:      d.FinalUploaded,
		AutoFinalizeOn:     d.AutoFinalizeOn,
		DisputeAvailableOn: d.DisputeAvailableOn,
		CreatedAt:          d.CreatedAt,
	}
}

// PlaceOrder godoc
//
//	@Summary		Place a new order
//	@Description	Open an order with one deliverable and its invoice against a seller
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PlaceOrderRequestDTO	true	"Order parameters"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.DeliverableResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		422	{object}	utils.Response	"Invalid price or seller"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)

	var req dto.PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid price format")
		return
	}
	deliverable, err := h.orderService.PlaceOrder(r.Context(), deliverableservice.OrderIntent{
		BuyerID:            actor.ID,
		SellerID:           req.SellerID,
		Price:              price,
		TaskWeight:         req.TaskWeight,
		ExpectedTurnaround: req.ExpectedTurnaround,
		Revisions:          req.Revisions,
		EscrowEnabled:      req.EscrowEnabled,
		TableOrder:         req.TableOrder,
		CascadeFees:        req.CascadeFees,
		WaitList:           req.WaitList,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDeliverableDTO(deliverable, req.Price))
}

// GetDeliverables godoc
//
//	@Summary		List the user's deliverables
//	@Description	Return every deliverable the authenticated user buys or sells
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DeliverableResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetDeliverables(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deliverables, err := h.orderService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.DeliverableResponseDTO, 0, len(deliverables))
	for i := range deliverables {
		response = append(response, toDeliverableDTO(&deliverables[i], ""))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetInvoice godoc
//
//	@Summary		Show a deliverable's invoice
//	@Description	Return the invoice with its line items and each line's attributed amount
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Deliverable id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.InvoiceResponseDTO
//	@Failure		404	{object}	utils.Response	"Deliverable not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/deliverables/{id}/invoice [get]
func (h *OrderHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := deliverableID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deliverable id")
		return
	}
	deliverable, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if deliverable == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Deliverable not found")
		return
	}
	invoice, err := h.invoices.GetInvoice(r.Context(), deliverable.InvoiceID)
	if err != nil || invoice == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	lines, err := h.invoices.LinesFor(r.Context(), deliverable.InvoiceID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	total, values := invoiceservice.Subtotals(lines)
	lineDTOs := make([]dto.LineItemResponseDTO, 0, len(values))
	for _, value := range values {
		lineDTO := dto.LineItemResponseDTO{
			ID:         value.Line.ID,
			Type:       value.Line.Type.String(),
			Amount:     value.Line.Amount.StringFixed(2),
			Attributed: value.Amount.StringFixed(2),
		}
		if !value.Line.Percentage.IsZero() {
			lineDTO.Percentage = value.Line.Percentage.String()
		}
		lineDTOs = append(lineDTOs, lineDTO)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoiceResponseDTO{
		ID:     invoice.ID,
		Status: invoice.Status.String(),
		Total:  total.StringFixed(2),
		Lines:  lineDTOs,
	})
}

// AddLineItem godoc
//
//	@Summary		Add a line item
//	@Description	Attach an add-on, extra or tip to the deliverable's invoice
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Deliverable id"
//	@Param			request	body	dto.AddLineItemRequestDTO	true	"Line item"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Actor may not edit this line"
//	@Failure		409	{object}	utils.Response	"Deliverable is past editing"
//	@Failure		422	{object}	utils.Response	"Invalid line item"
//	@Router			/api/orders/deliverables/{id}/lines [post]
func (h *OrderHandler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := deliverableID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deliverable id")
		return
	}
	var req dto.AddLineItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	lineType, ok := domain.ParseLineItemType(req.Type)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown line item type")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount format")
		return
	}
	line := &domain.LineItem{Type: lineType, Amount: amount}
	if err := h.orderService.AddLineItem(r.Context(), actorFrom(r), id, line); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Line item added"})
}

// SetTotal godoc
//
//	@Summary		Set the buyer-facing total
//	@Description	Reprice the order so the invoice grand total lands on the given figure
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Deliverable id"
//	@Param			request	body	dto.SetTotalRequestDTO	true	"Target total"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Only the seller may reprice"
//	@Failure		409	{object}	utils.Response	"Deliverable is past editing"
//	@Failure		422	{object}	utils.Response	"Target below the platform minimum"
//	@Router			/api/orders/deliverables/{id}/total [post]
func (h *OrderHandler) SetTotal(w http.ResponseWriter, r *http.Request) {
	id, err := deliverableID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deliverable id")
		return
	}
	var req dto.SetTotalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	target, err := decimal.NewFromString(req.Total)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid total format")
		return
	}
	if err := h.orderService.SetBuyerTotal(r.Context(), actorFrom(r), id, target); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order repriced"})
}

// RemoveLineItem godoc
//
//	@Summary		Remove a line item
//	@Description	Delete a caller-added line from the deliverable's invoice
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path	int	true	"Deliverable id"
//	@Param			lineID	path	int	true	"Line item id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		409	{object}	utils.Response	"Deliverable is past editing"
//	@Failure		422	{object}	utils.Response	"Line cannot be removed"
//	@Router			/api/orders/deliverables/{id}/lines/{lineID} [delete]
func (h *OrderHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := deliverableID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deliverable id")
		return
	}
	lineID, err := strconv.Atoi(chi.URLParam(r, "lineID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid line id")
		return
	}
	if err := h.orderService.RemoveLineItem(r.Context(), actorFrom(r), id, lineID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Line item removed"})
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, message string, op func(ctx context.Context, actor deliverableservice.Actor, id int) error) {
	id, err := deliverableID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deliverable id")
		return
	}
	if err := op(r.Context(), actorFrom(r), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

// Accept godoc
//
//	@Summary	Seller accepts the order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Illegal transition"
//	@Router		/api/orders/deliverables/{id}/accept [post]
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Order accepted", h.orderService.Accept)
}

// Pay godoc
//
//	@Summary	Buyer pays for the deliverable
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	402	{object}	utils.Response	"Card declined, retry"
//	@Failure	409	{object}	utils.Response	"Illegal transition"
//	@Router		/api/orders/deliverables/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Payment accepted", h.orderService.Pay)
}

// Start godoc
//
//	@Summary	Seller starts work
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/orders/deliverables/{id}/start [post]
func (h *OrderHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Work started", h.orderService.Start)
}

// MarkFinal godoc
//
//	@Summary	Seller uploads the final
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/orders/deliverables/{id}/final [post]
func (h *OrderHandler) MarkFinal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Final uploaded", h.orderService.MarkFinal)
}

// Dispute godoc
//
//	@Summary	Buyer disputes the deliverable
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Dispute window not open"
//	@Router		/api/orders/deliverables/{id}/dispute [post]
func (h *OrderHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Dispute filed", h.orderService.Dispute)
}

// ClaimDispute godoc
//
//	@Summary	Staff claims a dispute for arbitration
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Already claimed"
//	@Router		/api/orders/deliverables/{id}/claim [post]
func (h *OrderHandler) ClaimDispute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Dispute claimed", h.orderService.ClaimDispute)
}

// Approve godoc
//
//	@Summary	Approve and release escrow
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/orders/deliverables/{id}/approve [post]
func (h *OrderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Deliverable approved", h.orderService.Approve)
}

// Refund godoc
//
//	@Summary	Refund the deliverable
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	402	{object}	utils.Response	"Processor rejected the refund"
//	@Router		/api/orders/deliverables/{id}/refund [post]
func (h *OrderHandler) Refund(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Deliverable refunded", h.orderService.Refund)
}

// Cancel godoc
//
//	@Summary	Cancel before payment
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Illegal transition"
//	@Router		/api/orders/deliverables/{id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Order cancelled", h.orderService.Cancel)
}

// Reopen godoc
//
//	@Summary	Seller reopens for revision
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	int	true	"Deliverable id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/orders/deliverables/{id}/reopen [post]
func (h *OrderHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Deliverable reopened", h.orderService.Reopen)
}
