package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/dto"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
	"github.com/inkwell-market/inkwell/pkg/auth"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockInvoices) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	invoices := NewMockInvoices(ctrl)
	handler := New(service, invoices)
	defer ctrl.Finish()
	return handler, service, invoices
}

func authedRequest(method, target, body string, userID int, role string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return req.WithContext(ctx)
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestPlaceOrderHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful order",
			body: `{"seller_id":7,"price":"10.00","task_weight":3,"expected_turnaround":5,"revisions":1,"escrow_enabled":true,"cascade_fees":true}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, intent deliverableservice.OrderIntent) (*domain.Deliverable, error) {
						assert.Equal(t, 3, intent.BuyerID)
						assert.Equal(t, 7, intent.SellerID)
						assert.True(t, intent.Price.Equal(decimal.RequireFromString("10.00")))
						assert.True(t, intent.EscrowEnabled)
						assert.True(t, intent.CascadeFees)
						return &domain.Deliverable{
							ID:            11,
							OrderID:       4,
							InvoiceID:     9,
							Status:        domain.StatusNew,
							EscrowEnabled: true,
							CreatedAt:     time.Now(),
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid price format",
			body: `{"seller_id":7,"price":"ten dollars"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid price format",
		},
		{
			name: "Self-dealing rejected",
			body: `{"seller_id":3,"price":"10.00"}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("seller_id", "buyer and seller must differ"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "seller_id: buyer and seller must differ",
		},
		{
			name: "Internal error",
			body: `{"seller_id":7,"price":"10.00"}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/orders", tt.body, 3, "buyer")
			rr := httptest.NewRecorder()

			handler.PlaceOrder(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.DeliverableResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 11, resp.ID)
				assert.Equal(t, "NEW", resp.Status)
				assert.Equal(t, "10.00", resp.Total)
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeResponse(t, rr).Message)
			}
		})
	}
}

func TestGetDeliverablesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Lists both sides", func(t *testing.T) {
		service.EXPECT().ListForUser(gomock.Any(), 3).Return([]domain.Deliverable{
			{ID: 11, Status: domain.StatusInProgress},
			{ID: 12, Status: domain.StatusCompleted},
		}, nil)

		req := authedRequest("GET", "/api/orders", "", 3, "buyer")
		rr := httptest.NewRecorder()

		handler.GetDeliverables(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.DeliverableResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "IN_PROGRESS", resp[0].Status)
		assert.Equal(t, "COMPLETED", resp[1].Status)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListForUser(gomock.Any(), 3).Return(nil, errors.New("db down"))

		req := authedRequest("GET", "/api/orders", "", 3, "buyer")
		rr := httptest.NewRecorder()

		handler.GetDeliverables(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetInvoiceHandler(t *testing.T) {
	handler, service, invoices := NewMock(t)

	t.Run("Renders lines with attributed shares", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 11).Return(&domain.Deliverable{ID: 11, InvoiceID: 9}, nil)
		invoices.EXPECT().GetInvoice(gomock.Any(), 9).Return(&domain.Invoice{ID: 9, Status: domain.InvoiceOpen}, nil)
		invoices.EXPECT().LinesFor(gomock.Any(), 9).Return([]domain.LineItem{
			{ID: 1, Type: domain.LineBasePrice, Amount: decimal.RequireFromString("10.00"), Priority: 0},
			{ID: 2, Type: domain.LineTip, Amount: decimal.RequireFromString("2.00"), Priority: 200},
		}, nil)

		req := withURLParams(authedRequest("GET", "/api/orders/deliverables/11/invoice", "", 3, "buyer"), map[string]string{"id": "11"})
		rr := httptest.NewRecorder()

		handler.GetInvoice(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.InvoiceResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 9, resp.ID)
		assert.Equal(t, "OPEN", resp.Status)
		assert.Equal(t, "12.00", resp.Total)
		require.Len(t, resp.Lines, 2)
		assert.Equal(t, "base_price", resp.Lines[0].Type)
		assert.Equal(t, "10.00", resp.Lines[0].Attributed)
		assert.Equal(t, "tip", resp.Lines[1].Type)
		assert.Equal(t, "2.00", resp.Lines[1].Attributed)
	})

	t.Run("Invalid deliverable id", func(t *testing.T) {
		req := withURLParams(authedRequest("GET", "/api/orders/deliverables/abc/invoice", "", 3, "buyer"), map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.GetInvoice(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Deliverable not found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 99).Return(nil, nil)

		req := withURLParams(authedRequest("GET", "/api/orders/deliverables/99/invoice", "", 3, "buyer"), map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		handler.GetInvoice(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Deliverable not found", decodeResponse(t, rr).Message)
	})

	t.Run("Invoice lookup failure", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 11).Return(&domain.Deliverable{ID: 11, InvoiceID: 9}, nil)
		invoices.EXPECT().GetInvoice(gomock.Any(), 9).Return(nil, errors.New("db down"))

		req := withURLParams(authedRequest("GET", "/api/orders/deliverables/11/invoice", "", 3, "buyer"), map[string]string{"id": "11"})
		rr := httptest.NewRecorder()

		handler.GetInvoice(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTransitionErrorMapping(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		serviceErr    error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Accepted",
			serviceErr:    nil,
			expectedCode:  http.StatusOK,
			expectedError: "Order accepted",
		},
		{
			name:          "Validation failure",
			serviceErr:    domain.NewValidationError("amount", "must be positive"),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount: must be positive",
		},
		{
			name:          "Illegal transition",
			serviceErr:    &domain.StateConflictError{Current: domain.StatusCompleted, Operation: "accept"},
			expectedCode:  http.StatusConflict,
			expectedError: "cannot accept a deliverable in status COMPLETED",
		},
		{
			name:          "Wrong actor",
			serviceErr:    deliverableservice.ErrPermission,
			expectedCode:  http.StatusForbidden,
			expectedError: deliverableservice.ErrPermission.Error(),
		},
		{
			name:          "Dispute already claimed",
			serviceErr:    deliverableservice.ErrDisputeAlreadyClaimed,
			expectedCode:  http.StatusConflict,
			expectedError: deliverableservice.ErrDisputeAlreadyClaimed.Error(),
		},
		{
			name:          "Card declined",
			serviceErr:    &domain.GatewayError{Message: "card declined"},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "card declined",
		},
		{
			name:          "Internal failure",
			serviceErr:    errors.New("db down"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().
				Accept(gomock.Any(), deliverableservice.Actor{ID: 7, Role: domain.RoleSeller}, 11).
				Return(tt.serviceErr)

			req := withURLParams(authedRequest("POST", "/api/orders/deliverables/11/accept", "", 7, "seller"), map[string]string{"id": "11"})
			rr := httptest.NewRecorder()

			handler.Accept(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedError, decodeResponse(t, rr).Message)
		})
	}
}

func TestTransitionRouting(t *testing.T) {
	handler, service, _ := NewMock(t)
	actor := deliverableservice.Actor{ID: 3, Role: domain.RoleBuyer}

	tests := []struct {
		name        string
		call        func(w http.ResponseWriter, r *http.Request)
		prepareMock func()
		message     string
	}{
		{
			name: "Pay",
			call: handler.Pay,
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Payment accepted",
		},
		{
			name: "Start",
			call: handler.Start,
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Work started",
		},
		{
			name: "MarkFinal",
			call: handler.MarkFinal,
			prepareMock: func() {
				service.EXPECT().MarkFinal(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Final uploaded",
		},
		{
			name: "Dispute",
			call: handler.Dispute,
			prepareMock: func() {
				service.EXPECT().Dispute(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Dispute filed",
		},
		{
			name: "ClaimDispute",
			call: handler.ClaimDispute,
			prepareMock: func() {
				service.EXPECT().ClaimDispute(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Dispute claimed",
		},
		{
			name: "Approve",
			call: handler.Approve,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Deliverable approved",
		},
		{
			name: "Refund",
			call: handler.Refund,
			prepareMock: func() {
				service.EXPECT().Refund(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Deliverable refunded",
		},
		{
			name: "Cancel",
			call: handler.Cancel,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Order cancelled",
		},
		{
			name: "Reopen",
			call: handler.Reopen,
			prepareMock: func() {
				service.EXPECT().Reopen(gomock.Any(), actor, 11).Return(nil)
			},
			message: "Deliverable reopened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParams(authedRequest("POST", "/api/orders/deliverables/11", "", 3, "buyer"), map[string]string{"id": "11"})
			rr := httptest.NewRecorder()

			tt.call(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.message, decodeResponse(t, rr).Message)
		})
	}

	t.Run("Invalid deliverable id", func(t *testing.T) {
		req := withURLParams(authedRequest("POST", "/api/orders/deliverables/abc/pay", "", 3, "buyer"), map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.Pay(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid deliverable id", decodeResponse(t, rr).Message)
	})
}

func TestAddLineItemHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Buyer adds a tip",
			body: `{"type":"tip","amount":"3.00"}`,
			prepareMock: func() {
				service.EXPECT().
					AddLineItem(gomock.Any(), deliverableservice.Actor{ID: 3, Role: domain.RoleBuyer}, 11, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ deliverableservice.Actor, _ int, line *domain.LineItem) error {
						assert.Equal(t, domain.LineTip, line.Type)
						assert.True(t, line.Amount.Equal(decimal.RequireFromString("3.00")))
						return nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown line type",
			body: `{"type":"discount","amount":"3.00"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Unknown line item type",
		},
		{
			name: "Invalid amount",
			body: `{"type":"tip","amount":"three"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid amount format",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Past editing",
			body: `{"type":"tip","amount":"3.00"}`,
			prepareMock: func() {
				service.EXPECT().
					AddLineItem(gomock.Any(), gomock.Any(), 11, gomock.Any()).
					Return(&domain.StateConflictError{Current: domain.StatusQueued, Operation: "edit lines of"})
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParams(authedRequest("POST", "/api/orders/deliverables/11/lines", tt.body, 3, "buyer"), map[string]string{"id": "11"})
			rr := httptest.NewRecorder()

			handler.AddLineItem(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeResponse(t, rr).Message)
			}
		})
	}
}

func TestSetTotalHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Seller reprices the order",
			body: `{"total":"25.00"}`,
			prepareMock: func() {
				service.EXPECT().
					SetBuyerTotal(gomock.Any(), deliverableservice.Actor{ID: 7, Role: domain.RoleSeller}, 11, decimal.RequireFromString("25.00")).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Target below the platform minimum",
			body: `{"total":"0.50"}`,
			prepareMock: func() {
				service.EXPECT().
					SetBuyerTotal(gomock.Any(), gomock.Any(), 11, decimal.RequireFromString("0.50")).
					Return(domain.NewValidationError("amount", "configured price is below the platform minimum"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount: configured price is below the platform minimum",
		},
		{
			name: "Invalid total format",
			body: `{"total":"lots"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid total format",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParams(authedRequest("POST", "/api/orders/deliverables/11/total", tt.body, 7, "seller"), map[string]string{"id": "11"})
			rr := httptest.NewRecorder()

			handler.SetTotal(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeResponse(t, rr).Message)
			}
		})
	}
}

func TestRemoveLineItemHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Removes a caller line", func(t *testing.T) {
		service.EXPECT().
			RemoveLineItem(gomock.Any(), deliverableservice.Actor{ID: 3, Role: domain.RoleBuyer}, 11, 5).
			Return(nil)

		req := withURLParams(authedRequest("DELETE", "/api/orders/deliverables/11/lines/5", "", 3, "buyer"), map[string]string{"id": "11", "lineID": "5"})
		rr := httptest.NewRecorder()

		handler.RemoveLineItem(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Line item removed", decodeResponse(t, rr).Message)
	})

	t.Run("Invalid line id", func(t *testing.T) {
		req := withURLParams(authedRequest("DELETE", "/api/orders/deliverables/11/lines/abc", "", 3, "buyer"), map[string]string{"id": "11", "lineID": "abc"})
		rr := httptest.NewRecorder()

		handler.RemoveLineItem(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid line id", decodeResponse(t, rr).Message)
	})

	t.Run("Protected line", func(t *testing.T) {
		service.EXPECT().
			RemoveLineItem(gomock.Any(), gomock.Any(), 11, 1).
			Return(deliverableservice.ErrPermission)

		req := withURLParams(authedRequest("DELETE", "/api/orders/deliverables/11/lines/1", "", 3, "buyer"), map[string]string{"id": "11", "lineID": "1"})
		rr := httptest.NewRecorder()

		handler.RemoveLineItem(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
