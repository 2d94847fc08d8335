package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestPaymentEventHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approved settlement",
			body: `{"remote_id":"ch_7a81","status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					HandlePaymentEvent(gomock.Any(), "ch_7a81", true, "").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Declined settlement carries the message",
			body: `{"remote_id":"ch_7a81","status":"declined","message":"card expired"}`,
			prepareMock: func() {
				service.EXPECT().
					HandlePaymentEvent(gomock.Any(), "ch_7a81", false, "card expired").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing remote id",
			body: `{"status":"approved"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid event payload",
		},
		{
			name: "Unknown status value",
			body: `{"remote_id":"ch_7a81","status":"maybe"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid event payload",
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
			name: "Unknown remote id",
			body: `{"remote_id":"ch_missing","status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					HandlePaymentEvent(gomock.Any(), "ch_missing", true, "").
					Return(domain.NewConsistencyError("no transaction carries remote id %s", "ch_missing"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "consistency violation: no transaction carries remote id ch_missing",
		},
		{
			name: "Internal failure",
			body: `{"remote_id":"ch_7a81","status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					HandlePaymentEvent(gomock.Any(), "ch_7a81", true, "").
					Return(errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/webhooks/payments", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.PaymentEvent(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
