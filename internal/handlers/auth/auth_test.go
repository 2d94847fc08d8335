package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newseller","password":"password123","role":"seller"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newseller", "password123", domain.RoleSeller).Return(&domain.User{
					ID:           1,
					Login:        "newseller",
					PasswordHash: "hashedpassword",
					Role:         domain.RoleSeller,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleSeller).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123","role":"buyer"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123", domain.RoleBuyer).Return(nil, errors.New("user already exists"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already exists",
		},
		{
			name: "Unknown role",
			body: `{"login":"newuser","password":"password123","role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", domain.Role("admin")).
					Return(nil, &domain.ValidationError{Field: "role", Reason: "must be buyer or seller"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: (&domain.ValidationError{Field: "role", Reason: "must be buyer or seller"}).Error(),
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
			name: "Error generating token",
			body: `{"login":"newseller","password":"password123","role":"seller"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newseller", "password123", domain.RoleSeller).Return(&domain.User{
					ID:           1,
					Login:        "newseller",
					PasswordHash: "hashedpassword",
					Role:         domain.RoleSeller,
				}, nil)
				service.EXPECT().
					GenerateToken(1, domain.RoleSeller).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testbuyer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testbuyer", "password123").
					Return(&domain.User{
						ID:           1,
						Login:        "testbuyer",
						PasswordHash: "hashedpassword",
						Role:         domain.RoleBuyer,
					}, nil)

				service.EXPECT().
					GenerateToken(1, domain.RoleBuyer).
					Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testbuyer","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testbuyer", "wrongpassword").
					Return(nil, errors.New("Invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
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
			name: "Error generating token",
			body: `{"login":"testbuyer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testbuyer", "password123").
					Return(&domain.User{
						ID:           1,
						Login:        "testbuyer",
						PasswordHash: "hashedpassword",
						Role:         domain.RoleBuyer,
					}, nil)

				service.EXPECT().
					GenerateToken(1, domain.RoleBuyer).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
