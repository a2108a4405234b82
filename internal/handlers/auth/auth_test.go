package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/authservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
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
			body: `{"login":"newuser","password":"password123","telegram":"@newuser"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", "@newuser").Return(&domain.User{
					ID:    1,
					Login: "newuser",
					Role:  domain.RoleBooster,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleBooster).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Login already taken",
			body: `{"login":"existinguser","password":"password123","telegram":"@x"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123", "@x").Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
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
			body: `{"login":"newuser","password":"password123","telegram":"@newuser"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", "@newuser").Return(&domain.User{
					ID:    1,
					Login: "newuser",
					Role:  domain.RoleBooster,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleBooster).Return("", assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
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
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser", "password123").Return(&domain.User{
					ID:    1,
					Login: "testuser",
					Role:  domain.RoleAdmin,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleAdmin).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser", "wrongpassword").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid credentials",
		},
		{
			name: "Invalid request body",
			body: `not json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}
