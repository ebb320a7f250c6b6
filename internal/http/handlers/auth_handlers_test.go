package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = RegisterValidators()
}

func newAuthTestRouter(authSvc domain.AuthService, accountSvc domain.AccountService, otpSvc domain.OTPService) *gin.Engine {
	h := NewAuthHandlers(authSvc, accountSvc, otpSvc)

	r := gin.New()
	r.POST("/users/send-otp", h.SendOTP)
	r.POST("/users/verify-otp", h.VerifyOTP)
	r.POST("/users/register", h.Register)
	r.POST("/users/login", h.Login)
	r.POST("/users/refresh", h.Refresh)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRegisterBody() map[string]interface{} {
	return map[string]interface{}{
		"fullName": "Test User",
		"year":     1995,
		"phone":    "+998901234567",
		"email":    "user@example.com",
		"password": "secret1",
		"role":     "USER",
		"regionId": 1,
	}
}

func TestAuthHandlers_SendOTP(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		sendErr    error
		wantStatus int
	}{
		{
			name:       "success",
			body:       map[string]interface{}{"phone": "+998901234567", "email": "user@example.com"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid phone format",
			body:       map[string]interface{}{"phone": "12345", "email": "user@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       map[string]interface{}{"phone": "+998901234567"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delivery failure",
			body:       map[string]interface{}{"phone": "+998901234567", "email": "user@example.com"},
			sendErr:    assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otpSvc := mocks.NewMockOTPService()
			otpSvc.SendFunc = func(ctx context.Context, phone, email string) error { return tt.sendErr }

			r := newAuthTestRouter(mocks.NewMockAuthService(), mocks.NewMockAccountService(), otpSvc)
			w := postJSON(t, r, "/users/send-otp", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			// The OTP itself must never appear in the response.
			assert.NotContains(t, w.Body.String(), "otp")
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	otpSvc := mocks.NewMockOTPService()
	r := newAuthTestRouter(mocks.NewMockAuthService(), mocks.NewMockAccountService(), otpSvc)

	w := postJSON(t, r, "/users/verify-otp", map[string]interface{}{
		"phone": "+998901234567", "email": "user@example.com", "otp": "1234",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/users/verify-otp", map[string]interface{}{
		"phone": "+998901234567", "email": "user@example.com", "otp": "9999",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// OTP length is fixed at 4 digits.
	w = postJSON(t, r, "/users/verify-otp", map[string]interface{}{
		"phone": "+998901234567", "email": "user@example.com", "otp": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(map[string]interface{})
		registerFn func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
		wantStatus int
	}{
		{
			name: "success",
			registerFn: func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
				return &domain.User{ID: 1, FullName: in.FullName, Role: in.Role}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate phone",
			registerFn: func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
				return nil, domain.ErrUserExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unknown region",
			registerFn: func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
				return nil, domain.ErrRegionNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "admin role rejected at binding",
			mutate:     func(b map[string]interface{}) { b["role"] = "ADMIN" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "underage",
			mutate:     func(b map[string]interface{}) { b["year"] = 2020 },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing region",
			mutate:     func(b map[string]interface{}) { delete(b, "regionId") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			mutate:     func(b map[string]interface{}) { b["password"] = "abc" },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountSvc := mocks.NewMockAccountService()
			accountSvc.RegisterFunc = tt.registerFn

			body := validRegisterBody()
			if tt.mutate != nil {
				tt.mutate(body)
			}

			r := newAuthTestRouter(mocks.NewMockAuthService(), accountSvc, mocks.NewMockOTPService())
			w := postJSON(t, r, "/users/register", body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name       string
		loginFn    func(ctx context.Context, phone, email, password, ip, ua string) (*domain.AuthResult, error)
		wantStatus int
	}{
		{
			name: "success",
			loginFn: func(ctx context.Context, phone, email, password, ip, ua string) (*domain.AuthResult, error) {
				return &domain.AuthResult{
					User:         &domain.User{ID: 1, Email: email, Role: domain.RoleUser},
					AccessToken:  "access",
					RefreshToken: "refresh",
					ExpiresIn:    3600,
				}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown user",
			loginFn: func(ctx context.Context, phone, email, password, ip, ua string) (*domain.AuthResult, error) {
				return nil, domain.ErrUserNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "wrong password",
			loginFn: func(ctx context.Context, phone, email, password, ip, ua string) (*domain.AuthResult, error) {
				return nil, domain.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.LoginFunc = tt.loginFn

			r := newAuthTestRouter(authSvc, mocks.NewMockAccountService(), mocks.NewMockOTPService())
			w := postJSON(t, r, "/users/login", map[string]interface{}{
				"phone": "+998901234567", "email": "user@example.com", "password": "secret1",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Data struct {
						AccessToken  string `json:"accesstoken"`
						RefreshToken string `json:"refreshtoken"`
						TokenType    string `json:"token_type"`
						ExpiresIn    int64  `json:"expires_in"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "access", resp.Data.AccessToken)
				assert.Equal(t, "refresh", resp.Data.RefreshToken)
				assert.Equal(t, "Bearer", resp.Data.TokenType)
				assert.Equal(t, int64(3600), resp.Data.ExpiresIn)
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		refreshFn  func(ctx context.Context, token string) (string, error)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{"token": "refresh-token"},
			refreshFn: func(ctx context.Context, token string) (string, error) {
				return "new-access", nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "revoked token",
			body: map[string]interface{}{"token": "revoked"},
			refreshFn: func(ctx context.Context, token string) (string, error) {
				return "", domain.ErrTokenRevoked
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			body: map[string]interface{}{"token": "expired"},
			refreshFn: func(ctx context.Context, token string) (string, error) {
				return "", domain.ErrTokenExpired
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token field",
			body:       map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.RefreshFunc = tt.refreshFn

			r := newAuthTestRouter(authSvc, mocks.NewMockAccountService(), mocks.NewMockOTPService())
			w := postJSON(t, r, "/users/refresh", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
