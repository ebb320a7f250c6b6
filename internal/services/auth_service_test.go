package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/mocks"
)

func testUser() *domain.User {
	return &domain.User{
		ID:           1,
		FullName:     "Test User",
		Phone:        "+998901234567",
		Email:        "user@example.com",
		PasswordHash: "hashed_secret",
		Role:         domain.RoleUser,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockTokenStore)
		password    string
		wantErr     error
		wantSession bool
	}{
		{
			name: "successful login creates session",
			setupMocks: func(ur *mocks.MockUserRepository, sr *mocks.MockSessionRepository, ts *mocks.MockTokenStore) {
				ur.FindByPhoneAndEmailFunc = func(ctx context.Context, phone, email string) (*domain.User, error) {
					return testUser(), nil
				}
			},
			password:    "secret",
			wantSession: true,
		},
		{
			name: "unknown user",
			setupMocks: func(ur *mocks.MockUserRepository, sr *mocks.MockSessionRepository, ts *mocks.MockTokenStore) {
				ur.FindByPhoneAndEmailFunc = func(ctx context.Context, phone, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			password: "secret",
			wantErr:  domain.ErrUserNotFound,
		},
		{
			name: "wrong password",
			setupMocks: func(ur *mocks.MockUserRepository, sr *mocks.MockSessionRepository, ts *mocks.MockTokenStore) {
				ur.FindByPhoneAndEmailFunc = func(ctx context.Context, phone, email string) (*domain.User, error) {
					return testUser(), nil
				}
			},
			password: "not-the-password",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name: "existing session for same ip is reused",
			setupMocks: func(ur *mocks.MockUserRepository, sr *mocks.MockSessionRepository, ts *mocks.MockTokenStore) {
				ur.FindByPhoneAndEmailFunc = func(ctx context.Context, phone, email string) (*domain.User, error) {
					return testUser(), nil
				}
				sr.FindByUserAndIPFunc = func(ctx context.Context, userID uint, userIP string) (*domain.Session, error) {
					return &domain.Session{ID: 9, UserID: userID, UserIP: userIP}, nil
				}
			},
			password:    "secret",
			wantSession: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			tokenStore := mocks.NewMockTokenStore()
			tt.setupMocks(userRepo, sessionRepo, tokenStore)

			var created *domain.Session
			if sessionRepo.CreateFunc == nil {
				sessionRepo.CreateFunc = func(ctx context.Context, s *domain.Session) error {
					created = s
					return nil
				}
			}

			var stored string
			tokenStore.AddFunc = func(ctx context.Context, token string, userID uint, ttl time.Duration) error {
				stored = token
				return nil
			}

			svc := NewAuthService(userRepo, sessionRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), tokenStore, mocks.NewMockDeviceParser())

			res, err := svc.Login(context.Background(), "+998901234567", "user@example.com", tt.password, "10.0.0.1", "Mozilla/5.0")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "mock_access_token", res.AccessToken)
			assert.Equal(t, "mock_refresh_token", res.RefreshToken)
			assert.Equal(t, "mock_refresh_token", stored)

			if tt.wantSession {
				require.NotNil(t, created)
				assert.Equal(t, uint(1), created.UserID)
				assert.Equal(t, "10.0.0.1", created.UserIP)
			} else {
				assert.Nil(t, created)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	claims := &domain.TokenClaims{UserID: 1, UserIP: "10.0.0.1"}

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockUserRepository, *mocks.MockTokenService, *mocks.MockTokenStore)
		wantErr    error
	}{
		{
			name: "successful refresh",
			setupMocks: func(ur *mocks.MockUserRepository, tk *mocks.MockTokenService, ts *mocks.MockTokenStore) {
				tk.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) { return claims, nil }
				ur.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) { return testUser(), nil }
			},
		},
		{
			name: "revoked token rejected before validation",
			setupMocks: func(ur *mocks.MockUserRepository, tk *mocks.MockTokenService, ts *mocks.MockTokenStore) {
				ts.HasFunc = func(ctx context.Context, token string) (bool, error) { return false, nil }
				tk.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					t.Fatal("validation must not run for revoked tokens")
					return nil, nil
				}
			},
			wantErr: domain.ErrTokenRevoked,
		},
		{
			name: "expired token",
			setupMocks: func(ur *mocks.MockUserRepository, tk *mocks.MockTokenService, ts *mocks.MockTokenStore) {
				tk.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			wantErr: domain.ErrTokenExpired,
		},
		{
			name: "deleted user",
			setupMocks: func(ur *mocks.MockUserRepository, tk *mocks.MockTokenService, ts *mocks.MockTokenStore) {
				tk.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) { return claims, nil }
				ur.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenSvc := mocks.NewMockTokenService()
			tokenStore := mocks.NewMockTokenStore()
			tt.setupMocks(userRepo, tokenSvc, tokenStore)

			svc := NewAuthService(userRepo, mocks.NewMockSessionRepository(), mocks.NewMockPasswordService(), tokenSvc, tokenStore, mocks.NewMockDeviceParser())

			access, err := svc.Refresh(context.Background(), "some-refresh-token")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "mock_access_token", access)
		})
	}
}

func TestAuthService_Refresh_UsesCurrentRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		u := testUser()
		u.Role = domain.RoleSeller // role changed since the refresh token was issued
		return u, nil
	}

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 1, UserIP: "10.0.0.1"}, nil
	}
	var issuedRole domain.Role
	tokenSvc.GenerateAccessTokenFunc = func(userID uint, role domain.Role, userIP string, device domain.DeviceInfo) (string, error) {
		issuedRole = role
		return "new_access", nil
	}

	svc := NewAuthService(userRepo, mocks.NewMockSessionRepository(), mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockTokenStore(), mocks.NewMockDeviceParser())

	access, err := svc.Refresh(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "new_access", access)
	assert.Equal(t, domain.RoleSeller, issuedRole)
}

func TestAuthService_Login_SessionLookupError(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByPhoneAndEmailFunc = func(ctx context.Context, phone, email string) (*domain.User, error) {
		return testUser(), nil
	}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByUserAndIPFunc = func(ctx context.Context, userID uint, userIP string) (*domain.Session, error) {
		return nil, errors.New("connection reset")
	}

	svc := NewAuthService(userRepo, sessionRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockTokenStore(), mocks.NewMockDeviceParser())

	_, err := svc.Login(context.Background(), "+998901234567", "user@example.com", "secret", "10.0.0.1", "Mozilla/5.0")
	require.Error(t, err)
}
