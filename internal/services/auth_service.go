package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	tokenStore  domain.TokenStore
	devices     domain.DeviceParser
	log         zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	tokenStore domain.TokenStore,
	devices domain.DeviceParser,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		tokenStore:  tokenStore,
		devices:     devices,
		log:         logging.Component("auth"),
	}
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, phone, email, password, userIP, userAgent string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByPhoneAndEmail(ctx, phone, email)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	device := s.devices.Parse(userAgent)

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, userIP, device)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, userIP, device)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenStore.Add(ctx, refreshToken, user.ID, s.tokenSvc.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if err := s.recordLogin(ctx, user.ID, userIP, device); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Str("ip", userIP).Msg("user logged in")

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// recordLogin upserts the audit row for (user, ip). Repeat logins from the
// same IP leave the existing row untouched.
func (s *AuthServiceImpl) recordLogin(ctx context.Context, userID uint, userIP string, device domain.DeviceInfo) error {
	_, err := s.sessionRepo.FindByUserAndIP(ctx, userID, userIP)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}

	return s.sessionRepo.Create(ctx, &domain.Session{
		UserID: userID,
		UserIP: userIP,
		Device: device,
	})
}

// Refresh implements domain.AuthService. The allow-list check runs before
// any cryptographic validation so revoked tokens (including every token
// issued before a store reset) fail regardless of signature.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	known, err := s.tokenStore.Has(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !known {
		return "", domain.ErrTokenRevoked
	}

	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	// Refresh tokens carry no role; the stored role is used, so demotions
	// take effect on the next refresh.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, claims.UserIP, claims.Device)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("access token refreshed")
	return accessToken, nil
}
