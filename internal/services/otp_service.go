package services

import (
	"context"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// OTPServiceImpl implements domain.OTPService as a stateless time-step code.
// The secret is derived from the subject's phone and email plus a
// configured salt, so nothing is stored server-side; any attempt inside the
// same window verifies. Replay within a window is possible by construction.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	config          OTPConfig
	log             zerolog.Logger
}

type OTPConfig struct {
	Digits int
	Period time.Duration
	Salt   string
}

// NewOTPService creates a new TOTP-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	if config.Digits == 0 {
		config.Digits = 4
	}
	if config.Period == 0 {
		config.Period = 300 * time.Second
	}
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		config:          config,
		log:             logging.Component("otp"),
	}
}

// Generate implements domain.OTPService
func (s *OTPServiceImpl) Generate(phone, email string) (string, error) {
	code, err := totp.GenerateCodeCustom(s.secret(phone, email), time.Now(), s.validateOpts())
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return code, nil
}

// Verify implements domain.OTPService. Fails closed: any mismatch,
// including a code from a different time window, is invalid.
func (s *OTPServiceImpl) Verify(phone, email, code string) bool {
	valid, err := totp.ValidateCustom(code, s.secret(phone, email), time.Now(), s.validateOpts())
	if err != nil {
		return false
	}
	return valid
}

// Send implements domain.OTPService: computes the current code and pushes it
// over email, with SMS as a best-effort second channel. Delivery failures
// are logged, never retried, and do not fail the request.
func (s *OTPServiceImpl) Send(_ context.Context, phone, email string) error {
	code, err := s.Generate(phone, email)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your one time password is %s", code)
	if err := s.notificationSvc.SendEmail(email, "Confirmation code", body); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("OTP email delivery failed")
	}
	if err := s.notificationSvc.SendSMS(phone, body); err != nil {
		s.log.Error().Err(err).Str("phone", phone).Msg("OTP SMS delivery failed")
	}

	return nil
}

func (s *OTPServiceImpl) secret(phone, email string) string {
	raw := phone + email + s.config.Salt
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(raw))
}

func (s *OTPServiceImpl) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(s.config.Period.Seconds()),
		Skew:      0,
		Digits:    otp.Digits(s.config.Digits),
		Algorithm: otp.AlgorithmSHA1,
	}
}
