package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	regionRepo  domain.RegionRepository
	passwordSvc domain.PasswordService
	otpSvc      domain.OTPService
	log         zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	regionRepo domain.RegionRepository,
	passwordSvc domain.PasswordService,
	otpSvc domain.OTPService,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		regionRepo:  regionRepo,
		passwordSvc: passwordSvc,
		otpSvc:      otpSvc,
		log:         logging.Component("account"),
	}
}

// Register implements domain.AccountService. Only USER and SELLER may be
// chosen at registration, and both require an existing region. Duplicate
// phones surface as domain.ErrUserExists from the unique index.
func (s *AccountServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if !in.Role.RegistrationAllowed() {
		return nil, domain.ErrRoleNotAllowed
	}
	if in.RegionID == nil {
		return nil, domain.ErrRegionRequired
	}
	if _, err := s.regionRepo.FindByID(ctx, *in.RegionID); err != nil {
		return nil, err
	}

	user, err := s.create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("role", user.Role.String()).Msg("user registered")
	return user, nil
}

// CreateAdmin implements domain.AccountService. Privileged roles are global:
// a region reference is rejected.
func (s *AccountServiceImpl) CreateAdmin(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrRoleNotAllowed
	}
	if in.RegionID != nil {
		return nil, domain.ErrRegionForbidden
	}

	user, err := s.create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("role", user.Role.String()).Msg("privileged user created")
	return user, nil
}

func (s *AccountServiceImpl) create(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	hashed, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName:     in.FullName,
		BirthYear:    in.BirthYear,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hashed,
		Role:         in.Role,
		Photo:        in.Photo,
		RegionID:     in.RegionID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile implements domain.AccountService
func (s *AccountServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AccountService
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Photo != nil {
		user.Photo = *upd.Photo
	}
	if upd.Password != nil {
		hashed, err := s.passwordSvc.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List implements domain.AccountService
func (s *AccountServiceImpl) List(ctx context.Context, q domain.ListUsersQuery) ([]*domain.User, error) {
	return s.userRepo.List(ctx, q)
}

// Patch implements domain.AccountService: administrative partial update.
// The role/region invariant is re-checked against the final state.
func (s *AccountServiceImpl) Patch(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.BirthYear != nil {
		user.BirthYear = *patch.BirthYear
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Photo != nil {
		user.Photo = *patch.Photo
	}
	if patch.Role != nil {
		user.Role = *patch.Role
		// Privileged roles are global: a promotion without a region in
		// the patch drops the stored one.
		if user.Role.Privileged() && patch.RegionID == nil {
			user.RegionID = nil
		}
	}
	if patch.RegionID != nil {
		if _, err := s.regionRepo.FindByID(ctx, *patch.RegionID); err != nil {
			return nil, err
		}
		user.RegionID = patch.RegionID
	}
	if patch.Password != nil {
		hashed, err := s.passwordSvc.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if user.Role.Privileged() && user.RegionID != nil {
		return nil, domain.ErrRegionForbidden
	}
	if !user.Role.Privileged() && user.RegionID == nil {
		return nil, domain.ErrRegionRequired
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete implements domain.AccountService
func (s *AccountServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}

// SendResetOTP implements domain.AccountService: emails the caller a code
// derived from their phone and the supplied email.
func (s *AccountServiceImpl) SendResetOTP(ctx context.Context, userID uint, email string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.otpSvc.Send(ctx, user.Phone, email)
}

// ResetPassword implements domain.AccountService
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, userID uint, email, code, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.otpSvc.Verify(user.Phone, email, code) {
		return domain.ErrOTPInvalid
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Uint("user_id", user.ID).Msg("password reset")
	return nil
}
