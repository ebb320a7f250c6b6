package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/mocks"
)

func uintPtr(v uint) *uint               { return &v }
func strPtr(v string) *string            { return &v }
func rolePtr(v domain.Role) *domain.Role { return &v }

func registerInput(role domain.Role, regionID *uint) domain.RegisterInput {
	return domain.RegisterInput{
		FullName:  "Test User",
		BirthYear: 1995,
		Phone:     "+998901234567",
		Email:     "user@example.com",
		Password:  "secret1",
		Role:      role,
		RegionID:  regionID,
	}
}

func regionExists(rr *mocks.MockRegionRepository) {
	rr.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Region, error) {
		return &domain.Region{ID: id, Name: "Tashkent"}, nil
	}
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.RegisterInput
		setup   func(*mocks.MockUserRepository, *mocks.MockRegionRepository)
		wantErr error
	}{
		{
			name:  "user with region",
			input: registerInput(domain.RoleUser, uintPtr(1)),
			setup: func(ur *mocks.MockUserRepository, rr *mocks.MockRegionRepository) {
				regionExists(rr)
			},
		},
		{
			name:  "seller with region",
			input: registerInput(domain.RoleSeller, uintPtr(1)),
			setup: func(ur *mocks.MockUserRepository, rr *mocks.MockRegionRepository) {
				regionExists(rr)
			},
		},
		{
			name:    "admin role not allowed",
			input:   registerInput(domain.RoleAdmin, uintPtr(1)),
			wantErr: domain.ErrRoleNotAllowed,
		},
		{
			name:    "region required",
			input:   registerInput(domain.RoleUser, nil),
			wantErr: domain.ErrRegionRequired,
		},
		{
			name:    "region must exist",
			input:   registerInput(domain.RoleUser, uintPtr(404)),
			wantErr: domain.ErrRegionNotFound,
		},
		{
			name:  "duplicate phone",
			input: registerInput(domain.RoleUser, uintPtr(1)),
			setup: func(ur *mocks.MockUserRepository, rr *mocks.MockRegionRepository) {
				regionExists(rr)
				ur.CreateFunc = func(ctx context.Context, u *domain.User) error {
					return domain.ErrUserExists
				}
			},
			wantErr: domain.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			regionRepo := mocks.NewMockRegionRepository()
			if tt.setup != nil {
				tt.setup(userRepo, regionRepo)
			}

			svc := NewAccountService(userRepo, regionRepo, mocks.NewMockPasswordService(), mocks.NewMockOTPService())
			user, err := svc.Register(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.Role, user.Role)
			// The stored credential is the hash, not the password.
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
		})
	}
}

func TestAccountService_CreateAdmin(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.RegisterInput
		wantErr error
	}{
		{name: "admin", input: registerInput(domain.RoleAdmin, nil)},
		{name: "superadmin", input: registerInput(domain.RoleSuperAdmin, nil)},
		{name: "user role rejected", input: registerInput(domain.RoleUser, nil), wantErr: domain.ErrRoleNotAllowed},
		{name: "ceo rejected", input: registerInput(domain.RoleCEO, nil), wantErr: domain.ErrRoleNotAllowed},
		{name: "region forbidden", input: registerInput(domain.RoleAdmin, uintPtr(1)), wantErr: domain.ErrRegionForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAccountService(mocks.NewMockUserRepository(), mocks.NewMockRegionRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService())
			user, err := svc.CreateAdmin(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, user.RegionID)
		})
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, FullName: "Old Name", Email: "old@example.com", PasswordHash: "hashed_old"}, nil
	}
	var saved *domain.User
	userRepo.UpdateFunc = func(ctx context.Context, u *domain.User) error {
		saved = u
		return nil
	}

	svc := NewAccountService(userRepo, mocks.NewMockRegionRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService())

	user, err := svc.UpdateProfile(context.Background(), 1, domain.ProfileUpdate{
		FullName: strPtr("New Name"),
		Password: strPtr("newpass1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, "old@example.com", user.Email)
	assert.Equal(t, "hashed_newpass1", user.PasswordHash)
	require.NotNil(t, saved)
	assert.Equal(t, "New Name", saved.FullName)
}

func TestAccountService_Patch_RoleRegionInvariant(t *testing.T) {
	tests := []struct {
		name    string
		current *domain.User
		patch   domain.UserPatch
		wantErr error
	}{
		{
			name:    "promote to admin with explicit region",
			current: &domain.User{ID: 1, Role: domain.RoleUser, RegionID: uintPtr(1)},
			patch:   domain.UserPatch{Role: rolePtr(domain.RoleAdmin), RegionID: uintPtr(1)},
			wantErr: domain.ErrRegionForbidden,
		},
		{
			name:    "promote to admin drops the stored region",
			current: &domain.User{ID: 1, Role: domain.RoleUser, RegionID: uintPtr(1)},
			patch:   domain.UserPatch{Role: rolePtr(domain.RoleAdmin)},
		},
		{
			name:    "demote to user without region",
			current: &domain.User{ID: 1, Role: domain.RoleAdmin},
			patch:   domain.UserPatch{Role: rolePtr(domain.RoleUser)},
			wantErr: domain.ErrRegionRequired,
		},
		{
			name:    "rename keeps invariant intact",
			current: &domain.User{ID: 1, Role: domain.RoleUser, RegionID: uintPtr(1)},
			patch:   domain.UserPatch{FullName: strPtr("Renamed")},
		},
		{
			name:    "assign region to regular user",
			current: &domain.User{ID: 1, Role: domain.RoleUser, RegionID: uintPtr(1)},
			patch:   domain.UserPatch{RegionID: uintPtr(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
				u := *tt.current
				return &u, nil
			}
			regionRepo := mocks.NewMockRegionRepository()
			regionExists(regionRepo)

			svc := NewAccountService(userRepo, regionRepo, mocks.NewMockPasswordService(), mocks.NewMockOTPService())
			_, err := svc.Patch(context.Background(), 1, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountService_Patch_PromotionClearsRegion(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleUser, RegionID: uintPtr(3)}, nil
	}
	var saved *domain.User
	userRepo.UpdateFunc = func(ctx context.Context, u *domain.User) error {
		saved = u
		return nil
	}

	svc := NewAccountService(userRepo, mocks.NewMockRegionRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService())

	got, err := svc.Patch(context.Background(), 1, domain.UserPatch{Role: rolePtr(domain.RoleSuperAdmin)})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, got.Role)
	assert.Nil(t, got.RegionID)
	require.NotNil(t, saved)
	assert.Nil(t, saved.RegionID)
}

func TestAccountService_SendResetOTP(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Phone: "+998901234567"}, nil
	}

	var sentPhone, sentEmail string
	otpSvc := mocks.NewMockOTPService()
	otpSvc.SendFunc = func(ctx context.Context, phone, email string) error {
		sentPhone, sentEmail = phone, email
		return nil
	}

	svc := NewAccountService(userRepo, mocks.NewMockRegionRepository(), mocks.NewMockPasswordService(), otpSvc)

	require.NoError(t, svc.SendResetOTP(context.Background(), 1, "reset@example.com"))
	// The code binds to the account's phone plus the address the caller chose.
	assert.Equal(t, "+998901234567", sentPhone)
	assert.Equal(t, "reset@example.com", sentEmail)
}

func TestAccountService_ResetPassword(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "valid code", code: "1234"},
		{name: "invalid code", code: "0000", wantErr: domain.ErrOTPInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Phone: "+998901234567", PasswordHash: "hashed_old"}, nil
			}
			var saved *domain.User
			userRepo.UpdateFunc = func(ctx context.Context, u *domain.User) error {
				saved = u
				return nil
			}

			svc := NewAccountService(userRepo, mocks.NewMockRegionRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService())
			err := svc.ResetPassword(context.Background(), 1, "user@example.com", tt.code, "newpass1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, "hashed_newpass1", saved.PasswordHash)
		})
	}
}
