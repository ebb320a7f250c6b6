package app

import (
	"context"
	"errors"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

var seedRegions = []string{
	"Tashkent",
	"Andijan",
	"Bukhara",
	"Fergana",
	"Jizzakh",
	"Namangan",
	"Navoiy",
	"Kashkadarya",
	"Samarkand",
	"Sirdarya",
	"Surkhandarya",
	"Khorezm",
	"Karakalpakstan",
}

const (
	seedAdminPhone    = "+998901234567"
	seedAdminEmail    = "admin@example.com"
	seedAdminPassword = "admin123"
)

// seed inserts the region catalog and a bootstrap admin. Regions that
// already exist are skipped, and the admin is only created while no
// ADMIN account exists, so repeated boots are safe.
func seed(ctx context.Context, regionRepo domain.RegionRepository, userRepo domain.UserRepository, passwordSvc domain.PasswordService) error {
	log := logging.Component("seed")

	for _, name := range seedRegions {
		if err := regionRepo.Create(ctx, &domain.Region{Name: name}); err != nil {
			if errors.Is(err, domain.ErrRegionExists) {
				continue
			}
			return err
		}
	}

	count, err := userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := passwordSvc.Hash(seedAdminPassword)
	if err != nil {
		return err
	}
	admin := &domain.User{
		FullName:     "Bootstrap Admin",
		Phone:        seedAdminPhone,
		Email:        seedAdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	log.Info().Str("phone", seedAdminPhone).Msg("bootstrap admin created")
	return nil
}
