package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/config"
	"github.com/ibroximov13/FindCourse/internal/infrastructure/auth"
	"github.com/ibroximov13/FindCourse/internal/infrastructure/database"
	"github.com/ibroximov13/FindCourse/internal/infrastructure/devices"
	"github.com/ibroximov13/FindCourse/internal/infrastructure/notifications"
	"github.com/ibroximov13/FindCourse/internal/infrastructure/repositories"
	"github.com/ibroximov13/FindCourse/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	UserRepo    domain.UserRepository
	RegionRepo  domain.RegionRepository
	SessionRepo domain.SessionRepository
	TokenStore  domain.TokenStore

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	DeviceParser    domain.DeviceParser
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	AccountSvc      domain.AccountService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.RegionRepo = repositories.NewRegionRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.DB)
	c.TokenStore = repositories.NewRedisTokenStore(c.RedisClient)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTAccessSecret,
		c.Config.JWTRefreshSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewNotificationService(notifications.SMTPSettings{
		Host:     c.Config.SMTPHost,
		Port:     c.Config.SMTPPort,
		Username: c.Config.SMTPUsername,
		Password: c.Config.SMTPPassword,
		From:     c.Config.SMTPFrom,
	}, c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom)
	c.DeviceParser = devices.NewParser()

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, services.OTPConfig{
		Digits: c.Config.OTPDigits,
		Period: c.Config.OTPPeriod,
		Salt:   c.Config.OTPSalt,
	})
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.TokenStore,
		c.DeviceParser,
	)
	c.AccountSvc = services.NewAccountService(c.UserRepo, c.RegionRepo, c.PasswordSvc, c.OTPSvc)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
