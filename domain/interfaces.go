package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByPhoneAndEmail(ctx context.Context, phone, email string) (*User, error)
	List(ctx context.Context, q ListUsersQuery) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// RegionRepository defines region catalog data access
type RegionRepository interface {
	Create(ctx context.Context, region *Region) error
	FindByID(ctx context.Context, id uint) (*Region, error)
	FindByName(ctx context.Context, name string) (*Region, error)
	List(ctx context.Context) ([]*Region, error)
	Update(ctx context.Context, region *Region) error
	Delete(ctx context.Context, id uint) error
}

// SessionRepository defines session audit data access
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id uint) (*Session, error)
	FindByUserAndIP(ctx context.Context, userID uint, userIP string) (*Session, error)
	ListByUser(ctx context.Context, userID uint) ([]*Session, error)
	ListAll(ctx context.Context) ([]*Session, error)
	Delete(ctx context.Context, id uint) error
}

// TokenStore is the refresh-token allow-list keyed by token
type TokenStore interface {
	Add(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Has(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, phone, email, password, userIP, userAgent string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// AccountService defines user account management business logic
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	CreateAdmin(ctx context.Context, in RegisterInput) (*User, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*User, error)
	List(ctx context.Context, q ListUsersQuery) ([]*User, error)
	Patch(ctx context.Context, id uint, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id uint) error
	SendResetOTP(ctx context.Context, userID uint, email string) error
	ResetPassword(ctx context.Context, userID uint, email, code, newPassword string) error
}

// OTPService defines time-step code generation and verification
type OTPService interface {
	Generate(phone, email string) (string, error)
	Verify(phone, email, code string) bool
	Send(ctx context.Context, phone, email string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role Role, userIP string, device DeviceInfo) (string, error)
	GenerateRefreshToken(userID uint, userIP string, device DeviceInfo) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	RefreshTTL() time.Duration
	AccessTTL() time.Duration
}

// NotificationService defines outbound message delivery
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// DeviceParser turns a raw user-agent header into structured metadata
type DeviceParser interface {
	Parse(userAgent string) DeviceInfo
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role Role, resource, action string) error
	RemovePolicy(role Role, resource, action string) error
	CheckPermission(role Role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
