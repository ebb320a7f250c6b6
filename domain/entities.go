package domain

import "time"

// User represents an account on the platform
type User struct {
	ID           uint
	FullName     string
	BirthYear    int
	Phone        string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         Role
	Photo        string
	RegionID     *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Region represents an administrative region a user belongs to
type Region struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeviceInfo is the parsed user-agent metadata recorded at login
type DeviceInfo struct {
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version"`
	OS             string `json:"os"`
	Device         string `json:"device"`
	Bot            bool   `json:"bot"`
}

// Session is the audit record of a login from a given IP
type Session struct {
	ID        uint
	UserID    uint
	UserIP    string
	Device    DeviceInfo
	CreatedAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents decoded JWT claims
type TokenClaims struct {
	UserID    uint       `json:"id"`
	Role      Role       `json:"role,omitempty"`
	UserIP    string     `json:"userIp"`
	Device    DeviceInfo `json:"data"`
	IssuedAt  int64      `json:"iat"`
	ExpiresAt int64      `json:"exp"`
}

// RegisterInput carries validated registration data
type RegisterInput struct {
	FullName  string
	BirthYear int
	Phone     string
	Email     string
	Password  string
	Photo     string
	Role      Role
	RegionID  *uint
}

// ProfileUpdate is a partial self-service profile change
type ProfileUpdate struct {
	FullName *string
	Email    *string
	Password *string
	Photo    *string
}

// UserPatch is an administrative partial update of a user
type UserPatch struct {
	FullName  *string
	BirthYear *int
	Phone     *string
	Email     *string
	Password  *string
	Photo     *string
	Role      *Role
	RegionID  *uint
}

// ListUsersQuery controls paging, filtering and ordering of user listings
type ListUsersQuery struct {
	Page   int
	Limit  int
	Name   string
	Column string
	Order  string
}
