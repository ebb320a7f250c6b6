package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// AuthHandlers handles registration, OTP and token HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	accountSvc domain.AccountService
	otpSvc     domain.OTPService
	log        zerolog.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, accountSvc domain.AccountService, otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		accountSvc: accountSvc,
		otpSvc:     otpSvc,
		log:        logging.Component("auth_handlers"),
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,min=3,max=100"`
	Year     int    `json:"year" binding:"required,birthyear"`
	Phone    string `json:"phone" binding:"required,uzphone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Photo    string `json:"photo,omitempty"`
	Role     string `json:"role" binding:"required,oneof=USER SELLER"`
	RegionID *uint  `json:"regionId" binding:"required"`
}

// CreateAdminRequest represents privileged account creation. Privileged
// roles are global, so no region field exists here.
type CreateAdminRequest struct {
	FullName string `json:"fullName" binding:"required,min=3,max=100"`
	Year     int    `json:"year" binding:"required,birthyear"`
	Phone    string `json:"phone" binding:"required,uzphone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Photo    string `json:"photo,omitempty"`
	Role     string `json:"role" binding:"required,oneof=ADMIN SUPERADMIN"`
	RegionID *uint  `json:"regionId,omitempty"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,uzphone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SendOTPRequest represents an OTP dispatch request
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required,uzphone"`
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,uzphone"`
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=4"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// SendOTP handles OTP generation and dispatch. The code travels by email
// (and SMS best-effort) only; it is never echoed in the response.
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpSvc.Send(c.Request.Context(), req.Phone, req.Email); err != nil {
		h.log.Error().Err(err).Msg("failed to send OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "OTP sent successfully",
		},
	})
}

// VerifyOTP handles OTP verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.otpSvc.Verify(req.Phone, req.Email, req.OTP) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "OTP verified successfully",
		},
	})
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, _ := domain.ParseRole(req.Role)
	user, err := h.accountSvc.Register(c.Request.Context(), domain.RegisterInput{
		FullName:  req.FullName,
		BirthYear: req.Year,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Photo:     req.Photo,
		Role:      role,
		RegionID:  req.RegionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrRegionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		case errors.Is(err, domain.ErrRegionRequired), errors.Is(err, domain.ErrRoleNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": userView(user),
	})
}

// CreateAdmin handles privileged account creation (route restricted to ADMIN)
func (h *AuthHandlers) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, _ := domain.ParseRole(req.Role)
	user, err := h.accountSvc.CreateAdmin(c.Request.Context(), domain.RegisterInput{
		FullName:  req.FullName,
		BirthYear: req.Year,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Photo:     req.Photo,
		Role:      role,
		RegionID:  req.RegionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrRegionForbidden), errors.Is(err, domain.ErrRoleNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("admin creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"user": userView(user)},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Phone, req.Email, req.Password, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			h.log.Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"accesstoken":  result.AccessToken,
			"refreshtoken": result.RefreshToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"user": gin.H{
				"id":    result.User.ID,
				"email": result.User.Email,
				"role":  result.User.Role,
			},
		},
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := h.authSvc.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenRevoked),
			errors.Is(err, domain.ErrTokenInvalid),
			errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrTokenMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		default:
			h.log.Error().Err(err).Msg("token refresh failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"accesstoken": accessToken,
			"token_type":  "Bearer",
		},
	})
}

// userView is the outward shape of a user record; the password hash never
// leaves the service.
func userView(user *domain.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"fullName":  user.FullName,
		"year":      user.BirthYear,
		"phone":     user.Phone,
		"email":     user.Email,
		"photo":     user.Photo,
		"role":      user.Role,
		"regionId":  user.RegionID,
		"createdAt": user.CreatedAt,
	}
}
