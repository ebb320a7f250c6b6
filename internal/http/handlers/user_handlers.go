package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/http/middleware"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// UserHandlers handles profile and administrative user management
type UserHandlers struct {
	accountSvc domain.AccountService
	log        zerolog.Logger
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(accountSvc domain.AccountService) *UserHandlers {
	return &UserHandlers{
		accountSvc: accountSvc,
		log:        logging.Component("user_handlers"),
	}
}

// UpdateMeRequest is a self-service profile patch
type UpdateMeRequest struct {
	FullName *string `json:"fullName,omitempty" binding:"omitempty,min=2,max=50"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Photo    *string `json:"photo,omitempty"`
}

// PatchUserRequest is an administrative user patch
type PatchUserRequest struct {
	FullName *string `json:"fullName,omitempty" binding:"omitempty,min=3,max=100"`
	Year     *int    `json:"year,omitempty" binding:"omitempty,birthyear"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,uzphone"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Photo    *string `json:"photo,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=USER SELLER ADMIN SUPERADMIN CEO"`
	RegionID *uint   `json:"regionId,omitempty"`
}

// SendResetOTPRequest asks for a password-reset code
type SendResetOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes an OTP-gated password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=4"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// Me returns the caller's profile (identity comes from token claims only)
func (h *UserHandlers) Me(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	user, err := h.accountSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to get profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userView(user)})
}

// UpdateMe applies a partial self-service profile update
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName == nil && req.Email == nil && req.Password == nil && req.Photo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	user, err := h.accountSvc.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Photo:    req.Photo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Profile successfully updated",
			"user":    userView(user),
		},
	})
}

// List returns a page of users (admin view)
func (h *UserHandlers) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.accountSvc.List(c.Request.Context(), domain.ListUsersQuery{
		Page:   page,
		Limit:  limit,
		Name:   c.Query("name"),
		Column: c.DefaultQuery("column", "id"),
		Order:  c.DefaultQuery("order", "ASC"),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	views := make([]gin.H, 0, len(users))
	for _, user := range users {
		views = append(views, userView(user))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// Patch applies an administrative partial update to a user
func (h *UserHandlers) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := domain.UserPatch{
		FullName:  req.FullName,
		BirthYear: req.Year,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Photo:     req.Photo,
		RegionID:  req.RegionID,
	}
	if req.Role != nil {
		role, _ := domain.ParseRole(*req.Role)
		patch.Role = &role
	}

	user, err := h.accountSvc.Patch(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrRegionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		case errors.Is(err, domain.ErrRegionRequired), errors.Is(err, domain.ErrRegionForbidden):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		default:
			h.log.Error().Err(err).Msg("user patch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userView(user)})
}

// Delete removes a user (admin only)
func (h *UserHandlers) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.accountSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("user delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "User deleted successfully"},
	})
}

// SendResetOTP emails the caller a password-reset code
func (h *UserHandlers) SendResetOTP(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req SendResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountSvc.SendResetOTP(c.Request.Context(), userID, req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("reset OTP dispatch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "OTP sent successfully"},
	})
}

// ResetPassword completes the OTP-gated password reset
func (h *UserHandlers) ResetPassword(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := h.accountSvc.ResetPassword(c.Request.Context(), userID, req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		default:
			h.log.Error().Err(err).Msg("password reset failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Password updated successfully"},
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
