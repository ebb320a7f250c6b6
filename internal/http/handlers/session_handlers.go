package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/http/middleware"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// SessionHandlers exposes the login audit trail
type SessionHandlers struct {
	sessionRepo domain.SessionRepository
	log         zerolog.Logger
}

// NewSessionHandlers creates new session handlers
func NewSessionHandlers(sessionRepo domain.SessionRepository) *SessionHandlers {
	return &SessionHandlers{
		sessionRepo: sessionRepo,
		log:         logging.Component("session_handlers"),
	}
}

// List returns every session row (admin view)
func (h *SessionHandlers) List(c *gin.Context) {
	sessions, err := h.sessionRepo.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}
	if len(sessions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessions not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sessionViews(sessions)})
}

// Me returns the caller's own sessions. The user id comes from token claims
// only, so one caller can never enumerate another's sessions here.
func (h *SessionHandlers) Me(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	sessions, err := h.sessionRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list caller sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}
	if len(sessions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sessionViews(sessions)})
}

// Get returns a single session by id (admin view)
func (h *SessionHandlers) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.sessionRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to get session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sessionView(session)})
}

// Delete removes a session row. Tokens already issued against it stay valid
// until their natural expiry.
func (h *SessionHandlers) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	if err := h.sessionRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to delete session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Session deleted"},
	})
}

func sessionView(session *domain.Session) gin.H {
	return gin.H{
		"id":        session.ID,
		"userId":    session.UserID,
		"userIp":    session.UserIP,
		"data":      session.Device,
		"createdAt": session.CreatedAt,
	}
}

func sessionViews(sessions []*domain.Session) []gin.H {
	views := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, sessionView(s))
	}
	return views
}
