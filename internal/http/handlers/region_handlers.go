package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// RegionHandlers exposes the region catalog
type RegionHandlers struct {
	regionRepo domain.RegionRepository
	log        zerolog.Logger
}

// NewRegionHandlers creates new region handlers
func NewRegionHandlers(regionRepo domain.RegionRepository) *RegionHandlers {
	return &RegionHandlers{
		regionRepo: regionRepo,
		log:        logging.Component("region_handlers"),
	}
}

// RegionRequest represents region create/update payload
type RegionRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// List returns every region
func (h *RegionHandlers) List(c *gin.Context) {
	regions, err := h.regionRepo.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list regions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list regions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": regions})
}

// Get returns one region by id
func (h *RegionHandlers) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID"})
		return
	}

	region, err := h.regionRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to get region")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": region})
}

// Create adds a region (admin only)
func (h *RegionHandlers) Create(c *gin.Context) {
	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := &domain.Region{Name: req.Name}
	if err := h.regionRepo.Create(c.Request.Context(), region); err != nil {
		if errors.Is(err, domain.ErrRegionExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Region already exists"})
			return
		}
		h.log.Error().Err(err).Msg("failed to create region")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create region"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": region})
}

// Update renames a region (admin only)
func (h *RegionHandlers) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID"})
		return
	}

	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := &domain.Region{ID: id, Name: req.Name}
	if err := h.regionRepo.Update(c.Request.Context(), region); err != nil {
		switch {
		case errors.Is(err, domain.ErrRegionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		case errors.Is(err, domain.ErrRegionExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Region already exists"})
		default:
			h.log.Error().Err(err).Msg("failed to update region")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update region"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": region})
}

// Delete removes a region (admin only)
func (h *RegionHandlers) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID"})
		return
	}

	if err := h.regionRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to delete region")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Region deleted successfully"},
	})
}
