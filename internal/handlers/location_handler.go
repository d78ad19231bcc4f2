package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/audit"
	"github.com/apexcricket/academy-api/internal/cache"
	"github.com/apexcricket/academy-api/internal/httpresp"
	"github.com/apexcricket/academy-api/internal/middleware"
	"github.com/apexcricket/academy-api/internal/models"
)

type LocationHandler struct {
	db    *gorm.DB
	cache *cache.Content
	audit *audit.Dispatcher
}

func NewLocationHandler(db *gorm.DB, contentCache *cache.Content, dispatcher *audit.Dispatcher) *LocationHandler {
	return &LocationHandler{db: db, cache: contentCache, audit: dispatcher}
}

// --------- Requests ---------

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Suburb   string `json:"suburb"`
	Postcode string `json:"postcode"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Suburb   *string `json:"suburb,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *LocationHandler) List(c *gin.Context) {
	var locations []models.Location
	if err := h.db.Order("id ASC").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_locations"})
		return
	}

	httpresp.List(c, locations)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	location := models.Location{
		Name:     req.Name,
		Address:  req.Address,
		Suburb:   req.Suburb,
		Postcode: req.Postcode,
		Active:   true,
	}

	if err := h.db.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_location"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyLocations)
	h.dispatchEdit(c, "location_created", location.ID)

	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	if err := h.db.First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "location_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_location"})
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.Suburb != nil {
		location.Suburb = *req.Suburb
	}
	if req.Postcode != nil {
		location.Postcode = *req.Postcode
	}
	if req.Active != nil {
		location.Active = *req.Active
	}

	if err := h.db.Save(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_location"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyLocations)
	h.dispatchEdit(c, "location_updated", location.ID)

	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) dispatchEdit(c *gin.Context, action string, locationID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "location",
		EntityID: &locationID,
	})
}
