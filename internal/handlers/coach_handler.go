package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/audit"
	"github.com/apexcricket/academy-api/internal/cache"
	"github.com/apexcricket/academy-api/internal/httpresp"
	"github.com/apexcricket/academy-api/internal/middleware"
	"github.com/apexcricket/academy-api/internal/models"
)

type CoachHandler struct {
	db    *gorm.DB
	cache *cache.Content
	audit *audit.Dispatcher
}

func NewCoachHandler(db *gorm.DB, contentCache *cache.Content, dispatcher *audit.Dispatcher) *CoachHandler {
	return &CoachHandler{db: db, cache: contentCache, audit: dispatcher}
}

// --------- Requests ---------

type CreateCoachRequest struct {
	Name          string `json:"name" binding:"required"`
	Role          string `json:"role"`
	Bio           string `json:"bio"`
	Accreditation string `json:"accreditation"`
	Featured      bool   `json:"featured"`
}

type UpdateCoachRequest struct {
	Name          *string `json:"name,omitempty"`
	Role          *string `json:"role,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	Accreditation *string `json:"accreditation,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CoachHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(role) LIKE ?", like, like)
	}

	var coaches []models.Coach
	if err := q.Order("id ASC").Find(&coaches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_coaches"})
		return
	}

	httpresp.List(c, coaches)
}

func (h *CoachHandler) Create(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	coach := models.Coach{
		Name:          req.Name,
		Role:          req.Role,
		Bio:           req.Bio,
		Accreditation: req.Accreditation,
		Featured:      req.Featured,
		Active:        true,
	}

	if err := h.db.Create(&coach).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_coach"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyCoaches)
	h.dispatchEdit(c, "coach_created", coach.ID)

	c.JSON(http.StatusCreated, coach)
}

func (h *CoachHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var coach models.Coach
	if err := h.db.First(&coach, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "coach_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_coach"})
		return
	}

	var req UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Role != nil {
		coach.Role = *req.Role
	}
	if req.Bio != nil {
		coach.Bio = *req.Bio
	}
	if req.Accreditation != nil {
		coach.Accreditation = *req.Accreditation
	}
	if req.Featured != nil {
		coach.Featured = *req.Featured
	}
	if req.Active != nil {
		coach.Active = *req.Active
	}

	if err := h.db.Save(&coach).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_coach"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyCoaches)
	h.dispatchEdit(c, "coach_updated", coach.ID)

	c.JSON(http.StatusOK, coach)
}

func (h *CoachHandler) dispatchEdit(c *gin.Context, action string, coachID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "coach",
		EntityID: &coachID,
	})
}
