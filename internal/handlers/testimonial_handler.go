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

type TestimonialHandler struct {
	db    *gorm.DB
	cache *cache.Content
	audit *audit.Dispatcher
}

func NewTestimonialHandler(db *gorm.DB, contentCache *cache.Content, dispatcher *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{db: db, cache: contentCache, audit: dispatcher}
}

// --------- Requests ---------

type CreateTestimonialRequest struct {
	Author   string `json:"author" binding:"required"`
	Role     string `json:"role"`
	Quote    string `json:"quote" binding:"required"`
	Rating   int    `json:"rating" binding:"min=0,max=5"`
	Featured bool   `json:"featured"`
}

type UpdateTestimonialRequest struct {
	Author   *string `json:"author,omitempty"`
	Role     *string `json:"role,omitempty"`
	Quote    *string `json:"quote,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *TestimonialHandler) List(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_testimonials"})
		return
	}

	httpresp.List(c, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := models.Testimonial{
		Author:   req.Author,
		Role:     req.Role,
		Quote:    req.Quote,
		Rating:   rating,
		Featured: req.Featured,
		Active:   true,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_testimonial"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyTestimonials)
	h.dispatchEdit(c, "testimonial_created", testimonial.ID)

	c.JSON(http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var testimonial models.Testimonial
	if err := h.db.First(&testimonial, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "testimonial_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_testimonial"})
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Author != nil {
		testimonial.Author = *req.Author
	}
	if req.Role != nil {
		testimonial.Role = *req.Role
	}
	if req.Quote != nil {
		testimonial.Quote = *req.Quote
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}
	if req.Active != nil {
		testimonial.Active = *req.Active
	}

	if err := h.db.Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_testimonial"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyTestimonials)
	h.dispatchEdit(c, "testimonial_updated", testimonial.ID)

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) dispatchEdit(c *gin.Context, action string, testimonialID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "testimonial",
		EntityID: &testimonialID,
	})
}
