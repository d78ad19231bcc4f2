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

type ProgramHandler struct {
	db    *gorm.DB
	cache *cache.Content
	audit *audit.Dispatcher
}

func NewProgramHandler(db *gorm.DB, contentCache *cache.Content, dispatcher *audit.Dispatcher) *ProgramHandler {
	return &ProgramHandler{db: db, cache: contentCache, audit: dispatcher}
}

// --------- Requests ---------

type CreateProgramRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	AgeMin      int     `json:"age_min" binding:"min=0"`
	AgeMax      int     `json:"age_max" binding:"min=0"`
	Schedule    string  `json:"schedule"`
	Price       float64 `json:"price"`
	Featured    bool    `json:"featured"`
}

type UpdateProgramRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	AgeMin      *int     `json:"age_min,omitempty"`
	AgeMax      *int     `json:"age_max,omitempty"`
	Schedule    *string  `json:"schedule,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProgramHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var programs []models.Program
	if err := q.
		Order("id ASC").
		Find(&programs).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_programs"})
		return
	}

	httpresp.List(c, programs)
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	program := models.Program{
		Name:        req.Name,
		Description: req.Description,
		AgeMin:      req.AgeMin,
		AgeMax:      req.AgeMax,
		Schedule:    req.Schedule,
		Price:       req.Price,
		Featured:    req.Featured,
		Active:      true,
	}

	if err := h.db.Create(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_program"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyPrograms)
	h.dispatchEdit(c, "program_created", program.ID)

	c.JSON(http.StatusCreated, program)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var program models.Program
	if err := h.db.First(&program, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "program_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_program"})
		return
	}

	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.AgeMin != nil {
		program.AgeMin = *req.AgeMin
	}
	if req.AgeMax != nil {
		program.AgeMax = *req.AgeMax
	}
	if req.Schedule != nil {
		program.Schedule = *req.Schedule
	}
	if req.Price != nil {
		program.Price = *req.Price
	}
	if req.Featured != nil {
		program.Featured = *req.Featured
	}
	if req.Active != nil {
		program.Active = *req.Active
	}

	if err := h.db.Save(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_program"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyPrograms)
	h.dispatchEdit(c, "program_updated", program.ID)

	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) dispatchEdit(c *gin.Context, action string, programID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "program",
		EntityID: &programID,
	})
}
