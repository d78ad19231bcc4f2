package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/audit"
	"github.com/apexcricket/academy-api/internal/cache"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/middleware"
	"github.com/apexcricket/academy-api/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.Content
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, contentCache *cache.Content, dispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, cache: contentCache, audit: dispatcher}
}

type UpdateSettingsRequest struct {
	SiteName     *string `json:"site_name,omitempty"`
	Tagline      *string `json:"tagline,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Could not load site settings.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Could not load site settings.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.Tagline != nil {
		settings.Tagline = *req.Tagline
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.InstagramURL != nil {
		settings.InstagramURL = *req.InstagramURL
	}
	if req.FacebookURL != nil {
		settings.FacebookURL = *req.FacebookURL
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Could not save site settings.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeySettings)

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "settings_updated",
		Entity:   "settings",
		EntityID: &settings.ID,
	})

	c.JSON(http.StatusOK, settings)
}
