package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/cache"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/models"
	"github.com/apexcricket/academy-api/internal/usecase/waitlist"
	"github.com/apexcricket/academy-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the marketing site. Content reads degrade to
// hard-coded defaults on failure (the site must never render broken);
// the waitlist submit is the one write, and its failures are surfaced.
type PublicHandler struct {
	db     *gorm.DB
	cache  *cache.Content
	submit *waitlist.SubmitApplication
}

func NewPublicHandler(
	db *gorm.DB,
	contentCache *cache.Content,
	submit *waitlist.SubmitApplication,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		cache:  contentCache,
		submit: submit,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// Field names match the intake form, so validation errors key directly
// onto inputs.
type SubmitWaitlistRequest struct {
	ChildName         string `json:"childName"`
	DateOfBirth       string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender            string `json:"gender"`
	PhoneNumber       string `json:"phoneNumber"`
	Email             string `json:"email"`
	SuburbPostcode    string `json:"suburbPostcode"`
	CricketExperience string `json:"cricketExperience"`

	ParentGuardianName  string `json:"parentGuardianName"`
	ParentGuardianPhone string `json:"parentGuardianPhone"`
	ParentGuardianEmail string `json:"parentGuardianEmail"`

	ConsentToContact   bool `json:"consentToContact"`
	ConsentToMarketing bool `json:"consentToMarketing"`

	ProgramID *uint `json:"programInterest"`

	Status string `json:"status"`
}

////////////////////////////////////////////////////////
// CONTENT (cached reads, default fallback)
////////////////////////////////////////////////////////

const (
	cacheKeyPrograms     = "content:programs"
	cacheKeyCoaches      = "content:coaches"
	cacheKeyLocations    = "content:locations"
	cacheKeyTestimonials = "content:testimonials"
	cacheKeySettings     = "content:settings"
)

func (h *PublicHandler) ListPrograms(c *gin.Context) {
	ctx := c.Request.Context()

	var programs []models.Program
	if !h.cache.Get(ctx, cacheKeyPrograms, &programs) {
		if err := h.db.WithContext(ctx).
			Where("active = ?", true).
			Order("featured DESC, id ASC").
			Find(&programs).Error; err != nil {

			log.Println("failed to load programs, serving defaults:", err)
			c.JSON(http.StatusOK, gin.H{"programs": defaultPrograms})
			return
		}
		h.cache.Set(ctx, cacheKeyPrograms, programs)
	}

	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (h *PublicHandler) ListCoaches(c *gin.Context) {
	ctx := c.Request.Context()

	var coaches []models.Coach
	if !h.cache.Get(ctx, cacheKeyCoaches, &coaches) {
		if err := h.db.WithContext(ctx).
			Where("active = ?", true).
			Order("featured DESC, id ASC").
			Find(&coaches).Error; err != nil {

			log.Println("failed to load coaches:", err)
			c.JSON(http.StatusOK, gin.H{"coaches": []models.Coach{}})
			return
		}
		h.cache.Set(ctx, cacheKeyCoaches, coaches)
	}

	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

func (h *PublicHandler) ListLocations(c *gin.Context) {
	ctx := c.Request.Context()

	var locations []models.Location
	if !h.cache.Get(ctx, cacheKeyLocations, &locations) {
		if err := h.db.WithContext(ctx).
			Where("active = ?", true).
			Order("id ASC").
			Find(&locations).Error; err != nil {

			log.Println("failed to load locations:", err)
			c.JSON(http.StatusOK, gin.H{"locations": []models.Location{}})
			return
		}
		h.cache.Set(ctx, cacheKeyLocations, locations)
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *PublicHandler) ListTestimonials(c *gin.Context) {
	ctx := c.Request.Context()

	var testimonials []models.Testimonial
	if !h.cache.Get(ctx, cacheKeyTestimonials, &testimonials) {
		if err := h.db.WithContext(ctx).
			Where("active = ?", true).
			Order("featured DESC, created_at DESC").
			Find(&testimonials).Error; err != nil {

			log.Println("failed to load testimonials, serving defaults:", err)
			c.JSON(http.StatusOK, gin.H{"testimonials": defaultTestimonials})
			return
		}
		h.cache.Set(ctx, cacheKeyTestimonials, testimonials)
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var settings models.SiteSettings
	if !h.cache.Get(ctx, cacheKeySettings, &settings) {
		if err := h.db.WithContext(ctx).First(&settings).Error; err != nil {
			log.Println("failed to load settings, serving defaults:", err)
			c.JSON(http.StatusOK, defaultSettings)
			return
		}
		h.cache.Set(ctx, cacheKeySettings, settings)
	}

	c.JSON(http.StatusOK, settings)
}

////////////////////////////////////////////////////////
// WAITLIST INTAKE
////////////////////////////////////////////////////////

func (h *PublicHandler) SubmitWaitlist(c *gin.Context) {
	var req SubmitWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	entry, err := h.submit.Execute(
		c.Request.Context(),
		waitlist.SubmitApplicationInput{
			ChildName:         req.ChildName,
			DateOfBirth:       req.DateOfBirth,
			Gender:            req.Gender,
			PhoneNumber:       req.PhoneNumber,
			Email:             req.Email,
			SuburbPostcode:    req.SuburbPostcode,
			CricketExperience: req.CricketExperience,

			ParentGuardianName:  req.ParentGuardianName,
			ParentGuardianPhone: req.ParentGuardianPhone,
			ParentGuardianEmail: req.ParentGuardianEmail,

			ConsentToContact:   req.ConsentToContact,
			ConsentToMarketing: req.ConsentToMarketing,

			ProgramID: req.ProgramID,
			Status:    req.Status,
		},
	)

	if err != nil {
		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"fields": ve.Fields,
			})
			return
		}

		if httperr.IsBusiness(err, "program_not_found") {
			httperr.BadRequest(c, "program_not_found", "The selected program is no longer offered.")
			return
		}

		// Write failures must be visible: the family has to know the
		// registration did not go through.
		msg := err.Error()
		if msg == "" {
			msg = "Something went wrong submitting your registration. Please try again."
		}
		httperr.Internal(c, "submission_failed", msg)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
