package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/audit"
	"github.com/apexcricket/academy-api/internal/cache"
	"github.com/apexcricket/academy-api/internal/config"
	"github.com/apexcricket/academy-api/internal/handlers"
	infraRepo "github.com/apexcricket/academy-api/internal/infra/repository"
	"github.com/apexcricket/academy-api/internal/middleware"
	ucWaitlist "github.com/apexcricket/academy-api/internal/usecase/waitlist"
	"github.com/apexcricket/academy-api/internal/validators"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	waitlistRepo := infraRepo.NewWaitlistGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	contentCache := cache.New(cfg.RedisAddr, cfg.ContentCacheTTL)

	// ======================================================
	// USE CASES — WAITLIST
	// ======================================================
	submitApplicationUC := ucWaitlist.NewSubmitApplication(
		waitlistRepo,
		auditDispatcher,
		cfg.MinAge,
		cfg.MaxAge,
		validators.IsEmailDomainValid,
	)

	listEntriesUC := ucWaitlist.NewListEntries(waitlistRepo)

	transitionStatusUC := ucWaitlist.NewTransitionStatus(waitlistRepo)

	exportEntriesUC := ucWaitlist.NewExportEntries(waitlistRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, contentCache, submitApplicationUC)

	waitlistHandler := handlers.NewWaitlistHandler(
		db,
		listEntriesUC,
		transitionStatusUC,
		exportEntriesUC,
	)

	programHandler := handlers.NewProgramHandler(db, contentCache, auditDispatcher)
	coachHandler := handlers.NewCoachHandler(db, contentCache, auditDispatcher)
	locationHandler := handlers.NewLocationHandler(db, contentCache, auditDispatcher)
	testimonialHandler := handlers.NewTestimonialHandler(db, contentCache, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, contentCache, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API (marketing site)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/programs", publicHandler.ListPrograms)
			publicAPI.GET("/coaches", publicHandler.ListCoaches)
			publicAPI.GET("/locations", publicHandler.ListLocations)
			publicAPI.GET("/testimonials", publicHandler.ListTestimonials)
			publicAPI.GET("/settings", publicHandler.GetSettings)

			publicAPI.POST("/waitlist", publicHandler.SubmitWaitlist)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// WAITLIST MODERATION
			// ------------------------------
			secured.GET("/me/waitlist", waitlistHandler.List)
			secured.GET("/me/waitlist/export", waitlistHandler.Export)
			secured.GET("/me/waitlist/:id", waitlistHandler.Get)
			secured.PATCH("/me/waitlist/:id/approve", waitlistHandler.Approve)
			secured.PATCH("/me/waitlist/:id/reject", waitlistHandler.Reject)
			secured.PATCH("/me/waitlist/:id/contact", waitlistHandler.Contact)

			// ------------------------------
			// CONTENT
			// ------------------------------
			secured.GET("/me/programs", programHandler.List)
			secured.POST("/me/programs", programHandler.Create)
			secured.PATCH("/me/programs/:id", programHandler.Update)

			secured.GET("/me/coaches", coachHandler.List)
			secured.POST("/me/coaches", coachHandler.Create)
			secured.PATCH("/me/coaches/:id", coachHandler.Update)

			secured.GET("/me/locations", locationHandler.List)
			secured.POST("/me/locations", locationHandler.Create)
			secured.PATCH("/me/locations/:id", locationHandler.Update)

			secured.GET("/me/testimonials", testimonialHandler.List)
			secured.POST("/me/testimonials", testimonialHandler.Create)
			secured.PATCH("/me/testimonials/:id", testimonialHandler.Update)

			secured.GET("/me/settings", settingsHandler.Get)
			secured.PATCH("/me/settings", settingsHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
