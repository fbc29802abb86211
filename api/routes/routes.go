package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/config"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/handlers"
	"github.com/techdayconf/techday-backend/internal/middleware"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/session"
	"github.com/techdayconf/techday-backend/pkg/botcheck"
)

// HandlerDependencies carries the constructed handlers into SetupRouter
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	ContentHandler      *handlers.ContentHandler
	SponsorHandler      *handlers.SponsorHandler
	RegistrationHandler *handlers.RegistrationHandler
	PitchHandler        *handlers.PitchHandler
	NewsletterHandler   *handlers.NewsletterHandler
	UploadHandler       *handlers.UploadHandler
	DiagnosticsHandler  *handlers.DiagnosticsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, codec *session.Codec, dir *directory.Directory, checker botcheck.Checker, deps HandlerDependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		// Public content reads for page rendering
		content := public.Group("/content")
		{
			content.GET("/speakers", deps.ContentHandler.GetPublicSpeakers)
			content.GET("/schedule", deps.ContentHandler.GetPublicSchedule)
			content.GET("/sponsors", deps.SponsorHandler.GetPublicSponsors)
			content.GET("/partners", deps.ContentHandler.GetPublicPartners)
		}

		// Submission intake, bot-filtered before any validation
		botGuard := middleware.BotCheckMiddleware(checker)
		public.POST("/register", botGuard, deps.RegistrationHandler.Register)
		public.POST("/pitch", botGuard, deps.PitchHandler.Submit)
		public.POST("/newsletter", botGuard, deps.NewsletterHandler.Subscribe)

		public.GET("/register", deps.RegistrationHandler.Lookup)
		public.DELETE("/newsletter", deps.NewsletterHandler.Unsubscribe)
	}

	// Admin auth endpoints manage the session cookie themselves
	admin := router.Group("/api/v1/admin")
	{
		admin.POST("/auth", deps.AuthHandler.Login)
		admin.GET("/auth", deps.AuthHandler.Status)
		admin.DELETE("/auth", deps.AuthHandler.Logout)
	}

	// Everything else under /admin requires a session; each route family is
	// additionally gated on its permission category.
	protected := admin.Group("")
	protected.Use(middleware.RequireSession(codec, dir))
	{
		speakers := protected.Group("/speakers", middleware.RequirePermission(dir, models.PermSpeakers))
		{
			speakers.GET("", deps.ContentHandler.GetSpeakers)
			speakers.POST("", deps.ContentHandler.CreateSpeaker)
			speakers.PUT("", deps.ContentHandler.UpdateSpeaker)
			speakers.DELETE("", deps.ContentHandler.DeleteSpeaker)
		}

		schedule := protected.Group("/schedule", middleware.RequirePermission(dir, models.PermSchedule))
		{
			schedule.GET("", deps.ContentHandler.GetSchedule)
			schedule.POST("", deps.ContentHandler.CreateSession)
			schedule.PUT("", deps.ContentHandler.UpdateSession)
			schedule.DELETE("", deps.ContentHandler.DeleteSession)
		}

		sponsors := protected.Group("/sponsors", middleware.RequirePermission(dir, models.PermSponsors))
		{
			sponsors.GET("", deps.SponsorHandler.GetSponsors)
			sponsors.POST("", deps.SponsorHandler.CreateSponsor)
			sponsors.PUT("", deps.SponsorHandler.UpdateSponsor)
			sponsors.DELETE("", deps.SponsorHandler.DeleteSponsor)
			sponsors.PATCH("", deps.SponsorHandler.ReorderSponsors)
		}

		// Partners reuse the sponsors permission rather than a category of
		// their own.
		partners := protected.Group("/partners", middleware.RequirePermission(dir, models.PermSponsors))
		{
			partners.GET("", deps.ContentHandler.GetPartners)
			partners.POST("", deps.ContentHandler.CreatePartner)
			partners.PUT("", deps.ContentHandler.UpdatePartner)
			partners.DELETE("", deps.ContentHandler.DeletePartner)
		}

		registrations := protected.Group("/registrations", middleware.RequirePermission(dir, models.PermRegistrations))
		{
			registrations.GET("", deps.RegistrationHandler.List)
			registrations.GET("/count", deps.RegistrationHandler.Count)
		}

		newsletter := protected.Group("/newsletter", middleware.RequirePermission(dir, models.PermNewsletter))
		{
			newsletter.GET("", deps.NewsletterHandler.List)
			newsletter.GET("/count", deps.NewsletterHandler.Count)
		}

		pitches := protected.Group("/pitches", middleware.RequirePermission(dir, models.PermPitches))
		{
			pitches.GET("", deps.PitchHandler.List)
			pitches.GET("/count", deps.PitchHandler.Count)
			pitches.PATCH("/:id/status", deps.PitchHandler.UpdateStatus)
		}

		protected.POST("/uploads",
			middleware.RequireAnyPermission(dir, models.PermSpeakers, models.PermSponsors, models.PermSchedule),
			deps.UploadHandler.Upload)

		protected.GET("/diagnostics",
			middleware.RequirePermission(dir, models.PermUsers),
			deps.DiagnosticsHandler.Diagnostics)
	}

	return router
}
