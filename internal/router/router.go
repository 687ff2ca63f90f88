package router

import (
	"net/http"
	"time"

	"spandan/config"
	"spandan/internal/domain"
	"spandan/internal/handler"
	"spandan/internal/middleware"
	"spandan/internal/repository"
	"spandan/internal/service"
	"spandan/internal/ws"
	"spandan/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup builds the gin engine with all routes wired. cloud may be nil when
// Cloudinary credentials are not configured; the upload endpoint then returns
// 503.
func Setup(cfg *config.Config, db *gorm.DB, hub *ws.Hub, recorder *service.Recorder, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(300, time.Minute)))

	// repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	eventRepo := repository.NewEventRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	impactRepo := repository.NewImpactRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// services and handlers
	authSvc := service.NewAuthService(cfg, userRepo, tokenRepo)

	authH := handler.NewAuthHandler(authSvc)
	googleH := handler.NewGoogleOAuthHandler(cfg, authSvc)
	publicH := handler.NewPublicHandler(eventRepo, projectRepo, teamRepo, galleryRepo, partnerRepo, impactRepo, settingRepo)
	contactH := handler.NewContactHandler()
	eventH := handler.NewEventHandler(eventRepo, recorder)
	projectH := handler.NewProjectHandler(projectRepo, recorder)
	teamH := handler.NewTeamHandler(teamRepo, recorder)
	galleryH := handler.NewGalleryHandler(galleryRepo, eventRepo, projectRepo, teamRepo, recorder)
	settingH := handler.NewSettingHandler(settingRepo, recorder)
	impactH := handler.NewImpactHandler(impactRepo, recorder)
	partnerH := handler.NewPartnerHandler(partnerRepo, recorder)
	userH := handler.NewUserHandler(userRepo, recorder)
	uploadH := handler.NewUploadHandler(cloud, cfg.Cloudinary.Folder, recorder)
	activityH := handler.NewActivityHandler(&cfg.JWT, auditRepo, tokenRepo, hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public site
	pub := r.Group("/api/v1")
	{
		pub.GET("/events", publicH.ListEvents)
		pub.GET("/events/:slug", publicH.GetEvent)
		pub.GET("/projects", publicH.ListProjects)
		pub.GET("/projects/:slug", publicH.GetProject)
		pub.GET("/team", publicH.ListTeam)
		pub.GET("/gallery", publicH.ListGallery)
		pub.GET("/partners", publicH.ListPartners)
		pub.GET("/impact", publicH.GetImpact)
		pub.GET("/settings", publicH.GetSettings)
		pub.POST("/contact", contactH.Submit)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/refresh", authH.Refresh)
		authGroup.GET("/google", googleH.Redirect)
		authGroup.GET("/google/callback", googleH.Callback)
		authGroup.POST("/google/token", googleH.Token)

		authed := authGroup.Group("")
		authed.Use(middleware.AuthRequired(&cfg.JWT, tokenRepo))
		authed.POST("/logout", authH.Logout)
		authed.POST("/change-password", authH.ChangePassword)
	}

	// admin API. Reads are open to all roles; writes require ADMIN or EDITOR.
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthRequired(&cfg.JWT, tokenRepo))
	{
		edit := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)

		admin.GET("/events", eventH.List)
		admin.GET("/events/:id", eventH.Get)
		admin.POST("/events", edit, eventH.Create)
		admin.PUT("/events/:id", edit, eventH.Update)
		admin.DELETE("/events/:id", edit, eventH.Delete)

		admin.GET("/projects", projectH.List)
		admin.GET("/projects/:id", projectH.Get)
		admin.POST("/projects", edit, projectH.Create)
		admin.PUT("/projects/:id", edit, projectH.Update)
		admin.DELETE("/projects/:id", edit, projectH.Delete)

		admin.GET("/team", teamH.List)
		admin.POST("/team", edit, teamH.Create)
		admin.PUT("/team/:id", edit, teamH.Update)
		admin.DELETE("/team/:id", edit, teamH.Delete)

		admin.GET("/gallery", galleryH.List)
		admin.POST("/gallery", edit, galleryH.Create)
		admin.PUT("/gallery/:id", edit, galleryH.Update)
		admin.DELETE("/gallery/:id", edit, galleryH.Delete)

		admin.GET("/settings", settingH.List)
		admin.PUT("/settings", edit, settingH.Upsert)

		admin.GET("/impact/years", impactH.ListYears)
		admin.POST("/impact/years", edit, impactH.CreateYear)
		admin.PUT("/impact/years/:id", edit, impactH.UpdateYear)
		admin.DELETE("/impact/years/:id", edit, impactH.DeleteYear)
		admin.GET("/impact/summary", impactH.GetSummary)
		admin.PUT("/impact/summary", edit, impactH.UpsertSummary)

		admin.GET("/partners", partnerH.List)
		admin.POST("/partners", edit, partnerH.Create)
		admin.PUT("/partners/:id", edit, partnerH.Update)
		admin.DELETE("/partners/:id", edit, partnerH.Delete)

		admin.POST("/uploads", edit, uploadH.UploadImage)

		admin.GET("/activity", activityH.List)

		users := admin.Group("/users")
		users.Use(middleware.RequireRole(domain.RoleAdmin))
		users.GET("", userH.List)
		users.POST("", userH.Create)
		users.PUT("/:id", userH.Update)
	}

	// token is carried in the query string; Stream validates it itself
	r.GET("/ws/activity", activityH.Stream)

	return r
}
