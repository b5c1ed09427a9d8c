package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/config"
	"github.com/antrhizom/stud-i-agency-check/internal/api/handler"
	"github.com/antrhizom/stud-i-agency-check/internal/api/middleware"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
)

// Setup baut die Gin-Engine mit allen Routen und Middlewares
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── globale Middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// offen, ohne Authentifizierung
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.RegisterTeacher)
			auth.POST("/login", h.Auth.LoginTeacher)
			auth.POST("/code",
				middleware.RateLimit(rdb, cfg.Auth.CodeLoginRateLimit, cfg.Auth.CodeLoginRateWindow),
				h.Auth.LoginWithCode)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Lehrplankatalog ist öffentlich lesbar
		curriculum := v1.Group("/curriculum")
		{
			curriculum.GET("/vocabulary", h.Curriculum.GetVocabulary)
			curriculum.GET("/:variant", h.Curriculum.GetCatalog)
			curriculum.GET("/:variant/themes/:id", h.Curriculum.GetTheme)
		}

		// authentifizierte Routen
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// Lernende
			entries := authorized.Group("/entries")
			{
				entries.POST("", middleware.RoleAuth(model.RoleLearner), h.Entry.CreateEntry)
				entries.GET("", middleware.RoleAuth(model.RoleLearner), h.Entry.ListOwn)
				entries.DELETE("/:id", middleware.RoleAuth(model.RoleLearner), h.Entry.DeleteEntry)
				entries.PUT("/:id/note", middleware.RoleAuth(model.RoleTeacher), h.Entry.SetTeacherNote)
			}
			authorized.GET("/progress/me", middleware.RoleAuth(model.RoleLearner), h.Progress.OwnDashboard)

			// Lehrpersonen
			classes := authorized.Group("/classes", middleware.RoleAuth(model.RoleTeacher))
			{
				classes.POST("", h.Class.CreateClass)
				classes.GET("", h.Class.ListClasses)
				classes.GET("/:id", h.Class.GetClassDetail)
				classes.GET("/:id/export/codes", h.Export.CodeSheetCSV)
				classes.GET("/:id/export/overview", h.Export.ClassOverviewXLSX)
			}
			learners := authorized.Group("/learners", middleware.RoleAuth(model.RoleTeacher))
			{
				learners.GET("/:id/entries", h.Entry.ListForLearner)
				learners.GET("/:id/progress", h.Progress.LearnerDashboard)
			}
		}
	}

	return r
}
