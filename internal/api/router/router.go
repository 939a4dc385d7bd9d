package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/api/handler"
	"kriah-trainer/backend/internal/api/middleware"
	"kriah-trainer/backend/pkg/jwt"
	"kriah-trainer/backend/pkg/redis"
)

const (
	jsonBodyLimit = 1 << 20 // 1 MB
	// multipart framing overhead on top of the raw recording bytes
	uploadOverhead = 64 << 10
)

// Setup builds the gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth endpoints (no token required, rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.BodyLimit(jsonBodyLimit))
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything below requires an access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			// recording uploads carry their own larger body cap
			authorized.POST("/sessions/:id/recording",
				middleware.BodyLimit(cfg.Storage.MaxRecordingBytes+uploadOverhead),
				h.Session.UploadRecording)

			api := authorized.Group("")
			api.Use(middleware.BodyLimit(jsonBodyLimit))
			{
				api.POST("/auth/logout", h.Auth.Logout)
				api.GET("/auth/me", h.Auth.GetCurrentUser)
				api.PUT("/auth/password", h.Auth.ChangePassword)

				sessions := api.Group("/sessions")
				{
					sessions.POST("/complete", h.Session.Complete)
					sessions.GET("", h.Session.List)
					sessions.GET("/stats", h.Session.Stats)
					sessions.DELETE("/:id", h.Session.Delete)
					sessions.DELETE("/mode/:mode", h.Session.DeleteByMode)
					sessions.PUT("/:id/minutes", middleware.RoleAuth("admin"), h.Session.CorrectMinutes)
				}

				api.GET("/dashboard", h.Session.Dashboard)

				plan := api.Group("/plan")
				{
					plan.GET("/guide", h.Plan.Guide)
					plan.GET("/targets", h.Plan.Targets)
				}

				api.GET("/preferences", h.Preference.Get)
				api.PUT("/preferences", h.Preference.Update)

				reference := api.Group("/reference")
				{
					reference.GET("/alphabet", h.Reference.Alphabet)
					reference.GET("/drills/:mode", h.Reference.Drills)
				}

				export := api.Group("/export")
				{
					export.GET("/sessions", h.Export.ExportSessions)
					export.GET("/week.ics", h.Export.ExportWeekCalendar)
				}

				users := api.Group("/users")
				{
					users.GET("", middleware.RoleAuth("admin"), h.User.ListUsers)
					users.GET("/:id", middleware.RoleAuth("admin"), h.User.GetUser)
					users.PUT("/:id", h.User.UpdateUser) // admin or the owner, checked in the service
					users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.DeleteUser)
					users.PUT("/:id/role", middleware.RoleAuth("admin"), h.User.AssignRole)

					// admin or the owner, checked in the service
					users.GET("/:id/sessions", h.Session.ListForUser)
					users.GET("/:id/preferences", h.Preference.GetForUser)
					users.PUT("/:id/preferences", h.Preference.UpdateForUser)
				}
			}
		}
	}

	return r
}
