package http

import (
	"time"

	"CourseForge/internal/config"
	"CourseForge/internal/delivery/http/controllers"
	authcontroller "CourseForge/internal/delivery/http/controllers/auth"
	"CourseForge/internal/delivery/http/controllers/middleware"
	"CourseForge/internal/models"
	"CourseForge/internal/service"
	"CourseForge/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func InitRoutes(l logger.Log, u service.Collection, redisClient *redis.Client, rlCfg config.RateLimit) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	statusController := controllers.NewStatusHandler()
	authController := authcontroller.NewAuthHandler(l, u.AuthService)
	catalogController := controllers.NewCatalogHandler(l, u.CatalogService)
	learnController := controllers.NewLearnHandler(l, u.LearnService)

	authProvider := middleware.NewAuthMiddlewareProvider(l, u.AuthService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authProvider.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", authController.Refresh)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", catalogController.ListCoursePreview)
			courses.GET("/:course_slug", catalogController.CourseBySlug)

			student := courses.Group("", authProvider.AuthMiddleware, middleware.RequireRoles(models.StudentRole))
			{
				student.POST("/:course_slug/enroll", catalogController.Enroll)
				student.GET("/:course_slug/learn", learnController.GetLearnData)
				student.POST(
					"/:course_slug/lessons/:lesson_id/complete",
					rateLimiter.Limit("lesson_complete", rlCfg.CompleteLimit, rlCfg.CompleteWindow),
					learnController.MarkLessonComplete,
				)
			}
		}
	}
	return r
}
