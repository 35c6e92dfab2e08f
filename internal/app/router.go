package app

import (
	"flagguard_backend/docs"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/middleware"
	"flagguard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/achievements", c.member.ListAchievementCatalog)
		public.GET("/cohort/overview", c.training.GetCohortOverview)

		members := public.Group("/members")
		{
			members.GET("", c.member.ListMembers)
			members.GET("/:sid", c.member.GetMember)
			members.GET("/:sid/training", c.training.GetTrainingData)
			members.GET("/:sid/training/report", c.training.GetTrainingReport)
			members.GET("/:sid/achievements", c.member.GetAchievements)
			members.GET("/:sid/photos", c.photo.ListPhotos)
		}

		messages := public.Group("/messages")
		{
			messages.GET("", c.message.GetMessagePage)
			messages.GET("/:id", c.message.GetMessage)
		}
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.POST("/api/admin/login", c.auth.Login)

	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg.JWT.Secret)...)
	{
		admin.POST("/import", c.importer.ImportTraining)
		admin.PUT("/members/:sid/training", c.training.UpsertTrainingRecord)
		admin.POST("/members/:sid/photos", c.photo.UploadPhoto)
	}
}
