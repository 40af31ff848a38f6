package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsroom-cms/config"
	"newsroom-cms/handlers"
	"newsroom-cms/helper"
	"newsroom-cms/logger"
	"newsroom-cms/middleware"
	"newsroom-cms/repositories"
	"newsroom-cms/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}
	if err := config.SeedAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed admin account", "error", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	categoryService := services.NewCategoryService(categoryRepo, articleRepo)
	tagService := services.NewTagService(tagRepo)
	commentService := services.NewCommentService(commentRepo, settingRepo)
	mediaService := services.NewMediaService(mediaRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	settingService := services.NewSettingService(settingRepo)
	dashboardService := services.NewDashboardService(articleRepo, categoryRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	mediaHandler := handlers.NewMediaHandler(mediaService, httpHelper)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, httpHelper)
	settingHandler := handlers.NewSettingHandler(settingService, httpHelper)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, httpHelper)

	// Setup router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes
		api.GET("/articles/public", articleHandler.GetPublicArticles)
		api.GET("/articles/public/trending", articleHandler.GetTrendingArticles)
		api.GET("/articles/public/related", articleHandler.GetRelatedArticles)
		api.GET("/articles/public/:id", articleHandler.GetPublicArticle)
		api.GET("/settings/public", settingHandler.GetPublicSettings)
		api.GET("/homepage/public", settingHandler.GetHomepage)
		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		protected.Use(middleware.RequireRole("admin"))
		{
			// Profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.PATCH("/:id/publish", articleHandler.PublishArticle)
			}

			// Categories
			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
				tags.POST("", tagHandler.CreateTag)
				tags.PUT("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			// Comments
			comments := protected.Group("/comments")
			{
				comments.GET("", commentHandler.GetComments)
				comments.PATCH("/toggle", commentHandler.ToggleComments)
				comments.PATCH("/:id/approve", commentHandler.ApproveComment)
				comments.DELETE("/:id", commentHandler.DeleteComment)
			}

			// Newsletter
			protected.GET("/newsletter/subscribers", newsletterHandler.GetSubscribers)

			// Settings
			protected.GET("/settings", settingHandler.GetSettings)
			protected.PUT("/settings", settingHandler.UpdateSettings)
			protected.GET("/homepage", settingHandler.GetHomepage)
			protected.PUT("/homepage", settingHandler.UpdateHomepage)

			// Media
			media := protected.Group("/media")
			{
				media.GET("", mediaHandler.GetMedia)
				media.POST("", mediaHandler.RegisterMedia)
				media.DELETE("/:id", mediaHandler.DeleteMedia)
			}

			// Dashboard
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)
		}
	}

	logger.Info("Server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}
