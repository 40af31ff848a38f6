package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"newsroom-cms/helper"
	"newsroom-cms/middleware"
	"newsroom-cms/models"
	"newsroom-cms/repositories"
	"newsroom-cms/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *IntegrationTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}))
	suite.Require().NoError(db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.ArticleTag{},
		&models.Comment{},
		&models.MediaItem{},
		&models.NewsletterSubscriber{},
		&models.Setting{},
	))

	suite.db = db
	suite.setupRouter()
	suite.registerAndLoginTestUser()
}

func (suite *IntegrationTestSuite) setupRouter() {
	userRepo := repositories.NewUserRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)
	mediaRepo := repositories.NewMediaRepository(suite.db)
	newsletterRepo := repositories.NewNewsletterRepository(suite.db)
	settingRepo := repositories.NewSettingRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	categoryService := services.NewCategoryService(categoryRepo, articleRepo)
	tagService := services.NewTagService(tagRepo)
	commentService := services.NewCommentService(commentRepo, settingRepo)
	mediaService := services.NewMediaService(mediaRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	settingService := services.NewSettingService(settingRepo)
	dashboardService := services.NewDashboardService(articleRepo, categoryRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := NewAuthHandler(authService, httpHelper)
	articleHandler := NewArticleHandler(articleService, httpHelper)
	categoryHandler := NewCategoryHandler(categoryService, httpHelper)
	tagHandler := NewTagHandler(tagService, httpHelper)
	commentHandler := NewCommentHandler(commentService, httpHelper)
	mediaHandler := NewMediaHandler(mediaService, httpHelper)
	newsletterHandler := NewNewsletterHandler(newsletterService, httpHelper)
	settingHandler := NewSettingHandler(settingService, httpHelper)
	dashboardHandler := NewDashboardHandler(dashboardService, httpHelper)

	router := gin.New()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/articles/public", articleHandler.GetPublicArticles)
		api.GET("/articles/public/trending", articleHandler.GetTrendingArticles)
		api.GET("/articles/public/related", articleHandler.GetRelatedArticles)
		api.GET("/articles/public/:id", articleHandler.GetPublicArticle)
		api.GET("/settings/public", settingHandler.GetPublicSettings)
		api.GET("/homepage/public", settingHandler.GetHomepage)
		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		protected.Use(middleware.RequireRole("admin"))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)

			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.PATCH("/:id/publish", articleHandler.PublishArticle)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
				tags.POST("", tagHandler.CreateTag)
				tags.PUT("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			comments := protected.Group("/comments")
			{
				comments.GET("", commentHandler.GetComments)
				comments.PATCH("/toggle", commentHandler.ToggleComments)
				comments.PATCH("/:id/approve", commentHandler.ApproveComment)
				comments.DELETE("/:id", commentHandler.DeleteComment)
			}

			protected.GET("/newsletter/subscribers", newsletterHandler.GetSubscribers)
			protected.GET("/settings", settingHandler.GetSettings)
			protected.PUT("/settings", settingHandler.UpdateSettings)
			protected.GET("/homepage", settingHandler.GetHomepage)
			protected.PUT("/homepage", settingHandler.UpdateHomepage)

			media := protected.Group("/media")
			{
				media.GET("", mediaHandler.GetMedia)
				media.POST("", mediaHandler.RegisterMedia)
				media.DELETE("/:id", mediaHandler.DeleteMedia)
			}

			protected.GET("/dashboard/stats", dashboardHandler.GetStats)
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) registerAndLoginTestUser() {
	w := suite.doJSON("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "editor@example.com",
		Password: "password123",
	}, "")
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.doJSON("POST", "/api/auth/login", models.LoginRequest{
		Email:    "editor@example.com",
		Password: "password123",
	}, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp models.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.Token)
	suite.token = resp.Token
}

func (suite *IntegrationTestSuite) doJSON(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *IntegrationTestSuite) createArticle(payload models.CreateArticleRequest) uint {
	w := suite.doJSON("POST", "/api/articles", payload, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	suite.decode(w, &resp)
	suite.Equal("Article created", resp.Message)
	suite.Require().NotZero(resp.ID)
	return resp.ID
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) TestLoginRejectsBadPassword() {
	w := suite.doJSON("POST", "/api/auth/login", models.LoginRequest{
		Email:    "editor@example.com",
		Password: "wrong",
	}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp map[string]string
	suite.decode(w, &resp)
	suite.Equal("Invalid credentials", resp["message"])
}

func (suite *IntegrationTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.doJSON("GET", "/api/articles", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.doJSON("GET", "/api/articles", nil, "not-a-real-token")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestProfile() {
	w := suite.doJSON("GET", "/api/auth/profile", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var user models.User
	suite.decode(w, &user)
	suite.Equal("editor@example.com", user.Email)
}

func (suite *IntegrationTestSuite) TestArticleLifecycle() {
	suite.createArticle(models.CreateArticleRequest{
		Title:   "Harbor Expansion",
		Excerpt: "the port grows",
		Body:    "<p>full story</p>",
	})

	// Draft by default, invisible publicly.
	w := suite.doJSON("GET", "/api/articles/public/1", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.doJSON("PATCH", "/api/articles/1/publish", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/articles/public/1", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var article models.Article
	suite.decode(w, &article)
	suite.Equal("Harbor Expansion", article.Title)
	suite.Equal(models.StatusPublished, article.Status)
	suite.NotNil(article.PublishedAt)

	// The first public read reported zero views; the counter moved after.
	suite.Zero(article.Views)
	w = suite.doJSON("GET", "/api/articles/public/1", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &article)
	suite.Equal(int64(1), article.Views)

	w = suite.doJSON("DELETE", "/api/articles/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/articles/1", nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestArticleCreateRequiresTitle() {
	w := suite.doJSON("POST", "/api/articles", models.CreateArticleRequest{}, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestArticleInvalidStatus() {
	w := suite.doJSON("POST", "/api/articles", models.CreateArticleRequest{
		Title:  "Bad Status",
		Status: "live",
	}, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.decode(w, &resp)
	suite.Equal("Invalid status value", resp["message"])
}

func (suite *IntegrationTestSuite) TestArticleListEnvelope() {
	for i := 0; i < 3; i++ {
		suite.createArticle(models.CreateArticleRequest{
			Title:  "Story",
			Status: models.StatusPublished,
		})
	}

	w := suite.doJSON("GET", "/api/articles/public?page=1&limit=2", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp models.ArticleListResponse
	suite.decode(w, &resp)
	suite.Len(resp.Articles, 2)
	suite.Equal(1, resp.Pagination.Page)
	suite.Equal(2, resp.Pagination.Limit)
	suite.Equal(int64(3), resp.Pagination.Total)
	suite.Equal(2, resp.Pagination.Pages)
}

func (suite *IntegrationTestSuite) TestArticleUpdateKeepsPublishedAt() {
	suite.createArticle(models.CreateArticleRequest{
		Title: "Update Target",
	})

	// The first transition to published stamps published_at.
	w := suite.doJSON("PUT", "/api/articles/1", models.UpdateArticleRequest{
		Title:  "Update Target",
		Status: models.StatusPublished,
	}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/articles/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var before models.Article
	suite.decode(w, &before)
	suite.Require().NotNil(before.PublishedAt)

	w = suite.doJSON("PUT", "/api/articles/1", models.UpdateArticleRequest{
		Title:  "Update Target Revised",
		Status: models.StatusPublished,
	}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/articles/1", nil, suite.token)
	var after models.Article
	suite.decode(w, &after)
	suite.Equal("Update Target Revised", after.Title)
	suite.Require().NotNil(after.PublishedAt)
	suite.True(before.PublishedAt.Equal(*after.PublishedAt))
}

func (suite *IntegrationTestSuite) TestTrendingAndRelated() {
	for _, views := range []int64{5, 1, 9} {
		id := suite.createArticle(models.CreateArticleRequest{
			Title:  "Trending Story",
			Status: models.StatusPublished,
		})
		suite.Require().NoError(suite.db.Model(&models.Article{}).
			Where("id = ?", id).UpdateColumn("views", views).Error)
	}

	w := suite.doJSON("GET", "/api/articles/public/trending?limit=2", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Articles []models.Article `json:"articles"`
	}
	suite.decode(w, &resp)
	suite.Require().Len(resp.Articles, 2)
	suite.Equal(int64(9), resp.Articles[0].Views)
	suite.Equal(int64(5), resp.Articles[1].Views)

	w = suite.doJSON("GET", "/api/articles/public/related?id=1", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &resp)
	suite.Len(resp.Articles, 2)

	w = suite.doJSON("GET", "/api/articles/public/related?id=1&category=abc", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestCategoryCRUD() {
	w := suite.doJSON("POST", "/api/categories", models.CreateCategoryRequest{Name: "Local News"}, suite.token)
	suite.Equal(http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	suite.decode(w, &created)

	w = suite.doJSON("GET", "/api/categories/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var category models.Category
	suite.decode(w, &category)
	suite.Equal("local-news", category.Slug)

	// Duplicate name is rejected.
	w = suite.doJSON("POST", "/api/categories", models.CreateCategoryRequest{Name: "Local News"}, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	// A category holding articles will not delete.
	suite.createArticle(models.CreateArticleRequest{Title: "Categorized", CategoryID: &created.ID})
	w = suite.doJSON("DELETE", "/api/categories/1", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.decode(w, &resp)
	suite.Equal("Cannot delete category with articles", resp["message"])
}

func (suite *IntegrationTestSuite) TestTagCRUD() {
	w := suite.doJSON("POST", "/api/tags", models.CreateTagRequest{Name: "Breaking"}, suite.token)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.doJSON("GET", "/api/tags", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var tags []models.Tag
	suite.decode(w, &tags)
	suite.Require().Len(tags, 1)
	suite.Equal("breaking", tags[0].Slug)

	w = suite.doJSON("DELETE", "/api/tags/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/tags/1", nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestCommentModerationFlow() {
	suite.createArticle(models.CreateArticleRequest{Title: "Commented Story"})
	suite.Require().NoError(suite.db.Create(&models.Comment{
		ArticleID: 1, AuthorName: "reader", Body: "nice work",
	}).Error)

	w := suite.doJSON("GET", "/api/comments?status=pending", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var comments []models.Comment
	suite.decode(w, &comments)
	suite.Require().Len(comments, 1)
	suite.Equal("Commented Story", comments[0].ArticleTitle)

	w = suite.doJSON("PATCH", "/api/comments/1/approve", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/comments?status=approved", nil, suite.token)
	suite.decode(w, &comments)
	suite.Len(comments, 1)

	w = suite.doJSON("PATCH", "/api/comments/toggle", gin.H{"enabled": false}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var toggle struct {
		Message string `json:"message"`
		Enabled bool   `json:"enabled"`
	}
	suite.decode(w, &toggle)
	suite.False(toggle.Enabled)

	w = suite.doJSON("DELETE", "/api/comments/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	w = suite.doJSON("DELETE", "/api/comments/1", nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestNewsletterSubscribeFlow() {
	w := suite.doJSON("POST", "/api/newsletter/subscribe", models.SubscribeRequest{Email: "reader@example.com"}, "")
	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		Message    string `json:"message"`
		Subscribed bool   `json:"subscribed"`
	}
	suite.decode(w, &resp)
	suite.Equal("Successfully subscribed to newsletter", resp.Message)
	suite.True(resp.Subscribed)

	// Repeats are acknowledged with 200, not an error.
	w = suite.doJSON("POST", "/api/newsletter/subscribe", models.SubscribeRequest{Email: "reader@example.com"}, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &resp)
	suite.Equal("Email already subscribed", resp.Message)

	w = suite.doJSON("POST", "/api/newsletter/subscribe", models.SubscribeRequest{Email: "not-an-email"}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON("GET", "/api/newsletter/subscribers", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var subscribers []models.NewsletterSubscriber
	suite.decode(w, &subscribers)
	suite.Len(subscribers, 1)

	w = suite.doJSON("POST", "/api/newsletter/unsubscribe", models.SubscribeRequest{Email: "reader@example.com"}, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestSettingsFlow() {
	w := suite.doJSON("PUT", "/api/settings", map[string]interface{}{
		"site_name":     "The Daily Ledger",
		"smtp_password": "secret",
	}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/settings/public", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var public map[string]string
	suite.decode(w, &public)
	suite.Equal("The Daily Ledger", public["site_name"])
	_, leaked := public["smtp_password"]
	suite.False(leaked)

	featured := uint(3)
	w = suite.doJSON("PUT", "/api/homepage", models.HomepageSettings{
		FeaturedStory:      &featured,
		ArticlesPerSection: 8,
	}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/homepage/public", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var homepage models.HomepageSettings
	suite.decode(w, &homepage)
	suite.Require().NotNil(homepage.FeaturedStory)
	suite.Equal(uint(3), *homepage.FeaturedStory)
	suite.Equal(8, homepage.ArticlesPerSection)
}

func (suite *IntegrationTestSuite) TestMediaRegistry() {
	w := suite.doJSON("POST", "/api/media", models.CreateMediaRequest{
		Filename: "hero.jpg",
		URL:      "https://cdn.example.com/hero.jpg",
		Size:     2048,
		MimeType: "image/jpeg",
	}, suite.token)
	suite.Equal(http.StatusCreated, w.Code)

	var item models.MediaItem
	suite.decode(w, &item)
	suite.NotZero(item.ID)

	w = suite.doJSON("GET", "/api/media", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	var items []models.MediaItem
	suite.decode(w, &items)
	suite.Len(items, 1)

	w = suite.doJSON("DELETE", "/api/media/1", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	w = suite.doJSON("DELETE", "/api/media/1", nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestDashboardStats() {
	suite.createArticle(models.CreateArticleRequest{Title: "Published", Status: models.StatusPublished})
	suite.createArticle(models.CreateArticleRequest{Title: "Draft"})

	w := suite.doJSON("GET", "/api/dashboard/stats", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var stats models.DashboardStats
	suite.decode(w, &stats)
	suite.Equal(int64(2), stats.TotalArticles)
	suite.Equal(int64(1), stats.PublishedArticles)
	suite.Equal(int64(1), stats.Drafts)
}

func (suite *IntegrationTestSuite) TestInvalidIDPaths() {
	w := suite.doJSON("GET", "/api/articles/abc", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON("GET", "/api/articles/9999", nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.decode(w, &resp)
	suite.Equal("Article not found", resp["message"])
}
