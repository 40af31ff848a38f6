package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title                string        `json:"title" binding:"required,min=1"`
	Excerpt              string        `json:"excerpt"`
	Body                 string        `json:"body"`
	FeaturedImage        string        `json:"featured_image"`
	CategoryID           *uint         `json:"category_id"`
	Tags                 []uint        `json:"tags"`
	MetaTitle            string        `json:"meta_title"`
	MetaDescription      string        `json:"meta_description"`
	Status               ArticleStatus `json:"status"`
	ScheduledPublishDate string        `json:"scheduled_publish_date"`
}

// UpdateArticleRequest carries the full field group; every listed column is
// overwritten with what the request says. An empty status keeps the current
// one.
type UpdateArticleRequest struct {
	Title                string        `json:"title"`
	Excerpt              string        `json:"excerpt"`
	Body                 string        `json:"body"`
	FeaturedImage        string        `json:"featured_image"`
	CategoryID           *uint         `json:"category_id"`
	Tags                 []uint        `json:"tags"`
	MetaTitle            string        `json:"meta_title"`
	MetaDescription      string        `json:"meta_description"`
	Status               ArticleStatus `json:"status"`
	ScheduledPublishDate string        `json:"scheduled_publish_date"`
}

type ArticleListParams struct {
	Status   string `form:"status"`
	Category uint   `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ArticleListResponse struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug"`
}

type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type CreateMediaRequest struct {
	Filename string `json:"filename" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type HomepageSettings struct {
	FeaturedStory      *uint  `json:"featured_story"`
	TrendingArticles   []uint `json:"trending_articles"`
	CategoryOrder      []uint `json:"category_order"`
	ArticlesPerSection int    `json:"articles_per_section"`
}

type DashboardStats struct {
	TotalArticles     int64     `json:"total_articles"`
	PublishedArticles int64     `json:"published_articles"`
	Drafts            int64     `json:"drafts"`
	CategoriesCount   int64     `json:"categories_count"`
	TotalViews        int64     `json:"total_views"`
	TrendingArticles  []Article `json:"trending_articles"`
	RecentArticles    []Article `json:"recent_articles"`
}
