package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"newsroom-cms/logger"
	"newsroom-cms/metrics"
	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

const (
	maxPageSize = 100

	defaultTrendingLimit = 5
	maxTrendingLimit     = 20

	defaultRelatedLimit = 4
	maxRelatedLimit     = 10
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, authorID uint) (uint, error)
	GetArticle(id uint) (*models.Article, error)
	GetPublicArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest) error
	DeleteArticle(id uint) error
	PublishArticle(id uint) error
	Trending(limit int) ([]models.Article, error)
	Related(excludeID uint, categoryID *uint, limit int) ([]models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint) (uint, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatus(status) {
		return 0, ErrInvalidStatus
	}

	article := &models.Article{
		Title:                req.Title,
		Excerpt:              req.Excerpt,
		Body:                 req.Body,
		FeaturedImage:        req.FeaturedImage,
		CategoryID:           req.CategoryID,
		MetaTitle:            req.MetaTitle,
		MetaDescription:      req.MetaDescription,
		Status:               status,
		ScheduledPublishDate: normalizeScheduledDate(req.ScheduledPublishDate),
		AuthorID:             authorID,
	}

	if err := s.articleRepo.Create(article, req.Tags); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, ErrInvalidReference
		}
		return 0, err
	}

	return article.ID, nil
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

// GetPublicArticle returns a published article and bumps its view counter.
// The increment is fire-and-forget: a failed bump is logged, never surfaced.
func (s *articleService) GetPublicArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.articleRepo.IncrementViews(id); err != nil {
		logger.Error("failed to increment views", "article_id", id, "error", err)
	} else {
		metrics.ArticleViewsTotal.Inc()
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}

	return s.articleRepo.GetList(params, isPublic)
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest) error {
	if req.Status != "" && !models.ValidStatus(req.Status) {
		return ErrInvalidStatus
	}

	article := &models.Article{
		Title:                req.Title,
		Excerpt:              req.Excerpt,
		Body:                 req.Body,
		FeaturedImage:        req.FeaturedImage,
		CategoryID:           req.CategoryID,
		MetaTitle:            req.MetaTitle,
		MetaDescription:      req.MetaDescription,
		Status:               req.Status,
		ScheduledPublishDate: normalizeScheduledDate(req.ScheduledPublishDate),
	}

	if err := s.articleRepo.Update(id, article, req.Tags); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrArticleNotFound
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

func (s *articleService) DeleteArticle(id uint) error {
	if err := s.articleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

func (s *articleService) PublishArticle(id uint) error {
	if err := s.articleRepo.Publish(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	metrics.ArticlesPublishedTotal.Inc()
	return nil
}

func (s *articleService) Trending(limit int) ([]models.Article, error) {
	return s.articleRepo.Trending(clampLimit(limit, defaultTrendingLimit, maxTrendingLimit))
}

func (s *articleService) Related(excludeID uint, categoryID *uint, limit int) ([]models.Article, error) {
	return s.articleRepo.Related(excludeID, categoryID, clampLimit(limit, defaultRelatedLimit, maxRelatedLimit))
}

func clampLimit(limit, fallback, max int) int {
	if limit < 1 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

// normalizeScheduledDate parses a datetime string into a UTC wall-clock
// timestamp at second precision. Timezone-bearing input keeps its UTC
// components instead of shifting into server-local time. Unparseable input
// becomes nil, matching the column's nullability.
func normalizeScheduledDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			normalized := t.UTC().Truncate(time.Second)
			return &normalized
		}
	}

	return nil
}
