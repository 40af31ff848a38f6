package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"newsroom-cms/models"
)

type ArticleRepository interface {
	Create(article *models.Article, tagIDs []uint) error
	GetByID(id uint) (*models.Article, error)
	GetPublishedByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	Update(id uint, article *models.Article, tagIDs []uint) error
	Delete(id uint) error
	Publish(id uint) error
	IncrementViews(id uint) error
	ReplaceTags(articleID uint, tagIDs []uint) error
	Trending(limit int) ([]models.Article, error)
	Related(excludeID uint, categoryID *uint, limit int) ([]models.Article, error)
	CountByCategory(categoryID uint) (int64, error)
	Count() (int64, error)
	CountByStatus(status models.ArticleStatus) (int64, error)
	TotalViews() (int64, error)
	Recent(limit int) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(article).Error; err != nil {
			return err
		}
		return replaceTags(tx, article.ID, tagIDs)
	})
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Tags").Preload("Author").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetPublishedByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Where("status = ?", models.StatusPublished).
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Category").Preload("Tags")

	if isPublic {
		query = query.Where("status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Category > 0 {
		query = query.Where("category_id = ?", params.Category)
	}

	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?)", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.
		Order("COALESCE(published_at, created_at) DESC, created_at DESC").
		Offset(offset).Limit(params.Limit).
		Find(&articles).Error

	return articles, total, err
}

// Update overwrites the full field group and replaces the tag set in one
// transaction. The status column keeps its current value when the request
// leaves it empty, and published_at is assigned in the same statement the
// first time the effective status reaches published, so two concurrent
// updates cannot set it twice.
func (r *articleRepository) Update(id uint, article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		status := string(article.Status)

		res := tx.Model(&models.Article{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":                  article.Title,
			"excerpt":                article.Excerpt,
			"body":                   article.Body,
			"featured_image":         article.FeaturedImage,
			"category_id":            article.CategoryID,
			"meta_title":             article.MetaTitle,
			"meta_description":       article.MetaDescription,
			"scheduled_publish_date": article.ScheduledPublishDate,
			"status":                 gorm.Expr("COALESCE(NULLIF(?, ''), status)", status),
			"published_at": gorm.Expr(
				"CASE WHEN published_at IS NULL AND COALESCE(NULLIF(?, ''), status) = 'published' THEN ? ELSE published_at END",
				status, now,
			),
			"updated_at": now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return replaceTags(tx, id, tagIDs)
	})
}

// Delete removes the tag links, the comments, then the article row, in that
// order.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Publish forces the article to published and stamps published_at with the
// current time, even when it was already published.
func (r *articleRepository) Publish(id uint) error {
	now := time.Now().UTC()
	res := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       models.StatusPublished,
		"published_at": now,
		"updated_at":   now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// ReplaceTags swaps the complete association set for an article.
func (r *articleRepository) ReplaceTags(articleID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceTags(tx, articleID, tagIDs)
	})
}

func replaceTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(tagIDs))
	rows := make([]models.ArticleTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, models.ArticleTag{ArticleID: articleID, TagID: tagID})
	}

	return tx.Create(&rows).Error
}

func (r *articleRepository) Trending(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Where("status = ?", models.StatusPublished).
		Order("views DESC, published_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Related(excludeID uint, categoryID *uint, limit int) ([]models.Article, error) {
	query := r.db.Preload("Category").Preload("Tags").
		Where("status = ?", models.StatusPublished).
		Where("id <> ?", excludeID)

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var articles []models.Article
	err := query.Order("views DESC, published_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByStatus(status models.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *articleRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

func (r *articleRepository) Recent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}
