package repositories

import (
	"gorm.io/gorm"

	"newsroom-cms/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetList(status models.CommentStatus) ([]models.Comment, error)
	Approve(id uint) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetList returns comments newest first, joined with the owning article's
// title, optionally filtered by status.
func (r *commentRepository) GetList(status models.CommentStatus) ([]models.Comment, error) {
	query := r.db.Model(&models.Comment{}).
		Select("comments.*, articles.title AS article_title").
		Joins("LEFT JOIN articles ON comments.article_id = articles.id")

	if status != "" {
		query = query.Where("comments.status = ?", status)
	}

	var comments []models.Comment
	err := query.Order("comments.created_at DESC").Scan(&comments).Error
	return comments, err
}

func (r *commentRepository) Approve(id uint) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).
		Update("status", models.CommentApproved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
