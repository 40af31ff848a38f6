package repositories

import (
	"gorm.io/gorm"

	"newsroom-cms/models"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetAll returns every tag with its usage count, name ascending.
func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}

	type tagCount struct {
		TagID uint
		Count int64
	}
	var counts []tagCount
	err := r.db.Model(&models.ArticleTag{}).
		Select("tag_id, COUNT(*) as count").
		Group("tag_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byID[c.TagID] = c.Count
	}
	for i := range tags {
		tags[i].ArticleCount = byID[tags[i].ID]
	}

	return tags, nil
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes the tag's article links first, then the tag itself.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
