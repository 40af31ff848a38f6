package repositories

import (
	"gorm.io/gorm"

	"newsroom-cms/models"
)

type MediaRepository interface {
	Create(item *models.MediaItem) error
	GetByID(id uint) (*models.MediaItem, error)
	GetAll() ([]models.MediaItem, error)
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) GetAll() ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *mediaRepository) Delete(id uint) error {
	res := r.db.Delete(&models.MediaItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
