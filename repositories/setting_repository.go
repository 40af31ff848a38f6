package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsroom-cms/models"
)

type SettingRepository interface {
	GetAll() ([]models.Setting, error)
	GetByKeys(keys []string) ([]models.Setting, error)
	Get(key string) (*models.Setting, error)
	Upsert(key, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) GetByKeys(keys []string) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Where("setting_key IN ?", keys).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts the key or overwrites its value when it already exists.
func (r *settingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
}
