package repositories

import (
	"gorm.io/gorm"

	"newsroom-cms/models"
)

type NewsletterRepository interface {
	Subscribe(subscriber *models.NewsletterSubscriber) error
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	GetAll() ([]models.NewsletterSubscriber, error)
	Unsubscribe(email string) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Subscribe(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *newsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *newsletterRepository) GetAll() ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	err := r.db.Order("subscribed_at DESC").Find(&subscribers).Error
	return subscribers, err
}

func (r *newsletterRepository) Unsubscribe(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.NewsletterSubscriber{}).Error
}
