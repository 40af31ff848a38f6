package services

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-cms/metrics"
	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type NewsletterService interface {
	// Subscribe adds the email to the list. The returned flag is false when
	// the address was already subscribed.
	Subscribe(email string) (created bool, err error)
	Unsubscribe(email string) error
	GetSubscribers() ([]models.NewsletterSubscriber, error)
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepo: newsletterRepo}
}

func (s *newsletterService) Subscribe(email string) (bool, error) {
	_, err := s.newsletterRepo.GetByEmail(email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	subscriber := &models.NewsletterSubscriber{Email: email}
	if err := s.newsletterRepo.Subscribe(subscriber); err != nil {
		// A concurrent subscribe for the same address can still hit the
		// unique index; treat it like the lookup race it is.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	metrics.NewsletterSignupsTotal.Inc()
	return true, nil
}

func (s *newsletterService) Unsubscribe(email string) error {
	return s.newsletterRepo.Unsubscribe(email)
}

func (s *newsletterService) GetSubscribers() ([]models.NewsletterSubscriber, error) {
	return s.newsletterRepo.GetAll()
}
