package services

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type MediaService interface {
	RegisterMedia(req models.CreateMediaRequest) (*models.MediaItem, error)
	GetMedia() ([]models.MediaItem, error)
	DeleteMedia(id uint) error
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
}

func NewMediaService(mediaRepo repositories.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

// RegisterMedia records the metadata for an asset that already lives at the
// given URL. The service never touches the bytes themselves.
func (s *mediaService) RegisterMedia(req models.CreateMediaRequest) (*models.MediaItem, error) {
	item := &models.MediaItem{
		Filename: req.Filename,
		URL:      req.URL,
		Size:     req.Size,
		MimeType: req.MimeType,
	}

	if err := s.mediaRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *mediaService) GetMedia() ([]models.MediaItem, error) {
	return s.mediaRepo.GetAll()
}

func (s *mediaService) DeleteMedia(id uint) error {
	if err := s.mediaRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return nil
}
