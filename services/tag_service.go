package services

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (uint, error)
	GetTag(id uint) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	UpdateTag(id uint, req models.UpdateTagRequest) error
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (uint, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	tag := &models.Tag{
		Name: req.Name,
		Slug: slug,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrTagExists
		}
		return 0, err
	}

	return tag.ID, nil
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) UpdateTag(id uint, req models.UpdateTagRequest) error {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	tag.Name = req.Name
	tag.Slug = req.Slug
	if tag.Slug == "" {
		tag.Slug = slugify(req.Name)
	}

	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTagExists
		}
		return err
	}
	return nil
}

func (s *tagService) DeleteTag(id uint) error {
	if err := s.tagRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}
