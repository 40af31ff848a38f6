package services

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (uint, error)
	GetCategory(id uint) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) error
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	articleRepo  repositories.ArticleRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, articleRepo repositories.ArticleRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
	}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (uint, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrCategoryExists
		}
		return 0, err
	}

	return category.ID, nil
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	category.Name = req.Name
	category.Slug = req.Slug
	if category.Slug == "" {
		category.Slug = slugify(req.Name)
	}
	category.Description = req.Description

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryExists
		}
		return err
	}
	return nil
}

// DeleteCategory refuses to remove a category still referenced by any
// article.
func (s *categoryService) DeleteCategory(id uint) error {
	count, err := s.articleRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
