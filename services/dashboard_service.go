package services

import (
	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type DashboardService interface {
	GetStats() (*models.DashboardStats, error)
}

type dashboardService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
}

func NewDashboardService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository) DashboardService {
	return &dashboardService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *dashboardService) GetStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalArticles, err = s.articleRepo.Count(); err != nil {
		return nil, err
	}
	if stats.PublishedArticles, err = s.articleRepo.CountByStatus(models.StatusPublished); err != nil {
		return nil, err
	}
	if stats.Drafts, err = s.articleRepo.CountByStatus(models.StatusDraft); err != nil {
		return nil, err
	}
	if stats.CategoriesCount, err = s.categoryRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = s.articleRepo.TotalViews(); err != nil {
		return nil, err
	}
	if stats.TrendingArticles, err = s.articleRepo.Trending(5); err != nil {
		return nil, err
	}
	if stats.RecentArticles, err = s.articleRepo.Recent(10); err != nil {
		return nil, err
	}

	return stats, nil
}
