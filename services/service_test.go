package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}))
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.ArticleTag{},
		&models.Comment{},
		&models.MediaItem{},
		&models.NewsletterSubscriber{},
		&models.Setting{},
	))

	return db
}

func newArticleService(t *testing.T) (ArticleService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewArticleService(repositories.NewArticleRepository(db)), db
}
