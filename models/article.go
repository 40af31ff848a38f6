package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s ArticleStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Article struct {
	ID                   uint          `json:"id" gorm:"primarykey"`
	Title                string        `json:"title" gorm:"not null"`
	Excerpt              string        `json:"excerpt"`
	Body                 string        `json:"body" gorm:"type:text"`
	FeaturedImage        string        `json:"featured_image" gorm:"type:text"`
	CategoryID           *uint         `json:"category_id"`
	Category             *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	MetaTitle            string        `json:"meta_title"`
	MetaDescription      string        `json:"meta_description"`
	Status               ArticleStatus `json:"status" gorm:"default:'draft'"`
	ScheduledPublishDate *time.Time    `json:"scheduled_publish_date"`
	PublishedAt          *time.Time    `json:"published_at"`
	Views                int64         `json:"views" gorm:"default:0"`
	AuthorID             uint          `json:"author_id"`
	Author               *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags                 []Tag         `json:"tags" gorm:"many2many:article_tags;"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// ArticleTag is the join row between an article and a tag. The set for an
// article is replaced wholesale on every create/update, never diffed.
type ArticleTag struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey"`
	TagID     uint `json:"tag_id" gorm:"primaryKey"`
}
