package models

import "time"

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
)

type Comment struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	ArticleID   uint          `json:"article_id" gorm:"not null"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail string        `json:"author_email"`
	Body        string        `json:"body" gorm:"type:text"`
	Status      CommentStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt   time.Time     `json:"created_at"`

	// Populated by the list query's join, not a real column.
	ArticleTitle string `json:"article_title" gorm:"->;-:migration"`
}
