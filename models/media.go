package models

import "time"

// MediaItem records metadata about an uploaded asset. The bytes themselves
// live wherever the URL points; this service only tracks the registry.
type MediaItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Filename  string    `json:"filename" gorm:"not null"`
	URL       string    `json:"url" gorm:"type:text"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (MediaItem) TableName() string {
	return "media"
}
