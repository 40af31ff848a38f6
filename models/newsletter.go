package models

import "time"

type NewsletterSubscriber struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}
