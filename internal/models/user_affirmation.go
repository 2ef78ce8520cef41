package models

import "time"

const MaxPersonalizedTextLength = 500

// UserAffirmation is the assignment of one catalog affirmation to a user for a day.
type UserAffirmation struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	UserID           uint        `gorm:"not null;uniqueIndex:uidx_user_affirmations_user_date" json:"userId"`
	AffirmationID    uint        `gorm:"not null;index" json:"affirmationId"`
	Affirmation      Affirmation `gorm:"foreignKey:AffirmationID" json:"affirmation"`
	Date             time.Time   `gorm:"type:date;not null;uniqueIndex:uidx_user_affirmations_user_date" json:"date"`
	IsCompleted      bool        `gorm:"not null;default:false" json:"isCompleted"`
	CompletedAt      *time.Time  `json:"completedAt,omitempty"`
	PersonalizedText string      `json:"personalizedText,omitempty"`
	Rating           *int        `json:"rating,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
}
