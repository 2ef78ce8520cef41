package models

import "time"

const MaxEntryFieldLength = 1000

// Entry is a user's journal record for a single day.
type Entry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_entries_user_date" json:"userId"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_entries_user_date" json:"date"`
	Gratitude     string    `gorm:"not null" json:"gratitude"`
	Manifestation string    `gorm:"not null" json:"manifestation"`
	Reflection    string    `gorm:"not null" json:"reflection"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
