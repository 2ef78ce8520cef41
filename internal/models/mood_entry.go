package models

import "time"

const (
	MoodExcellent = "excellent"
	MoodGood      = "good"
	MoodNeutral   = "neutral"
	MoodLow       = "low"
	MoodTerrible  = "terrible"
)

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
	TimeOfDayNight     = "night"
)

const (
	MaxMoodNotesLength   = 1000
	MaxMoodTriggerLength = 100
)

// MoodLabels lists mood labels from best to worst.
var MoodLabels = []string{MoodExcellent, MoodGood, MoodNeutral, MoodLow, MoodTerrible}

var moodScores = map[string]int{
	MoodExcellent: 5,
	MoodGood:      4,
	MoodNeutral:   3,
	MoodLow:       2,
	MoodTerrible:  1,
}

// MoodScore returns the score a mood label corresponds to.
func MoodScore(mood string) (int, bool) {
	score, ok := moodScores[mood]
	return score, ok
}

var Emotions = []string{
	"happy", "sad", "angry", "anxious", "excited", "calm", "stressed",
	"peaceful", "frustrated", "grateful", "worried", "confident",
	"lonely", "loved", "motivated", "tired", "energetic", "hopeful",
	"disappointed", "proud", "overwhelmed", "relaxed", "curious",
	"inspired", "content", "restless", "focused", "scattered",
}

var TimesOfDay = []string{TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight}

type MoodEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_mood_entries_user_date" json:"userId"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_entries_user_date" json:"date"`
	Mood         string    `gorm:"not null" json:"mood"`
	MoodScore    int       `gorm:"not null" json:"moodScore"`
	Emotions     []string  `gorm:"serializer:json" json:"emotions"`
	Intensity    int       `gorm:"not null" json:"intensity"`
	Triggers     []string  `gorm:"serializer:json" json:"triggers"`
	Notes        string    `json:"notes"`
	EnergyLevel  *int      `json:"energyLevel,omitempty"`
	StressLevel  *int      `json:"stressLevel,omitempty"`
	SleepQuality *int      `json:"sleepQuality,omitempty"`
	TimeOfDay    string    `json:"timeOfDay,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
