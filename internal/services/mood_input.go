package services

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/joydairy/internal/models"
)

const (
	MinMoodIntensity = 1
	MaxMoodIntensity = 10
	MinWellnessLevel = 1
	MaxWellnessLevel = 10
)

type MoodInput struct {
	Mood         string
	MoodScore    int
	Intensity    int
	Emotions     []string
	Triggers     []string
	Notes        string
	EnergyLevel  *int
	StressLevel  *int
	SleepQuality *int
	TimeOfDay    string
}

func NormalizeMoodInput(input MoodInput) (MoodInput, error) {
	input.Mood = strings.TrimSpace(input.Mood)
	expectedScore, ok := models.MoodScore(input.Mood)
	if !ok {
		return input, newValidationError("mood", "mood must be one of %s", strings.Join(models.MoodLabels, ", "))
	}
	if input.MoodScore < 1 || input.MoodScore > 5 {
		return input, newValidationError("moodScore", "moodScore must be between 1 and 5")
	}
	if input.MoodScore != expectedScore {
		return input, newValidationError("moodScore", "moodScore %d does not match mood %q (expected %d)", input.MoodScore, input.Mood, expectedScore)
	}
	if input.Intensity < MinMoodIntensity || input.Intensity > MaxMoodIntensity {
		return input, newValidationError("intensity", "intensity must be between %d and %d", MinMoodIntensity, MaxMoodIntensity)
	}

	emotions := make([]string, 0, len(input.Emotions))
	for _, raw := range input.Emotions {
		emotion := strings.ToLower(strings.TrimSpace(raw))
		if !slices.Contains(models.Emotions, emotion) {
			return input, newValidationError("emotions", "unknown emotion %q", raw)
		}
		if !slices.Contains(emotions, emotion) {
			emotions = append(emotions, emotion)
		}
	}
	input.Emotions = emotions

	triggers := make([]string, 0, len(input.Triggers))
	for _, raw := range input.Triggers {
		trigger := strings.TrimSpace(raw)
		if trigger == "" {
			continue
		}
		if utf8.RuneCountInString(trigger) > models.MaxMoodTriggerLength {
			return input, newValidationError("triggers", "each trigger must be at most %d characters", models.MaxMoodTriggerLength)
		}
		triggers = append(triggers, trigger)
	}
	input.Triggers = triggers

	input.Notes = strings.TrimSpace(input.Notes)
	if utf8.RuneCountInString(input.Notes) > models.MaxMoodNotesLength {
		return input, newValidationError("notes", "notes must be at most %d characters", models.MaxMoodNotesLength)
	}

	levels := []struct {
		field string
		value *int
	}{
		{field: "energyLevel", value: input.EnergyLevel},
		{field: "stressLevel", value: input.StressLevel},
		{field: "sleepQuality", value: input.SleepQuality},
	}
	for _, level := range levels {
		if level.value == nil {
			continue
		}
		if *level.value < MinWellnessLevel || *level.value > MaxWellnessLevel {
			return input, newValidationError(level.field, "%s must be between %d and %d", level.field, MinWellnessLevel, MaxWellnessLevel)
		}
	}

	input.TimeOfDay = strings.ToLower(strings.TrimSpace(input.TimeOfDay))
	if input.TimeOfDay != "" && !slices.Contains(models.TimesOfDay, input.TimeOfDay) {
		return input, newValidationError("timeOfDay", "timeOfDay must be one of %s", strings.Join(models.TimesOfDay, ", "))
	}

	return input, nil
}
