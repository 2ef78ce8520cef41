package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
)

type CalendarDayState struct {
	Date                 string `json:"date"`
	Day                  int    `json:"day"`
	IsToday              bool   `json:"isToday"`
	HasEntry             bool   `json:"hasEntry"`
	HasMood              bool   `json:"hasMood"`
	Mood                 string `json:"mood,omitempty"`
	AffirmationCompleted bool   `json:"affirmationCompleted"`
}

type CalendarMonth struct {
	Month string             `json:"month"`
	Days  []CalendarDayState `json:"days"`
}

type CalendarEntryReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.Entry, error)
}

type CalendarMoodReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error)
}

type CalendarAffirmationReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.UserAffirmation, error)
}

type CalendarService struct {
	entries      CalendarEntryReader
	moods        CalendarMoodReader
	affirmations CalendarAffirmationReader
}

func NewCalendarService(entries CalendarEntryReader, moods CalendarMoodReader, affirmations CalendarAffirmationReader) *CalendarService {
	return &CalendarService{
		entries:      entries,
		moods:        moods,
		affirmations: affirmations,
	}
}

// MonthOverview reports per-day markers for the month that contains monthStart.
func (service *CalendarService) MonthOverview(userID uint, monthStart time.Time, now time.Time, location *time.Location) (CalendarMonth, error) {
	first := CalendarDay(monthStart)
	first = first.AddDate(0, 0, 1-first.Day())
	next := first.AddDate(0, 1, 0)

	entries, err := service.entries.ListByUserRange(userID, first, next)
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("load calendar entries: %w", err)
	}
	moods, err := service.moods.ListByUserRange(userID, first, next)
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("load calendar moods: %w", err)
	}
	assignments, err := service.affirmations.ListByUserRange(userID, first, next)
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("load calendar affirmations: %w", err)
	}

	return CalendarMonth{
		Month: first.Format("2006-01"),
		Days:  BuildCalendarDayStates(first, entries, moods, assignments, now, location),
	}, nil
}

func BuildCalendarDayStates(monthStart time.Time, entries []models.Entry, moods []models.MoodEntry, assignments []models.UserAffirmation, now time.Time, location *time.Location) []CalendarDayState {
	hasEntry := make(map[string]bool, len(entries))
	for _, entry := range entries {
		hasEntry[CalendarDay(entry.Date).Format(DayLayout)] = true
	}

	moodByDate := make(map[string]models.MoodEntry, len(moods))
	for _, mood := range moods {
		key := CalendarDay(mood.Date).Format(DayLayout)
		existing, exists := moodByDate[key]
		if !exists || mood.ID > existing.ID {
			moodByDate[key] = mood
		}
	}

	completed := make(map[string]bool, len(assignments))
	for _, assignment := range assignments {
		key := CalendarDay(assignment.Date).Format(DayLayout)
		completed[key] = completed[key] || assignment.IsCompleted
	}

	todayKey := DateAtLocation(now, location).Format(DayLayout)
	monthEnd := monthStart.AddDate(0, 1, 0)

	days := make([]CalendarDayState, 0, 31)
	for day := monthStart; day.Before(monthEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		mood, moodFound := moodByDate[key]
		days = append(days, CalendarDayState{
			Date:                 key,
			Day:                  day.Day(),
			IsToday:              key == todayKey,
			HasEntry:             hasEntry[key],
			HasMood:              moodFound,
			Mood:                 mood.Mood,
			AffirmationCompleted: completed[key],
		})
	}
	return days
}
