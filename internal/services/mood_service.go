package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/models"
)

const (
	DefaultMoodPageLimit = 30
	MaxPageLimit         = 100
)

type MoodRepository interface {
	ListPageByUser(userID uint, query db.MoodListQuery) ([]models.MoodEntry, int64, error)
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error)
	Create(mood *models.MoodEntry) error
	Save(mood *models.MoodEntry) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
}

type MoodListParams struct {
	Page      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
}

type MoodPage struct {
	Moods       []models.MoodEntry `json:"moods"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Total       int64              `json:"total"`
}

type MoodService struct {
	moods MoodRepository
}

func NewMoodService(moods MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

func normalizePage(page int, limit int, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func (service *MoodService) List(userID uint, params MoodListParams) (MoodPage, error) {
	page, limit := normalizePage(params.Page, params.Limit, DefaultMoodPageLimit)

	query := db.MoodListQuery{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if params.StartDate != nil {
		query.From = CalendarDay(*params.StartDate)
	}
	if params.EndDate != nil {
		_, query.To = DayRange(*params.EndDate)
	}
	if !query.From.IsZero() && !query.To.IsZero() && !query.From.Before(query.To) {
		return MoodPage{}, newValidationError("startDate", "startDate must not be after endDate")
	}

	moods, total, err := service.moods.ListPageByUser(userID, query)
	if err != nil {
		return MoodPage{}, fmt.Errorf("list moods: %w", err)
	}
	return MoodPage{
		Moods:       moods,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (service *MoodService) GetByDate(userID uint, day time.Time) (models.MoodEntry, error) {
	dayStart, dayEnd := DayRange(day)
	mood, found, err := service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("load mood: %w", err)
	}
	if !found {
		return models.MoodEntry{}, ErrMoodNotFound
	}
	return mood, nil
}

// Upsert writes the mood record for the day and reports whether it was newly created.
func (service *MoodService) Upsert(userID uint, day time.Time, input MoodInput, now time.Time) (models.MoodEntry, bool, error) {
	normalized, err := NormalizeMoodInput(input)
	if err != nil {
		return models.MoodEntry{}, false, err
	}

	dayStart, dayEnd := DayRange(day)
	mood, found, err := service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, false, fmt.Errorf("load mood: %w", err)
	}

	if found {
		applyMoodInput(&mood, normalized)
		mood.UpdatedAt = stampUpdatedAt(mood.UpdatedAt, now)
		if err := service.moods.Save(&mood); err != nil {
			return models.MoodEntry{}, false, fmt.Errorf("update mood: %w", err)
		}
		return mood, false, nil
	}

	stamped := stampUpdatedAt(time.Time{}, now)
	mood = models.MoodEntry{
		UserID:    userID,
		Date:      dayStart,
		CreatedAt: stamped,
		UpdatedAt: stamped,
	}
	applyMoodInput(&mood, normalized)
	if err := service.moods.Create(&mood); err != nil {
		if db.IsDuplicateKey(err) {
			return models.MoodEntry{}, false, ErrMoodExists
		}
		return models.MoodEntry{}, false, fmt.Errorf("create mood: %w", err)
	}
	return mood, true, nil
}

func applyMoodInput(mood *models.MoodEntry, input MoodInput) {
	mood.Mood = input.Mood
	mood.MoodScore = input.MoodScore
	mood.Intensity = input.Intensity
	mood.Emotions = input.Emotions
	mood.Triggers = input.Triggers
	mood.Notes = input.Notes
	mood.EnergyLevel = input.EnergyLevel
	mood.StressLevel = input.StressLevel
	mood.SleepQuality = input.SleepQuality
	mood.TimeOfDay = input.TimeOfDay
}

func (service *MoodService) Delete(userID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day)
	deleted, err := service.moods.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("delete mood: %w", err)
	}
	if deleted == 0 {
		return ErrMoodNotFound
	}
	return nil
}
