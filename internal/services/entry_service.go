package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/models"
)

type EntryRepository interface {
	ListByUser(userID uint) ([]models.Entry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Entry, bool, error)
	Create(entry *models.Entry) error
	Save(entry *models.Entry) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
}

type EntryService struct {
	entries EntryRepository
}

func NewEntryService(entries EntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

func (service *EntryService) List(userID uint) ([]models.Entry, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (service *EntryService) GetByDate(userID uint, day time.Time) (models.Entry, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.Entry{}, fmt.Errorf("load entry: %w", err)
	}
	if !found {
		return models.Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

// Upsert writes the entry for the day and reports whether it was newly created.
func (service *EntryService) Upsert(userID uint, day time.Time, input EntryInput, now time.Time) (models.Entry, bool, error) {
	normalized, err := NormalizeEntryInput(input)
	if err != nil {
		return models.Entry{}, false, err
	}

	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.Entry{}, false, fmt.Errorf("load entry: %w", err)
	}

	if found {
		entry.Gratitude = normalized.Gratitude
		entry.Manifestation = normalized.Manifestation
		entry.Reflection = normalized.Reflection
		entry.UpdatedAt = stampUpdatedAt(entry.UpdatedAt, now)
		if err := service.entries.Save(&entry); err != nil {
			return models.Entry{}, false, fmt.Errorf("update entry: %w", err)
		}
		return entry, false, nil
	}

	stamped := stampUpdatedAt(time.Time{}, now)
	entry = models.Entry{
		UserID:        userID,
		Date:          dayStart,
		Gratitude:     normalized.Gratitude,
		Manifestation: normalized.Manifestation,
		Reflection:    normalized.Reflection,
		CreatedAt:     stamped,
		UpdatedAt:     stamped,
	}
	if err := service.entries.Create(&entry); err != nil {
		if db.IsDuplicateKey(err) {
			return models.Entry{}, false, ErrEntryExists
		}
		return models.Entry{}, false, fmt.Errorf("create entry: %w", err)
	}
	return entry, true, nil
}

func (service *EntryService) Delete(userID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day)
	deleted, err := service.entries.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}
	return nil
}
