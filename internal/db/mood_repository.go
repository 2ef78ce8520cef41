package db

import (
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
	"gorm.io/gorm"
)

// MoodListQuery bounds a paginated mood listing. Zero From/To leave that side open.
type MoodListQuery struct {
	From   time.Time
	To     time.Time
	Offset int
	Limit  int
}

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) ListPageByUser(userID uint, query MoodListQuery) ([]models.MoodEntry, int64, error) {
	scoped := func() *gorm.DB {
		statement := repo.database.Model(&models.MoodEntry{}).Where("user_id = ?", userID)
		if !query.From.IsZero() {
			statement = statement.Where("date >= ?", query.From)
		}
		if !query.To.IsZero() {
			statement = statement.Where("date < ?", query.To)
		}
		return statement
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	moods := make([]models.MoodEntry, 0)
	if err := scoped().
		Order("date DESC, id DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&moods).Error; err != nil {
		return nil, 0, err
	}
	return moods, total, nil
}

func (repo *MoodRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error) {
	moods := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}

func (repo *MoodRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	moods := make([]models.MoodEntry, 0, 1)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&moods).Error; err != nil {
		return models.MoodEntry{}, false, err
	}
	if len(moods) == 0 {
		return models.MoodEntry{}, false, nil
	}
	return moods[0], true, nil
}

func (repo *MoodRepository) Create(mood *models.MoodEntry) error {
	return repo.database.Create(mood).Error
}

func (repo *MoodRepository) Save(mood *models.MoodEntry) error {
	return repo.database.Save(mood).Error
}

func (repo *MoodRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.MoodEntry{})
	return result.RowsAffected, result.Error
}
