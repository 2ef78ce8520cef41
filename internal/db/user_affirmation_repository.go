package db

import (
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
	"gorm.io/gorm"
)

type UserAffirmationRepository struct {
	database *gorm.DB
}

func NewUserAffirmationRepository(database *gorm.DB) *UserAffirmationRepository {
	return &UserAffirmationRepository{database: database}
}

func (repo *UserAffirmationRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.UserAffirmation, bool, error) {
	assignments := make([]models.UserAffirmation, 0, 1)
	if err := repo.database.
		Preload("Affirmation").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&assignments).Error; err != nil {
		return models.UserAffirmation{}, false, err
	}
	if len(assignments) == 0 {
		return models.UserAffirmation{}, false, nil
	}
	return assignments[0], true, nil
}

// Create and Save never touch the catalog row the assignment points at.
func (repo *UserAffirmationRepository) Create(assignment *models.UserAffirmation) error {
	return repo.database.Omit("Affirmation").Create(assignment).Error
}

func (repo *UserAffirmationRepository) Save(assignment *models.UserAffirmation) error {
	return repo.database.Omit("Affirmation").Save(assignment).Error
}

func (repo *UserAffirmationRepository) ListPageByUser(userID uint, offset int, limit int) ([]models.UserAffirmation, int64, error) {
	var total int64
	if err := repo.database.Model(&models.UserAffirmation{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	assignments := make([]models.UserAffirmation, 0)
	if err := repo.database.
		Preload("Affirmation").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&assignments).Error; err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

func (repo *UserAffirmationRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.UserAffirmation, error) {
	assignments := make([]models.UserAffirmation, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
