package db

import (
	"github.com/terraincognita07/joydairy/internal/models"
	"gorm.io/gorm"
)

type AffirmationRepository struct {
	database *gorm.DB
}

func NewAffirmationRepository(database *gorm.DB) *AffirmationRepository {
	return &AffirmationRepository{database: database}
}

func (repo *AffirmationRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Affirmation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AffirmationRepository) CreateBatch(affirmations []models.Affirmation) error {
	if len(affirmations) == 0 {
		return nil
	}
	return repo.database.CreateInBatches(affirmations, 50).Error
}

func (repo *AffirmationRepository) ListActiveIDs() ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.Affirmation{}).
		Where("is_active = ?", true).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *AffirmationRepository) FindByID(affirmationID uint) (models.Affirmation, error) {
	var affirmation models.Affirmation
	if err := repo.database.First(&affirmation, affirmationID).Error; err != nil {
		return models.Affirmation{}, err
	}
	return affirmation, nil
}

func (repo *AffirmationRepository) DistinctActiveCategories() ([]string, error) {
	categories := make([]string, 0)
	if err := repo.database.Model(&models.Affirmation{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
