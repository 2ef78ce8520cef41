package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/models"
)

const DefaultHistoryPageLimit = 10

type AffirmationCatalogRepository interface {
	Count() (int64, error)
	CreateBatch(affirmations []models.Affirmation) error
	ListActiveIDs() ([]uint, error)
	FindByID(affirmationID uint) (models.Affirmation, error)
	DistinctActiveCategories() ([]string, error)
}

type UserAffirmationRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.UserAffirmation, bool, error)
	Create(assignment *models.UserAffirmation) error
	Save(assignment *models.UserAffirmation) error
	ListPageByUser(userID uint, offset int, limit int) ([]models.UserAffirmation, int64, error)
}

type CompleteAffirmationInput struct {
	Rating           *int
	PersonalizedText *string
}

type AffirmationHistoryPage struct {
	Affirmations []models.UserAffirmation `json:"affirmations"`
	TotalPages   int                      `json:"totalPages"`
	CurrentPage  int                      `json:"currentPage"`
	Total        int64                    `json:"total"`
}

type AffirmationService struct {
	catalog     AffirmationCatalogRepository
	assignments UserAffirmationRepository
	pick        func(n int) int
}

func NewAffirmationService(catalog AffirmationCatalogRepository, assignments UserAffirmationRepository) *AffirmationService {
	return &AffirmationService{
		catalog:     catalog,
		assignments: assignments,
		pick:        rand.IntN,
	}
}

// GetDaily returns today's assignment, drawing one uniformly from the active
// catalog on the first call of the day.
func (service *AffirmationService) GetDaily(userID uint, now time.Time, location *time.Location) (models.UserAffirmation, error) {
	dayStart, dayEnd := DayRange(DateAtLocation(now, location))
	assignment, found, err := service.assignments.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.UserAffirmation{}, fmt.Errorf("load daily affirmation: %w", err)
	}
	if found {
		return assignment, nil
	}

	activeIDs, err := service.catalog.ListActiveIDs()
	if err != nil {
		return models.UserAffirmation{}, fmt.Errorf("list active affirmations: %w", err)
	}
	if len(activeIDs) == 0 {
		return models.UserAffirmation{}, ErrNoAffirmations
	}

	affirmation, err := service.catalog.FindByID(activeIDs[service.pick(len(activeIDs))])
	if err != nil {
		return models.UserAffirmation{}, fmt.Errorf("load affirmation: %w", err)
	}

	assignment = models.UserAffirmation{
		UserID:        userID,
		AffirmationID: affirmation.ID,
		Date:          dayStart,
		IsCompleted:   false,
		CreatedAt:     now.UTC(),
	}
	if err := service.assignments.Create(&assignment); err != nil {
		if !db.IsDuplicateKey(err) {
			return models.UserAffirmation{}, fmt.Errorf("create daily affirmation: %w", err)
		}
		winner, found, reloadErr := service.assignments.FindByUserAndDayRange(userID, dayStart, dayEnd)
		if reloadErr != nil {
			return models.UserAffirmation{}, fmt.Errorf("reload daily affirmation: %w", reloadErr)
		}
		if !found {
			return models.UserAffirmation{}, fmt.Errorf("%w: daily affirmation vanished after concurrent create", ErrConflict)
		}
		return winner, nil
	}
	assignment.Affirmation = affirmation
	return assignment, nil
}

func NormalizeCompleteAffirmationInput(input CompleteAffirmationInput) (CompleteAffirmationInput, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return input, newValidationError("rating", "rating must be between 1 and 5")
	}
	if input.PersonalizedText != nil {
		text := strings.TrimSpace(*input.PersonalizedText)
		if utf8.RuneCountInString(text) > models.MaxPersonalizedTextLength {
			return input, newValidationError("personalizedText", "personalizedText must be at most %d characters", models.MaxPersonalizedTextLength)
		}
		input.PersonalizedText = &text
	}
	return input, nil
}

func (service *AffirmationService) Complete(userID uint, input CompleteAffirmationInput, now time.Time, location *time.Location) (models.UserAffirmation, error) {
	normalized, err := NormalizeCompleteAffirmationInput(input)
	if err != nil {
		return models.UserAffirmation{}, err
	}

	dayStart, dayEnd := DayRange(DateAtLocation(now, location))
	assignment, found, err := service.assignments.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.UserAffirmation{}, fmt.Errorf("load daily affirmation: %w", err)
	}
	if !found {
		return models.UserAffirmation{}, ErrDailyAffirmationMissing
	}
	if assignment.IsCompleted {
		return models.UserAffirmation{}, ErrAffirmationCompleted
	}

	completedAt := now.UTC()
	assignment.IsCompleted = true
	assignment.CompletedAt = &completedAt
	if normalized.Rating != nil {
		assignment.Rating = normalized.Rating
	}
	if normalized.PersonalizedText != nil {
		assignment.PersonalizedText = *normalized.PersonalizedText
	}
	if err := service.assignments.Save(&assignment); err != nil {
		return models.UserAffirmation{}, fmt.Errorf("complete daily affirmation: %w", err)
	}
	return assignment, nil
}

func (service *AffirmationService) History(userID uint, page int, limit int) (AffirmationHistoryPage, error) {
	page, limit = normalizePage(page, limit, DefaultHistoryPageLimit)
	assignments, total, err := service.assignments.ListPageByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return AffirmationHistoryPage{}, fmt.Errorf("list affirmation history: %w", err)
	}
	return AffirmationHistoryPage{
		Affirmations: assignments,
		TotalPages:   totalPages(total, limit),
		CurrentPage:  page,
		Total:        total,
	}, nil
}

func (service *AffirmationService) Categories() ([]string, error) {
	categories, err := service.catalog.DistinctActiveCategories()
	if err != nil {
		return nil, fmt.Errorf("list affirmation categories: %w", err)
	}
	return categories, nil
}

// SeedCatalog loads the built-in affirmations into an empty catalog and
// returns how many rows it inserted.
func (service *AffirmationService) SeedCatalog(now time.Time) (int, error) {
	count, err := service.catalog.Count()
	if err != nil {
		return 0, fmt.Errorf("count affirmations: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	builtins := models.DefaultAffirmations()
	affirmations := make([]models.Affirmation, 0, len(builtins))
	for _, builtin := range builtins {
		affirmations = append(affirmations, models.Affirmation{
			Text:      builtin.Text,
			Category:  builtin.Category,
			Tags:      builtin.Tags,
			IsActive:  true,
			CreatedAt: now.UTC(),
		})
	}
	if err := service.catalog.CreateBatch(affirmations); err != nil {
		return 0, fmt.Errorf("seed affirmations: %w", err)
	}
	return len(affirmations), nil
}
