package api

import (
	"log/slog"
	"time"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/security"
	"github.com/terraincognita07/joydairy/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	authService        *services.AuthService
	entryService       *services.EntryService
	moodService        *services.MoodService
	affirmationService *services.AffirmationService
	calendarService    *services.CalendarService
	tokens             *security.TokenManager
	location           *time.Location
	loginLimiter       *attemptLimiter
	logger             *slog.Logger
	version            string
	now                func() time.Time
}

type Options struct {
	Location *time.Location
	Logger   *slog.Logger
	Version  string
}

func NewHandler(database *gorm.DB, tokens *security.TokenManager, options Options) *Handler {
	repositories := db.NewRepositories(database)

	location := options.Location
	if location == nil {
		location = time.UTC
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:        services.NewAuthService(repositories.Users),
		entryService:       services.NewEntryService(repositories.Entries),
		moodService:        services.NewMoodService(repositories.Moods),
		affirmationService: services.NewAffirmationService(repositories.Affirmations, repositories.UserAffirmations),
		calendarService:    services.NewCalendarService(repositories.Entries, repositories.Moods, repositories.UserAffirmations),
		tokens:             tokens,
		location:           location,
		loginLimiter:       newAttemptLimiter(),
		logger:             logger,
		version:            options.Version,
		now:                time.Now,
	}
}

// AffirmationService exposes the catalog operations the CLI runs at startup.
func (handler *Handler) AffirmationService() *services.AffirmationService {
	return handler.affirmationService
}
