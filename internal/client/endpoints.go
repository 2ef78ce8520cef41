package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
	"github.com/terraincognita07/joydairy/internal/services"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type EntryRequest struct {
	Date          string `json:"date"`
	Gratitude     string `json:"gratitude"`
	Manifestation string `json:"manifestation"`
	Reflection    string `json:"reflection"`
}

type MoodRequest struct {
	Date         string   `json:"date,omitempty"`
	Mood         string   `json:"mood"`
	MoodScore    int      `json:"moodScore"`
	Intensity    int      `json:"intensity"`
	Emotions     []string `json:"emotions,omitempty"`
	Triggers     []string `json:"triggers,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	EnergyLevel  *int     `json:"energyLevel,omitempty"`
	StressLevel  *int     `json:"stressLevel,omitempty"`
	SleepQuality *int     `json:"sleepQuality,omitempty"`
	TimeOfDay    string   `json:"timeOfDay,omitempty"`
}

type MoodQuery struct {
	Page      int
	Limit     int
	StartDate time.Time
	EndDate   time.Time
}

type CompleteAffirmationRequest struct {
	Rating           *int    `json:"rating,omitempty"`
	PersonalizedText *string `json:"personalizedText,omitempty"`
}

// Day formats a calendar day the way the API expects it in paths and queries.
func Day(value time.Time) string {
	return value.Format(services.DayLayout)
}

func (client *Client) Health(ctx context.Context) error {
	return client.do(ctx, http.MethodGet, "/healthz", nil, nil, nil)
}

func (client *Client) Register(ctx context.Context, request RegisterRequest) (AuthResponse, error) {
	var response AuthResponse
	err := client.do(ctx, http.MethodPost, "/api/auth/register", nil, request, &response)
	return response, err
}

func (client *Client) Login(ctx context.Context, email string, password string) (AuthResponse, error) {
	var response AuthResponse
	body := map[string]string{"email": email, "password": password}
	err := client.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &response)
	return response, err
}

func (client *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := client.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user)
	return user, err
}

func (client *Client) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	err := client.do(ctx, http.MethodGet, "/api/entries", nil, nil, &entries)
	return entries, err
}

func (client *Client) GetEntry(ctx context.Context, day time.Time) (models.Entry, error) {
	var entry models.Entry
	err := client.do(ctx, http.MethodGet, "/api/entries/"+Day(day), nil, nil, &entry)
	return entry, err
}

func (client *Client) SaveEntry(ctx context.Context, request EntryRequest) (models.Entry, error) {
	var entry models.Entry
	err := client.do(ctx, http.MethodPost, "/api/entries", nil, request, &entry)
	return entry, err
}

func (client *Client) DeleteEntry(ctx context.Context, day time.Time) error {
	return client.do(ctx, http.MethodDelete, "/api/entries/"+Day(day), nil, nil, nil)
}

func (client *Client) SaveMood(ctx context.Context, request MoodRequest) (models.MoodEntry, error) {
	var mood models.MoodEntry
	err := client.do(ctx, http.MethodPost, "/api/moods", nil, request, &mood)
	return mood, err
}

func (client *Client) ListMoods(ctx context.Context, query MoodQuery) (services.MoodPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if !query.StartDate.IsZero() {
		values.Set("startDate", Day(query.StartDate))
	}
	if !query.EndDate.IsZero() {
		values.Set("endDate", Day(query.EndDate))
	}

	var page services.MoodPage
	err := client.do(ctx, http.MethodGet, "/api/moods", values, nil, &page)
	return page, err
}

func (client *Client) MoodTrends(ctx context.Context, periodDays int) (services.MoodTrends, error) {
	values := url.Values{}
	if periodDays > 0 {
		values.Set("period", strconv.Itoa(periodDays))
	}

	var trends services.MoodTrends
	err := client.do(ctx, http.MethodGet, "/api/moods/analytics/trends", values, nil, &trends)
	return trends, err
}

func (client *Client) GetMood(ctx context.Context, day time.Time) (models.MoodEntry, error) {
	var mood models.MoodEntry
	err := client.do(ctx, http.MethodGet, "/api/moods/"+Day(day), nil, nil, &mood)
	return mood, err
}

func (client *Client) DeleteMood(ctx context.Context, day time.Time) error {
	return client.do(ctx, http.MethodDelete, "/api/moods/"+Day(day), nil, nil, nil)
}

func (client *Client) DailyAffirmation(ctx context.Context) (models.UserAffirmation, error) {
	var assignment models.UserAffirmation
	err := client.do(ctx, http.MethodGet, "/api/affirmations/daily", nil, nil, &assignment)
	return assignment, err
}

func (client *Client) CompleteAffirmation(ctx context.Context, request CompleteAffirmationRequest) (models.UserAffirmation, error) {
	var assignment models.UserAffirmation
	err := client.do(ctx, http.MethodPost, "/api/affirmations/complete", nil, request, &assignment)
	return assignment, err
}

func (client *Client) AffirmationHistory(ctx context.Context, page int, limit int) (services.AffirmationHistoryPage, error) {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var history services.AffirmationHistoryPage
	err := client.do(ctx, http.MethodGet, "/api/affirmations/history", values, nil, &history)
	return history, err
}

func (client *Client) AffirmationCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := client.do(ctx, http.MethodGet, "/api/affirmations/categories", nil, nil, &categories)
	return categories, err
}

func (client *Client) Calendar(ctx context.Context, month time.Time) (services.CalendarMonth, error) {
	values := url.Values{}
	if !month.IsZero() {
		values.Set("month", month.Format("2006-01"))
	}

	var overview services.CalendarMonth
	err := client.do(ctx, http.MethodGet, "/api/dashboard/calendar", values, nil, &overview)
	return overview, err
}
