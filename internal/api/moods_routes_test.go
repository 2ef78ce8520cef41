package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/joydairy/internal/models"
	"github.com/terraincognita07/joydairy/internal/services"
)

func moodBody(date string, mood string, score int) map[string]any {
	return map[string]any{
		"date":      date,
		"mood":      mood,
		"moodScore": score,
		"intensity": 6,
		"emotions":  []string{"Calm", "grateful", "calm"},
		"triggers":  []string{" work ", ""},
	}
}

func TestUpsertMoodRejectsScoreMismatch(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "mismatch@example.com", "secret1")
	token := issueTestToken(t, env, user)

	response := doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-03-10", models.MoodGood, 2))
	assertStatus(t, response, http.StatusBadRequest)

	payload := map[string]string{}
	decodeJSON(t, response.Body, &payload)
	if payload["field"] != "moodScore" {
		t.Fatalf("expected moodScore field error, got %#v", payload)
	}
}

func TestUpsertMoodDefaultsToTodayAndNormalizesLists(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "mood-today@example.com", "secret1")
	token := issueTestToken(t, env, user)

	body := moodBody("", models.MoodExcellent, 5)
	delete(body, "date")
	response := doJSON(t, env.app, http.MethodPost, "/api/moods", token, body)
	assertStatus(t, response, http.StatusCreated)

	var mood models.MoodEntry
	decodeJSON(t, response.Body, &mood)
	if got := mood.Date.UTC().Format("2006-01-02"); got != "2026-03-14" {
		t.Fatalf("expected mood dated today, got %s", got)
	}
	if len(mood.Emotions) != 2 || mood.Emotions[0] != "calm" {
		t.Fatalf("expected deduplicated lowercase emotions, got %#v", mood.Emotions)
	}
	if len(mood.Triggers) != 1 || mood.Triggers[0] != "work" {
		t.Fatalf("expected trimmed triggers, got %#v", mood.Triggers)
	}

	update := doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-03-14", models.MoodLow, 2))
	assertStatus(t, update, http.StatusOK)
}

func TestGetMoodsPaginatesWithinRange(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "mood-pages@example.com", "secret1")
	token := issueTestToken(t, env, user)

	for day := 1; day <= 5; day++ {
		date := fmt.Sprintf("2026-03-%02d", day)
		assertStatus(t, doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody(date, models.MoodNeutral, 3)), http.StatusCreated)
	}

	response := doJSON(t, env.app, http.MethodGet, "/api/moods?page=2&limit=2&startDate=2026-03-01&endDate=2026-03-04", token, nil)
	assertStatus(t, response, http.StatusOK)

	var page services.MoodPage
	decodeJSON(t, response.Body, &page)
	if page.Total != 4 || page.TotalPages != 2 || page.CurrentPage != 2 {
		t.Fatalf("unexpected page metadata %+v", page)
	}
	if len(page.Moods) != 2 {
		t.Fatalf("expected 2 moods on page 2, got %d", len(page.Moods))
	}
	if got := page.Moods[0].Date.UTC().Format("2006-01-02"); got != "2026-03-02" {
		t.Fatalf("expected newest-first ordering on page 2, got %s", got)
	}

	invalid := doJSON(t, env.app, http.MethodGet, "/api/moods?startDate=yesterday", token, nil)
	assertStatus(t, invalid, http.StatusBadRequest)
}

func TestMoodTrendsAggregatesPeriod(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "trends@example.com", "secret1")
	token := issueTestToken(t, env, user)

	assertStatus(t, doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-03-12", models.MoodGood, 4)), http.StatusCreated)
	assertStatus(t, doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-03-13", models.MoodLow, 2)), http.StatusCreated)
	assertStatus(t, doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-01-01", models.MoodTerrible, 1)), http.StatusCreated)

	response := doJSON(t, env.app, http.MethodGet, "/api/moods/analytics/trends?period=7", token, nil)
	assertStatus(t, response, http.StatusOK)

	var trends services.MoodTrends
	decodeJSON(t, response.Body, &trends)
	if trends.TotalEntries != 2 {
		t.Fatalf("expected 2 entries in window, got %d", trends.TotalEntries)
	}
	if trends.AverageMood != 3 {
		t.Fatalf("expected average mood 3, got %v", trends.AverageMood)
	}
	if trends.MoodDistribution[models.MoodGood] != 1 || trends.MoodDistribution[models.MoodExcellent] != 0 {
		t.Fatalf("unexpected distribution %#v", trends.MoodDistribution)
	}
	if trends.CommonEmotions["calm"] != 2 {
		t.Fatalf("expected calm counted twice, got %#v", trends.CommonEmotions)
	}

	invalid := doJSON(t, env.app, http.MethodGet, "/api/moods/analytics/trends?period=0", token, nil)
	assertStatus(t, invalid, http.StatusBadRequest)
}

func TestGetAndDeleteMoodByDate(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "mood-delete@example.com", "secret1")
	token := issueTestToken(t, env, user)

	assertStatus(t, doJSON(t, env.app, http.MethodPost, "/api/moods", token, moodBody("2026-03-09", models.MoodGood, 4)), http.StatusCreated)

	assertStatus(t, doJSON(t, env.app, http.MethodGet, "/api/moods/2026-03-09", token, nil), http.StatusOK)
	assertStatus(t, doJSON(t, env.app, http.MethodDelete, "/api/moods/2026-03-09", token, nil), http.StatusOK)

	missing := doJSON(t, env.app, http.MethodGet, "/api/moods/2026-03-09", token, nil)
	assertStatus(t, missing, http.StatusNotFound)
	if message := readAPIError(t, missing.Body); message != "mood entry not found" {
		t.Fatalf("expected mood not found, got %q", message)
	}
}
