package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/models"
	"github.com/terraincognita07/joydairy/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-with-at-least-32-characters"

var testNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
}

func newAPITestApp(t *testing.T) testEnv {
	t.Helper()
	return newAPITestAppInLocation(t, time.UTC)
}

func newAPITestAppInLocation(t *testing.T, location *time.Location) testEnv {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "joydairy-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	tokens := security.NewTokenManager(testSecretKey, time.Hour)
	handler := NewHandler(database, tokens, Options{
		Location: location,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Version:  "test",
	})
	handler.now = func() time.Time { return testNow }

	if _, err := handler.AffirmationService().SeedCatalog(testNow); err != nil {
		t.Fatalf("seed affirmations: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Use(requestid.New())
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	return testEnv{app: app, database: database, handler: handler}
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Name:         "Test User",
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		CreatedAt:    testNow,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func issueTestToken(t *testing.T, env testEnv, user models.User) string {
	t.Helper()

	token, err := env.handler.tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method string, target string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(raw))
	}
}

func newRequest(t *testing.T, method string, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, target, nil)
}
