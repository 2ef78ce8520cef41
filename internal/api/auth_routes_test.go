package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/terraincognita07/joydairy/internal/security"
)

func TestRegisterReturnsTokenAndRejectsDuplicateEmail(t *testing.T) {
	env := newAPITestApp(t)

	response := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Ada",
		"email":    "Ada@Example.com ",
		"password": "secret1",
	})
	assertStatus(t, response, http.StatusCreated)

	var created authResponse
	decodeJSON(t, response.Body, &created)
	if created.Token == "" {
		t.Fatal("expected token in register response")
	}
	if created.User.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", created.User.Email)
	}

	duplicate := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Ada Again",
		"email":    "ADA@example.com",
		"password": "secret1",
	})
	assertStatus(t, duplicate, http.StatusBadRequest)
	if message := readAPIError(t, duplicate.Body); message != "user already exists" {
		t.Fatalf("expected duplicate user error, got %q", message)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	env := newAPITestApp(t)

	response := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "12345",
	})
	assertStatus(t, response, http.StatusBadRequest)

	payload := map[string]string{}
	decodeJSON(t, response.Body, &payload)
	if payload["field"] != "password" {
		t.Fatalf("expected password field error, got %#v", payload)
	}
}

func TestLoginAndMeRoundTrip(t *testing.T) {
	env := newAPITestApp(t)
	createTestUser(t, env.database, "login@example.com", "secret1")

	response := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "LOGIN@example.com",
		"password": "secret1",
	})
	assertStatus(t, response, http.StatusOK)

	var session authResponse
	decodeJSON(t, response.Body, &session)

	me := doJSON(t, env.app, http.MethodGet, "/api/auth/me", session.Token, nil)
	assertStatus(t, me, http.StatusOK)

	payload := map[string]any{}
	decodeJSON(t, me.Body, &payload)
	if payload["email"] != "login@example.com" {
		t.Fatalf("expected current user email, got %#v", payload["email"])
	}
	if _, leaked := payload["passwordHash"]; leaked {
		t.Fatal("password hash must not be serialized")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newAPITestApp(t)
	createTestUser(t, env.database, "wrong@example.com", "secret1")

	response := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "wrong@example.com",
		"password": "not-it",
	})
	assertStatus(t, response, http.StatusUnauthorized)
	if message := readAPIError(t, response.Body); message != "invalid credentials" {
		t.Fatalf("expected invalid credentials, got %q", message)
	}
}

func TestLoginIsThrottledAfterRepeatedFailures(t *testing.T) {
	env := newAPITestApp(t)
	createTestUser(t, env.database, "throttle@example.com", "secret1")

	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		response := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "throttle@example.com",
			"password": "bad-password",
		})
		assertStatus(t, response, http.StatusUnauthorized)
	}

	response := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "throttle@example.com",
		"password": "secret1",
	})
	assertStatus(t, response, http.StatusTooManyRequests)
}

func TestProtectedRoutesRequireValidToken(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "guard@example.com", "secret1")

	missing := doJSON(t, env.app, http.MethodGet, "/api/entries", "", nil)
	assertStatus(t, missing, http.StatusUnauthorized)
	if message := readAPIError(t, missing.Body); message != "no token, authorization denied" {
		t.Fatalf("unexpected missing token message %q", message)
	}

	garbage := doJSON(t, env.app, http.MethodGet, "/api/entries", "not-a-token", nil)
	assertStatus(t, garbage, http.StatusUnauthorized)
	if message := readAPIError(t, garbage.Body); message != "token is not valid" {
		t.Fatalf("unexpected invalid token message %q", message)
	}

	foreign := security.NewTokenManager("another-secret-key-with-at-least-32-chars", time.Hour)
	forged, err := foreign.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue forged token: %v", err)
	}
	forgedResponse := doJSON(t, env.app, http.MethodGet, "/api/entries", forged, nil)
	assertStatus(t, forgedResponse, http.StatusUnauthorized)
}

func TestLegacyTokenHeaderIsAccepted(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "legacy@example.com", "secret1")
	token := issueTestToken(t, env, user)

	request := newRequest(t, http.MethodGet, "/api/auth/me")
	request.Header.Set(authTokenHeader, token)
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer response.Body.Close()
	assertStatus(t, response, http.StatusOK)
}

func TestTokenForDeletedUserIsRejected(t *testing.T) {
	env := newAPITestApp(t)
	user := createTestUser(t, env.database, "gone@example.com", "secret1")
	token := issueTestToken(t, env, user)

	if err := env.database.Exec("DELETE FROM users WHERE id = ?", user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	response := doJSON(t, env.app, http.MethodGet, "/api/auth/me", token, nil)
	assertStatus(t, response, http.StatusUnauthorized)
}
