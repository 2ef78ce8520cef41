package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthAndIndex(t *testing.T) {
	env := newAPITestApp(t)

	health := doJSON(t, env.app, http.MethodGet, "/healthz", "", nil)
	assertStatus(t, health, http.StatusOK)
	payload := map[string]any{}
	decodeJSON(t, health.Body, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("expected ok status, got %#v", payload)
	}

	index := doJSON(t, env.app, http.MethodGet, "/", "", nil)
	assertStatus(t, index, http.StatusOK)
	banner := map[string]any{}
	decodeJSON(t, index.Body, &banner)
	if banner["version"] != "test" {
		t.Fatalf("expected version in banner, got %#v", banner)
	}
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	env := newAPITestApp(t)

	response := doJSON(t, env.app, http.MethodGet, "/api/nope", "", nil)
	assertStatus(t, response, http.StatusNotFound)
	if message := readAPIError(t, response.Body); message != "route not found" {
		t.Fatalf("expected route not found, got %q", message)
	}
}

func TestMalformedJSONBodyIsRejected(t *testing.T) {
	env := newAPITestApp(t)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":`))
	request.Header.Set("Content-Type", "application/json")
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	assertStatus(t, response, http.StatusBadRequest)
	if message := readAPIError(t, response.Body); message != "invalid input" {
		t.Fatalf("expected invalid input, got %q", message)
	}
}
