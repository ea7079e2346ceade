package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"moodlog/db"
	"moodlog/insight"
	"moodlog/models"
	"moodlog/tips"

	"github.com/go-chi/chi/v5"
)

var router *chi.Mux
var accessToken string

const (
	testUserName     = "integration"
	testUserPassword = "integration123"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "moodlog-integration-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("DSN", filepath.Join(dir, "test.db"))
	os.Setenv("JWT_SECRET", "integration-secret")

	db.ConnectDB()
	router = newRouter()

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

func doJSON(t *testing.T, method, target string, payload any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRegisterAndLogin(t *testing.T) {
	rr := doJSON(t, "POST", "/api/register", map[string]string{
		"name": testUserName, "password": testUserPassword,
	}, false)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register returned status %d", rr.Code)
	}

	// registering the same name again must conflict
	rr = doJSON(t, "POST", "/api/register", map[string]string{
		"name": testUserName, "password": "different",
	}, false)
	if rr.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate name, got %d", rr.Code)
	}

	rr = doJSON(t, "POST", "/api/login", map[string]string{
		"name": testUserName, "password": testUserPassword,
	}, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("login returned status %d", rr.Code)
	}
	var resp struct {
		UserID int    `json:"user_id"`
		Name   string `json:"name"`
		Token  string `json:"token"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatal("login response missing token")
	}
	if resp.UserID == 0 || resp.Name != testUserName {
		t.Errorf("Unexpected login identity: %+v", resp)
	}
	accessToken = resp.Token

	rr = doJSON(t, "POST", "/api/login", map[string]string{
		"name": testUserName, "password": "wrongpassword",
	}, false)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong password, got %d", rr.Code)
	}

	rr = doJSON(t, "POST", "/api/login", map[string]string{
		"name": "bob", "password": "whatever",
	}, false)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown user, got %d", rr.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	rr := doJSON(t, "GET", "/api/journals", nil, false)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rr.Code)
	}
}

func TestMoodAndInsightsFlow(t *testing.T) {
	if accessToken == "" {
		t.Skip("login flow did not run")
	}

	// fresh user: no data anywhere
	rr := doJSON(t, "GET", "/api/mood-data-check?timespan=7d", nil, true)
	var check map[string]bool
	json.Unmarshal(rr.Body.Bytes(), &check)
	if check["has_enough_data"] {
		t.Error("Expected has_enough_data false with no entries")
	}

	rr = doJSON(t, "GET", "/api/mood-chart?timespan=7d", nil, true)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 chart with no entries, got %d", rr.Code)
	}

	rr = doJSON(t, "POST", "/api/mood-entry", map[string]any{
		"mood_score": 9, "notes": "Selected mood: Happy",
	}, true)
	if rr.Code != http.StatusCreated {
		t.Fatalf("mood entry returned status %d", rr.Code)
	}

	rr = doJSON(t, "POST", "/api/mood-entry", map[string]any{"mood_score": 4}, true)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for score outside the scale, got %d", rr.Code)
	}

	// a single day of data is still below the trend threshold
	rr = doJSON(t, "GET", "/api/mood-data-check?timespan=7d", nil, true)
	json.Unmarshal(rr.Body.Bytes(), &check)
	if check["has_enough_data"] {
		t.Error("Expected has_enough_data false with a single distinct day")
	}

	rr = doJSON(t, "GET", "/api/today-moods", nil, true)
	var todays []models.MoodEntry
	json.Unmarshal(rr.Body.Bytes(), &todays)
	if len(todays) != 1 {
		t.Errorf("Expected one mood entry today, got %d", len(todays))
	}

	// fewer than three entries: fixed message
	rr = doJSON(t, "GET", "/api/recommendation", nil, true)
	var rec map[string]string
	json.Unmarshal(rr.Body.Bytes(), &rec)
	if rec["recommendation"] != insight.KeepLoggingMessage {
		t.Errorf("Expected keep-logging message, got %q", rec["recommendation"])
	}

	// with a day of data the chart renders
	rr = doJSON(t, "GET", "/api/mood-chart?timespan=7d", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 chart, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("Chart body is not a PNG")
	}
}

func TestJournalFlow(t *testing.T) {
	if accessToken == "" {
		t.Skip("login flow did not run")
	}

	rr := doJSON(t, "POST", "/api/journal-entry", map[string]string{
		"content": "Integration test entry",
	}, true)
	if rr.Code != http.StatusCreated {
		t.Fatalf("journal entry returned status %d", rr.Code)
	}

	rr = doJSON(t, "GET", "/api/journals", nil, true)
	var entries []models.JournalEntry
	json.Unmarshal(rr.Body.Bytes(), &entries)
	if len(entries) != 1 || entries[0].Content != "Integration test entry" {
		t.Fatalf("Expected the new entry in the list, got %+v", entries)
	}

	rr = doJSON(t, "DELETE", fmt.Sprintf("/api/journal/%d", entries[0].ID), nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete returned status %d", rr.Code)
	}

	rr = doJSON(t, "GET", "/api/journals", nil, true)
	entries = nil
	json.Unmarshal(rr.Body.Bytes(), &entries)
	if len(entries) != 0 {
		t.Errorf("Expected empty list after delete, got %+v", entries)
	}

	rr = doJSON(t, "DELETE", fmt.Sprintf("/api/journal/%d", 99999), nil, true)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 deleting a missing entry, got %d", rr.Code)
	}
}

func TestActivityDatesAndCalendar(t *testing.T) {
	if accessToken == "" {
		t.Skip("login flow did not run")
	}

	rr := doJSON(t, "GET", "/api/activity-dates", nil, true)
	var dates map[string][]string
	json.Unmarshal(rr.Body.Bytes(), &dates)
	if len(dates["dates"]) == 0 {
		t.Error("Expected at least one activity date after logging a mood")
	}

	rr = doJSON(t, "GET", "/api/calendar?year=2026&month=8", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("calendar returned status %d", rr.Code)
	}
	var cal struct {
		Cells []json.RawMessage `json:"cells"`
	}
	json.Unmarshal(rr.Body.Bytes(), &cal)
	if len(cal.Cells) != 35 && len(cal.Cells) != 42 {
		t.Errorf("Expected 35 or 42 cells, got %d", len(cal.Cells))
	}
}

func TestWellnessTipFallback(t *testing.T) {
	if accessToken == "" {
		t.Skip("login flow did not run")
	}

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	stub.Close() // force the connection error path

	old := tips.QuoteURL
	tips.QuoteURL = stub.URL
	defer func() { tips.QuoteURL = old }()

	rr := doJSON(t, "GET", "/api/wellness-tip", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("wellness tip returned status %d", rr.Code)
	}
	var tip tips.Tip
	json.Unmarshal(rr.Body.Bytes(), &tip)
	if tip.Quote != tips.FallbackQuote || tip.Author != tips.FallbackAuthor {
		t.Errorf("Expected fallback tip, got %+v", tip)
	}
}
