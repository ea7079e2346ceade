package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"moodlog/models"
	"moodlog/store"
)

func AddMood(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	var req struct {
		MoodScore int    `json:"mood_score"`
		Notes     string `json:"notes"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	// the five-point scale is enforced here so nothing unmapped ever
	// reaches the label/icon lookups downstream
	if !models.ValidMoodScore(req.MoodScore) {
		http.Error(w, "mood_score must be one of 1, 3, 5, 7 or 9", http.StatusBadRequest)
		return
	}

	if err := store.AddMoodEntry(userID, req.MoodScore, req.Notes); err != nil {
		http.Error(w, "Could not save mood entry", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Mood entry added successfully"})
}

func TodayMoods(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	entries, err := store.MoodEntriesSince(userID, midnight)
	if err != nil {
		http.Error(w, "Could not load mood entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	json.NewEncoder(w).Encode(entries)
}
