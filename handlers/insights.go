package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"moodlog/chart"
	"moodlog/insight"
	"moodlog/models"
	"moodlog/store"
	"moodlog/tips"
)

// windowDays maps the timespan query parameter to a lookback in days.
func windowDays(timespan string) (int, bool) {
	switch timespan {
	case "7d":
		return 7, true
	case "30d":
		return 30, true
	}
	return 0, false
}

// moodEntriesInWindow applies the cutoff arithmetic shared by every
// insight endpoint: entries exactly at now-minus-window are included.
func moodEntriesInWindow(userID, days int) ([]models.MoodEntry, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	return store.MoodEntriesSince(userID, since)
}

func MoodDataCheck(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	days, ok := windowDays(r.URL.Query().Get("timespan"))
	if !ok {
		json.NewEncoder(w).Encode(map[string]bool{"has_enough_data": false})
		return
	}

	entries, err := moodEntriesInWindow(userID, days)
	if err != nil {
		http.Error(w, "Could not load mood entries", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{
		"has_enough_data": insight.HasEnoughTrendData(entries),
	})
}

func GetRecommendation(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	entries, err := moodEntriesInWindow(userID, 7)
	if err != nil {
		http.Error(w, "Could not load mood entries", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{
		"recommendation": insight.Recommendation(entries),
	})
}

func MoodChart(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	// anything other than an explicit 7d falls back to the 30-day view
	days := 30
	if r.URL.Query().Get("timespan") == "7d" {
		days = 7
	}

	entries, err := moodEntriesInWindow(userID, days)
	if err != nil {
		http.Error(w, "Could not load mood entries", http.StatusInternalServerError)
		return
	}
	if len(entries) == 0 {
		http.Error(w, "Not enough mood data for this period.", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := chart.Render(w, insight.DailyAverages(entries), days); err != nil {
		// headers are already written, all we can do is log
		log.Printf("mood chart render error: %v\n", err)
	}
}

func WellnessTip(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(tips.Fetch())
}
