package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moodlog/calendar"
	"moodlog/models"
	"moodlog/store"

	"github.com/go-chi/chi/v5"
)

func AddJournal(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	var req struct {
		Content string `json:"content"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "Journal entry is empty.", http.StatusBadRequest)
		return
	}

	if err := store.AddJournalEntry(userID, req.Content); err != nil {
		http.Error(w, "Could not save journal entry", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Journal entry added successfully"})
}

func ListJournals(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	entries, err := store.ListJournalEntries(userID)
	if err != nil {
		http.Error(w, "Could not load journal entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	json.NewEncoder(w).Encode(entries)
}

func DeleteJournal(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	entryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || entryID <= 0 {
		http.Error(w, "Invalid entry id", http.StatusBadRequest)
		return
	}

	deleted, err := store.DeleteJournalEntry(userID, entryID)
	if err != nil {
		http.Error(w, "Could not delete journal entry", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		http.Error(w, "Journal entry not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Journal entry deleted successfully"})
}

func ActivityDates(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	dates, err := store.ActivityDates(userID)
	if err != nil {
		http.Error(w, "Could not load activity dates", http.StatusInternalServerError)
		return
	}
	if dates == nil {
		dates = []string{}
	}
	json.NewEncoder(w).Encode(map[string][]string{"dates": dates})
}

// Calendar binds the month-grid view model to HTTP: the client passes the
// month it is looking at and gets back the laid-out cells.
func Calendar(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
	month, monthErr := strconv.Atoi(r.URL.Query().Get("month"))
	if yearErr != nil || monthErr != nil {
		http.Error(w, "year and month query parameters are required", http.StatusBadRequest)
		return
	}

	dates, err := store.ActivityDates(userID)
	if err != nil {
		http.Error(w, "Could not load activity dates", http.StatusInternalServerError)
		return
	}
	active := make(map[string]bool, len(dates))
	for _, d := range dates {
		active[d] = true
	}

	cells, err := calendar.MonthGrid(year, month, active, time.Now().UTC())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"year":     year,
		"month":    month,
		"weekdays": calendar.Weekdays,
		"cells":    cells,
	})
}
