package models

import "time"

type User struct {
	ID           int       `json:"user_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MoodEntry records a single mood check-in. Date carries the full
// timestamp; a user may log several moods on the same day.
type MoodEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	MoodScore int       `json:"mood_score"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"date"`
}

// JournalEntry is day-granular: Date is a plain YYYY-MM-DD string.
type JournalEntry struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// MoodLabels is the fixed five-point scale. Scores outside this map are
// rejected at the input boundary.
var MoodLabels = map[int]string{
	1: "Angry",
	3: "Sad",
	5: "Neutral",
	7: "Content",
	9: "Happy",
}

func ValidMoodScore(score int) bool {
	_, ok := MoodLabels[score]
	return ok
}
