// Package store is the persistence layer for users, mood entries and
// journal entries. Mood timestamps are stored as RFC3339 UTC strings so
// that SQL string comparison orders them chronologically; journal dates
// are day-granular YYYY-MM-DD strings.
package store

import (
	"database/sql"
	"errors"
	"time"

	"moodlog/db"
	"moodlog/models"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNameTaken = errors.New("user name already taken")
	ErrNotFound  = errors.New("not found")
)

const (
	timeLayout = time.RFC3339
	dayLayout  = "2006-01-02"
)

func CreateUser(name, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	res, err := db.DB.Exec(
		"INSERT INTO users (name, password_hash, created_at) VALUES (?, ?, ?)",
		name, passwordHash, now.Format(timeLayout))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: int(id), Name: name, PasswordHash: passwordHash, CreatedAt: now}, nil
}

func FindUserByName(name string) (*models.User, error) {
	var user models.User
	var createdAt string
	err := db.DB.QueryRow(
		"SELECT user_id, name, password_hash, created_at FROM users WHERE name = ?", name).
		Scan(&user.ID, &user.Name, &user.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return &user, nil
}

func AddMoodEntry(userID, score int, notes string) error {
	_, err := db.DB.Exec(
		"INSERT INTO mood_entries (user_id, mood_score, notes, date) VALUES (?, ?, ?, ?)",
		userID, score, notes, time.Now().UTC().Format(timeLayout))
	return err
}

func AddJournalEntry(userID int, content string) error {
	_, err := db.DB.Exec(
		"INSERT INTO journal_entries (user_id, content, date) VALUES (?, ?, ?)",
		userID, content, time.Now().UTC().Format(dayLayout))
	return err
}

// DeleteJournalEntry removes the entry only if it belongs to userID and
// reports how many rows were deleted.
func DeleteJournalEntry(userID, entryID int) (int64, error) {
	res, err := db.DB.Exec(
		"DELETE FROM journal_entries WHERE id = ? AND user_id = ?", entryID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func ListJournalEntries(userID int) ([]models.JournalEntry, error) {
	rows, err := db.DB.Query(
		"SELECT id, user_id, content, date FROM journal_entries WHERE user_id = ? ORDER BY date DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Content, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// MoodEntriesSince returns mood entries at or after the cutoff, oldest
// first. The cutoff comparison is inclusive.
func MoodEntriesSince(userID int, since time.Time) ([]models.MoodEntry, error) {
	rows, err := db.DB.Query(
		"SELECT id, user_id, mood_score, notes, date FROM mood_entries WHERE user_id = ? AND date >= ? ORDER BY date ASC",
		userID, since.UTC().Format(timeLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var entry models.MoodEntry
		var date string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.MoodScore, &entry.Notes, &date); err != nil {
			return nil, err
		}
		entry.Date, err = time.Parse(timeLayout, date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ActivityDates returns every day on which the user has at least one
// mood or journal entry. UNION deduplicates across the two tables.
func ActivityDates(userID int) ([]string, error) {
	rows, err := db.DB.Query(`
		SELECT SUBSTR(date, 1, 10) AS activity_date FROM mood_entries WHERE user_id = ?
		UNION
		SELECT date AS activity_date FROM journal_entries WHERE user_id = ?`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}
