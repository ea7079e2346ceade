package db

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func ConnectDB() {
	var err error
	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "wellness.db"
	}
	DB, err = sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		log.Fatal("DB connection error:", err)
	}

	usersTable := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT
	);`

	moodTable := `
	CREATE TABLE IF NOT EXISTS mood_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		mood_score INTEGER NOT NULL,
		notes TEXT,
		date TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	);`

	journalTable := `
	CREATE TABLE IF NOT EXISTS journal_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		date TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	);`

	_, err = DB.Exec(usersTable)
	if err != nil {
		log.Fatal("Error creating users table:", err)
	}

	_, err = DB.Exec(moodTable)
	if err != nil {
		log.Fatal("Error creating mood_entries table:", err)
	}

	_, err = DB.Exec(journalTable)
	if err != nil {
		log.Fatal("Error creating journal_entries table:", err)
	}
}
