package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	internal_id TEXT UNIQUE,
	email TEXT,
	stripe_customer_id TEXT UNIQUE,
	created_at TIMESTAMP
);
CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stripe_pid TEXT,
	customer_id TEXT,
	amount INTEGER,
	currency TEXT,
	status TEXT,
	created_at TIMESTAMP
);
`

// InitDB opens the file-backed store and creates the schema if absent.
func InitDB(path string) (*sql.DB, error) {
	var err error
	db, err = sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// InitDatabase initializes database with error handling
func InitDatabase(path string) *sql.DB {
	db, err := InitDB(path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return db
}
