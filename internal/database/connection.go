package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens a database connection and makes sure the schema exists
func Connect(driver, dsn string) (*sqlx.DB, error) {
	if driver == "sqlite3" && dsn != ":memory:" {
		// Create the data directory if it doesn't exist
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %v", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if driver == "sqlite3" {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	// Key uniqueness is checked at creation time, not by the schema: the
	// import pipeline relies on duplicate inserts being its decision to
	// skip rather than a constraint violation.
	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			language TEXT DEFAULT '',
			role_id INTEGER NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, idColumn),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS apps (
			id %s,
			name TEXT NOT NULL,
			url TEXT DEFAULT '',
			description TEXT DEFAULT '',
			usage_count INTEGER DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_by INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, idColumn),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			id %s,
			key TEXT NOT NULL,
			description TEXT DEFAULT '',
			translation_count INTEGER DEFAULT 0,
			is_translated BOOLEAN DEFAULT false,
			translation_tr TEXT DEFAULT '',
			translation_en TEXT DEFAULT '',
			translation_az TEXT DEFAULT '',
			translation_cn TEXT DEFAULT '',
			translation_fr TEXT DEFAULT '',
			translation_gr TEXT DEFAULT '',
			translation_it TEXT DEFAULT '',
			translation_kz TEXT DEFAULT '',
			translation_ru TEXT DEFAULT '',
			translation_sp TEXT DEFAULT '',
			translation_tk TEXT DEFAULT '',
			created_by INTEGER DEFAULT 0,
			updated_by INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, idColumn),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS tags (
			id %s,
			word_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			url_name TEXT NOT NULL,
			created_by INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (word_id) REFERENCES words(id)
		)`, idColumn),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}

	return nil
}
