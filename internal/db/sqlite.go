package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/velandev/website/internal/config"
)

// SQLiteDB wraps the process-wide database handle. It is opened once at
// startup and closed during graceful shutdown.
type SQLiteDB struct {
	DB *sql.DB
}

// NewSQLiteDB opens the SQLite database file, creating the parent
// directory if needed, and applies the schema.
func NewSQLiteDB(cfg *config.Config) (*SQLiteDB, error) {
	dir := filepath.Dir(cfg.Database.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Foreign keys stay unenforced (the SQLite default): applications may
	// reference a job id that no longer exists, or never did. Clearing the
	// reference when a job is deleted happens explicitly in the job store.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.Database.Path)
	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if err := Migrate(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteDB{DB: database}, nil
}

// Migrate creates the tables if they do not exist
func Migrate(ctx context.Context, database *sql.DB) error {
	_, err := database.ExecContext(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	department TEXT NOT NULL,
	location TEXT NOT NULL,
	type TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	-- weak reference: written as given, cleared by the job store on delete
	job_id INTEGER,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	portfolio TEXT,
	resume_url TEXT,
	cover_letter TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Close closes the database handle
func (d *SQLiteDB) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
