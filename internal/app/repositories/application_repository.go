package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/velandev/website/internal/app/models"
)

// ApplicationRepository handles database operations for job applications.
// The applications table is an append-only log: the core exposes no read,
// update, or delete surface.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and returns its assigned identifier.
// JobID is written as given, including nil; existence of the referenced
// job is deliberately not checked at write time.
func (r *ApplicationRepository) Create(ctx context.Context, fields models.ApplicationFields) (int64, error) {
	query := `
		INSERT INTO applications (job_id, full_name, email, phone, portfolio, resume_url, cover_letter)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		fields.JobID,
		fields.FullName,
		fields.Email,
		nullIfEmpty(fields.Phone),
		nullIfEmpty(fields.Portfolio),
		nullIfEmpty(fields.ResumeURL),
		fields.CoverLetter,
	)
	if err != nil {
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new application id: %w", err)
	}

	return id, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
