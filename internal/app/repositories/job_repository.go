package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velandev/website/internal/app/models"
	"github.com/velandev/website/internal/pkg/apperrors"
)

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create inserts a new job posting and returns the stored record with its
// assigned identifier and creation timestamp.
func (r *JobRepository) Create(ctx context.Context, fields models.JobFields) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, department, location, type, description)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		fields.Title,
		fields.Department,
		fields.Location,
		fields.Type,
		fields.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading new job id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a job by ID. Absence is reported as
// apperrors.ErrJobNotFound, a normal outcome for callers to branch on.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `
		SELECT id, title, department, location, type, description, created_at
		FROM jobs
		WHERE id = ?
	`

	var job models.Job
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Department,
		&job.Location,
		&job.Type,
		&job.Description,
		&job.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return &job, nil
}

// GetAll retrieves all jobs ordered by creation time, most recent first
func (r *JobRepository) GetAll(ctx context.Context) ([]*models.Job, error) {
	query := `
		SELECT id, title, department, location, type, description, created_at
		FROM jobs
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Department,
			&job.Location,
			&job.Type,
			&job.Description,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Update replaces all mutable fields of the job with the given ID. A
// missing row is not an error at the statement level; the post-update
// lookup carries the ErrJobNotFound result so callers always check the
// returned record.
func (r *JobRepository) Update(ctx context.Context, id int64, fields models.JobFields) (*models.Job, error) {
	query := `
		UPDATE jobs
		SET title = ?, department = ?, location = ?, type = ?, description = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		fields.Title,
		fields.Department,
		fields.Location,
		fields.Type,
		fields.Description,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating job: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the job row and reports whether a row was actually
// removed. Deleting an absent job is not an error. Applications pointing
// at the job keep their rows with the reference cleared.
func (r *JobRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE applications SET job_id = NULL WHERE job_id = ?`, id); err != nil {
		return false, fmt.Errorf("error clearing application references: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing delete: %w", err)
	}

	return affected > 0, nil
}
