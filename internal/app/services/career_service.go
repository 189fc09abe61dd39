package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/velandev/website/internal/app/models"
	"github.com/velandev/website/internal/app/repositories"
	"github.com/velandev/website/internal/pkg/apperrors"
	"github.com/velandev/website/internal/pkg/email"
)

// generalApplicationLabel is used when an application carries no job
// reference or the referenced job has been removed.
const generalApplicationLabel = "General Application"

// CareerService defines the careers operations exposed to the handlers.
// It is the validation and orchestration layer between request handling
// and the job/application stores.
type CareerService interface {
	ListJobs(ctx context.Context) ([]*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, fields models.JobFields) (*models.Job, error)
	UpdateJob(ctx context.Context, id int64, fields models.JobFields) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) (bool, error)
	SubmitApplication(ctx context.Context, fields models.ApplicationFields) (int64, error)
}

// careerServiceImpl implements the CareerService interface
type careerServiceImpl struct {
	jobRepo         *repositories.JobRepository
	applicationRepo *repositories.ApplicationRepository
	mailer          email.Mailer
	logger          zerolog.Logger
}

// NewCareerService creates a new career service instance
func NewCareerService(
	jobRepo *repositories.JobRepository,
	applicationRepo *repositories.ApplicationRepository,
	mailer email.Mailer,
	logger zerolog.Logger,
) CareerService {
	return &careerServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

// trimJobFields normalizes all string fields and reports the required
// fields that are empty after trimming, in declaration order.
func trimJobFields(fields models.JobFields) (models.JobFields, []string) {
	trimmed := models.JobFields{
		Title:       strings.TrimSpace(fields.Title),
		Department:  strings.TrimSpace(fields.Department),
		Location:    strings.TrimSpace(fields.Location),
		Type:        strings.TrimSpace(fields.Type),
		Description: strings.TrimSpace(fields.Description),
	}

	var missing []string
	if trimmed.Title == "" {
		missing = append(missing, "title")
	}
	if trimmed.Department == "" {
		missing = append(missing, "department")
	}
	if trimmed.Location == "" {
		missing = append(missing, "location")
	}
	if trimmed.Type == "" {
		missing = append(missing, "type")
	}
	if trimmed.Description == "" {
		missing = append(missing, "description")
	}

	return trimmed, missing
}

// ListJobs returns all jobs, most recent first
func (s *careerServiceImpl) ListJobs(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving jobs: %w", err)
	}
	return jobs, nil
}

// GetJob retrieves a single job by ID
func (s *careerServiceImpl) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid job ID")
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// CreateJob validates and persists a new job posting
func (s *careerServiceImpl) CreateJob(ctx context.Context, fields models.JobFields) (*models.Job, error) {
	trimmed, missing := trimJobFields(fields)
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing...)
	}

	job, err := s.jobRepo.Create(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}
	return job, nil
}

// UpdateJob validates and full-replaces the fields of an existing job.
// An absent id surfaces as ErrJobNotFound from the post-update lookup,
// never as a distinct failure.
func (s *careerServiceImpl) UpdateJob(ctx context.Context, id int64, fields models.JobFields) (*models.Job, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid job ID")
	}

	trimmed, missing := trimJobFields(fields)
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing...)
	}

	job, err := s.jobRepo.Update(ctx, id, trimmed)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error updating job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job posting; a second delete of the same id
// reports false without error
func (s *careerServiceImpl) DeleteJob(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid job ID")
	}

	deleted, err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting job: %w", err)
	}
	return deleted, nil
}

// SubmitApplication validates, stores, and dispatches notification for a
// job application. The store write commits before dispatch; a dispatch
// failure is reported as ErrNotificationFailed alongside the already
// assigned application id and never un-records the row.
func (s *careerServiceImpl) SubmitApplication(ctx context.Context, fields models.ApplicationFields) (int64, error) {
	if !s.mailer.Configured() {
		return 0, apperrors.ErrMailNotConfigured
	}

	trimmed := models.ApplicationFields{
		JobID:       fields.JobID,
		FullName:    strings.TrimSpace(fields.FullName),
		Email:       strings.TrimSpace(fields.Email),
		Phone:       strings.TrimSpace(fields.Phone),
		Portfolio:   strings.TrimSpace(fields.Portfolio),
		ResumeURL:   strings.TrimSpace(fields.ResumeURL),
		CoverLetter: strings.TrimSpace(fields.CoverLetter),
	}

	var missing []string
	if trimmed.FullName == "" {
		missing = append(missing, "fullName")
	}
	if trimmed.Email == "" {
		missing = append(missing, "email")
	}
	if trimmed.CoverLetter == "" {
		missing = append(missing, "coverLetter")
	}
	if len(missing) > 0 {
		return 0, apperrors.NewMissingFieldsError(missing...)
	}

	if trimmed.JobID != nil && *trimmed.JobID <= 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "jobId must be a positive integer")
	}

	// Resolve the job title for notification context only. A dangling
	// reference degrades to the general label, it is never an error.
	jobTitle := ""
	if trimmed.JobID != nil {
		job, err := s.jobRepo.GetByID(ctx, *trimmed.JobID)
		switch {
		case err == nil:
			jobTitle = job.Title
		case errors.Is(err, apperrors.ErrJobNotFound):
			// degrade to general application
		default:
			return 0, fmt.Errorf("error resolving job for application: %w", err)
		}
	}

	id, err := s.applicationRepo.Create(ctx, trimmed)
	if err != nil {
		return 0, fmt.Errorf("error storing application: %w", err)
	}

	subject := fmt.Sprintf("New Application: %s - %s", orGeneral(jobTitle), trimmed.FullName)
	body := applicationBody(id, trimmed, jobTitle)

	if err := s.mailer.Send(subject, body, trimmed.Email); err != nil {
		s.logger.Error().Err(err).Int64("applicationId", id).Msg("Application stored but notification failed")
		return id, fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	return id, nil
}

func orGeneral(jobTitle string) string {
	if jobTitle == "" {
		return "General"
	}
	return jobTitle
}

// applicationBody assembles the plain-text notification message
func applicationBody(id int64, fields models.ApplicationFields, jobTitle string) string {
	jobLabel := jobTitle
	if jobLabel == "" {
		jobLabel = generalApplicationLabel
	}

	lines := []string{
		fmt.Sprintf("Application ID: %d", id),
		fmt.Sprintf("Name: %s", fields.FullName),
		fmt.Sprintf("Email: %s", fields.Email),
		fmt.Sprintf("Phone: %s", orNotProvided(fields.Phone)),
		fmt.Sprintf("Portfolio: %s", orNotProvided(fields.Portfolio)),
		fmt.Sprintf("Resume URL: %s", orNotProvided(fields.ResumeURL)),
		fmt.Sprintf("Job: %s", jobLabel),
		"",
		"Cover Letter:",
		fields.CoverLetter,
	}

	return strings.Join(lines, "\n")
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
