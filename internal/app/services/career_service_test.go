package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/velandev/website/internal/app/models"
	"github.com/velandev/website/internal/app/repositories"
	"github.com/velandev/website/internal/db"
	"github.com/velandev/website/internal/pkg/apperrors"
)

// fakeMailer records sent messages instead of talking to a relay
type fakeMailer struct {
	configured bool
	sendErr    error

	subjects []string
	bodies   []string
	replyTos []string
}

func (m *fakeMailer) Configured() bool {
	return m.configured
}

func (m *fakeMailer) Send(subject, body, replyTo string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	m.replyTos = append(m.replyTos, replyTo)
	return nil
}

type careerFixture struct {
	service  CareerService
	mailer   *fakeMailer
	database *sql.DB
}

func newCareerFixture(t *testing.T) *careerFixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "careers.db")
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	mailer := &fakeMailer{configured: true}
	service := NewCareerService(
		repositories.NewJobRepository(database),
		repositories.NewApplicationRepository(database),
		mailer,
		zerolog.Nop(),
	)

	return &careerFixture{service: service, mailer: mailer, database: database}
}

func (f *careerFixture) applicationCount(t *testing.T) int {
	t.Helper()
	var count int
	if err := f.database.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		t.Fatalf("failed to count applications: %v", err)
	}
	return count
}

func validJobFields() models.JobFields {
	return models.JobFields{
		Title:       "Backend Engineer",
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Design and operate Go services.",
	}
}

func validApplicationFields() models.ApplicationFields {
	return models.ApplicationFields{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		CoverLetter: "I would like to apply.",
	}
}

func TestCreateJobTrimsFields(t *testing.T) {
	f := newCareerFixture(t)

	job, err := f.service.CreateJob(context.Background(), models.JobFields{
		Title:       "  Backend Engineer  ",
		Department:  "\tEngineering",
		Location:    "Remote ",
		Type:        " Full-time",
		Description: " Design and operate Go services. ",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if job.Title != "Backend Engineer" {
		t.Errorf("expected trimmed title, got %q", job.Title)
	}
	if job.Department != "Engineering" || job.Location != "Remote" {
		t.Errorf("expected trimmed fields, got %+v", job)
	}
}

func TestCreateJobMissingFields(t *testing.T) {
	f := newCareerFixture(t)

	_, err := f.service.CreateJob(context.Background(), models.JobFields{
		Title:    "   ",
		Location: "Remote",
	})

	var missingErr *apperrors.MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	want := []string{"title", "department", "type", "description"}
	if len(missingErr.Fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, missingErr.Fields)
	}
	for i, field := range want {
		if missingErr.Fields[i] != field {
			t.Errorf("field %d: expected %q, got %q", i, field, missingErr.Fields[i])
		}
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Error("expected MissingFieldsError to unwrap to ErrValidationFailed")
	}

	jobs, err := f.service.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("validation failure must not create rows, found %d jobs", len(jobs))
	}
}

func TestGetJobInvalidID(t *testing.T) {
	f := newCareerFixture(t)

	for _, id := range []int64{0, -1} {
		_, err := f.service.GetJob(context.Background(), id)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("id %d: expected ErrValidationFailed, got %v", id, err)
		}

		var customErr *apperrors.CustomError
		if !errors.As(err, &customErr) {
			t.Fatalf("id %d: expected CustomError, got %v", id, err)
		}
		if customErr.Error() != "invalid job ID" {
			t.Errorf("id %d: unexpected message %q", id, customErr.Error())
		}
	}
}

func TestSubmitApplicationNonPositiveJobID(t *testing.T) {
	f := newCareerFixture(t)

	zero := int64(0)
	fields := validApplicationFields()
	fields.JobID = &zero

	_, err := f.service.SubmitApplication(context.Background(), fields)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected CustomError, got %v", err)
	}
	if customErr.Error() != "jobId must be a positive integer" {
		t.Errorf("unexpected message %q", customErr.Error())
	}

	if count := f.applicationCount(t); count != 0 {
		t.Errorf("invalid job id must not store rows, found %d", count)
	}
}

func TestUpdateJobAbsent(t *testing.T) {
	f := newCareerFixture(t)

	_, err := f.service.UpdateJob(context.Background(), 999, validJobFields())
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestDeleteJobReportsOutcome(t *testing.T) {
	f := newCareerFixture(t)
	ctx := context.Background()

	job, err := f.service.CreateJob(ctx, validJobFields())
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}

	deleted, err := f.service.DeleteJob(ctx, job.ID)
	if err != nil || !deleted {
		t.Fatalf("expected first delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = f.service.DeleteJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("second delete returned error: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestSubmitApplicationForJob(t *testing.T) {
	f := newCareerFixture(t)
	ctx := context.Background()

	job, err := f.service.CreateJob(ctx, validJobFields())
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}

	fields := validApplicationFields()
	fields.JobID = &job.ID
	fields.Phone = "+49 151 0000000"

	id, err := f.service.SubmitApplication(ctx, fields)
	if err != nil {
		t.Fatalf("SubmitApplication returned error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive application id, got %d", id)
	}

	if len(f.mailer.subjects) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(f.mailer.subjects))
	}
	wantSubject := "New Application: Backend Engineer - Ada Lovelace"
	if f.mailer.subjects[0] != wantSubject {
		t.Errorf("expected subject %q, got %q", wantSubject, f.mailer.subjects[0])
	}
	if f.mailer.replyTos[0] != "ada@example.com" {
		t.Errorf("expected submitter as Reply-To, got %q", f.mailer.replyTos[0])
	}

	body := f.mailer.bodies[0]
	for _, want := range []string{
		fmt.Sprintf("Application ID: %d", id),
		"Name: Ada Lovelace",
		"Phone: +49 151 0000000",
		"Portfolio: Not provided",
		"Job: Backend Engineer",
		"I would like to apply.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q, body:\n%s", want, body)
		}
	}
}

func TestSubmitApplicationGeneral(t *testing.T) {
	f := newCareerFixture(t)

	id, err := f.service.SubmitApplication(context.Background(), validApplicationFields())
	if err != nil {
		t.Fatalf("SubmitApplication returned error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive application id, got %d", id)
	}

	if f.mailer.subjects[0] != "New Application: General - Ada Lovelace" {
		t.Errorf("expected general subject, got %q", f.mailer.subjects[0])
	}
	if !strings.Contains(f.mailer.bodies[0], "Job: General Application") {
		t.Errorf("expected general application label in body:\n%s", f.mailer.bodies[0])
	}
}

func TestSubmitApplicationDanglingJob(t *testing.T) {
	f := newCareerFixture(t)

	// Applications against a job id that no longer exists are accepted
	// and reported as general.
	gone := int64(4242)
	fields := validApplicationFields()
	fields.JobID = &gone

	id, err := f.service.SubmitApplication(context.Background(), fields)
	if err != nil {
		t.Fatalf("SubmitApplication returned error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive application id, got %d", id)
	}
	if !strings.Contains(f.mailer.subjects[0], "General") {
		t.Errorf("expected general subject for dangling job, got %q", f.mailer.subjects[0])
	}
}

func TestSubmitApplicationMissingFields(t *testing.T) {
	f := newCareerFixture(t)

	_, err := f.service.SubmitApplication(context.Background(), models.ApplicationFields{
		Email: "ada@example.com",
	})

	var missingErr *apperrors.MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	want := []string{"fullName", "coverLetter"}
	if len(missingErr.Fields) != len(want) || missingErr.Fields[0] != want[0] || missingErr.Fields[1] != want[1] {
		t.Errorf("expected fields %v, got %v", want, missingErr.Fields)
	}

	if count := f.applicationCount(t); count != 0 {
		t.Errorf("validation failure must not store rows, found %d", count)
	}
	if len(f.mailer.subjects) != 0 {
		t.Error("validation failure must not send notifications")
	}
}

func TestSubmitApplicationMailerUnconfigured(t *testing.T) {
	f := newCareerFixture(t)
	f.mailer.configured = false

	_, err := f.service.SubmitApplication(context.Background(), validApplicationFields())
	if !errors.Is(err, apperrors.ErrMailNotConfigured) {
		t.Fatalf("expected ErrMailNotConfigured, got %v", err)
	}

	// The configuration check runs before any write.
	if count := f.applicationCount(t); count != 0 {
		t.Errorf("unconfigured mailer must not store rows, found %d", count)
	}
}

func TestSubmitApplicationNotificationFailure(t *testing.T) {
	f := newCareerFixture(t)
	f.mailer.sendErr = errors.New("relay refused connection")

	id, err := f.service.SubmitApplication(context.Background(), validApplicationFields())
	if !errors.Is(err, apperrors.ErrNotificationFailed) {
		t.Fatalf("expected ErrNotificationFailed, got %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected assigned application id alongside the error, got %d", id)
	}

	// The stored row survives the dispatch failure.
	if count := f.applicationCount(t); count != 1 {
		t.Errorf("expected application row to remain, found %d", count)
	}
}
