package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/pkg/apperrors"
	"github.com/velandev/website/internal/pkg/email"
)

// ContactService handles contact form submissions. Inquiries are not
// persisted; the email notification is the record.
type ContactService interface {
	SubmitInquiry(req dto.ContactRequest) error
}

// contactServiceImpl implements the ContactService interface
type contactServiceImpl struct {
	mailer email.Mailer
	logger zerolog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(mailer email.Mailer, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{
		mailer: mailer,
		logger: logger,
	}
}

// SubmitInquiry validates the form and dispatches the inquiry email with
// the submitter as Reply-To
func (s *contactServiceImpl) SubmitInquiry(req dto.ContactRequest) error {
	if !s.mailer.Configured() {
		return apperrors.ErrMailNotConfigured
	}

	fullName := strings.TrimSpace(req.FullName)
	emailAddr := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	var missing []string
	if fullName == "" {
		missing = append(missing, "fullName")
	}
	if emailAddr == "" {
		missing = append(missing, "email")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingFieldsError(missing...)
	}

	lines := []string{
		fmt.Sprintf("Name: %s", fullName),
		fmt.Sprintf("Email: %s", emailAddr),
		fmt.Sprintf("Phone: %s", orNotProvided(strings.TrimSpace(req.Phone))),
		fmt.Sprintf("Company: %s", orNotProvided(strings.TrimSpace(req.Company))),
		"",
		"Message:",
		message,
	}

	subject := fmt.Sprintf("New Contact Request from %s", fullName)
	if err := s.mailer.Send(subject, strings.Join(lines, "\n"), emailAddr); err != nil {
		s.logger.Error().Err(err).Msg("Contact inquiry notification failed")
		return fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	return nil
}
