package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Mailer is the outbound notification capability consumed by the
// services. The core only assembles message content, never the
// transport.
type Mailer interface {
	// Configured reports whether the transport can actually send
	Configured() bool
	// Send delivers a plain-text message with the submitter as Reply-To
	Send(subject, body, replyTo string) error
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	To        string
	UseTLS    bool
}

// SMTPMailer implements Mailer over an SMTP relay
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	if config.FromEmail == "" {
		config.FromEmail = config.Username
	}
	if config.To == "" {
		config.To = config.Username
	}
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// Configured reports whether credentials and a recipient are present
func (m *SMTPMailer) Configured() bool {
	return m.config.Username != "" && m.config.Password != "" && m.config.To != ""
}

// Send delivers the message to the configured recipient
func (m *SMTPMailer) Send(subject, body, replyTo string) error {
	headers := fmt.Sprintf("From: %s <%s>\r\n", m.config.FromName, m.config.FromEmail)
	headers += fmt.Sprintf("To: %s\r\n", m.config.To)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=UTF-8\r\n"

	message := headers + "\r\n" + body

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)

	if m.config.UseTLS {
		return m.sendTLS(serverAddress, auth, message)
	}

	if err := smtp.SendMail(serverAddress, auth, m.config.FromEmail, []string{m.config.To}, []byte(message)); err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// sendTLS sends over an implicit-TLS connection (port 465 style relays)
func (m *SMTPMailer) sendTLS(serverAddress string, auth smtp.Auth, message string) error {
	tlsConfig := &tls.Config{
		ServerName: m.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		m.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(m.config.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
