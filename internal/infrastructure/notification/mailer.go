// Package notification implements the outbound notice dispatcher over SMTP.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mailroom/backend/internal/domain/notification"
	"github.com/mailroom/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// sendFunc matches smtp.SendMail so tests can capture outbound messages
// without a live SMTP server
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends notices through a plain SMTP relay
type SMTPMailer struct {
	config config.MailConfig
	logger *zap.Logger
	send   sendFunc
}

// NewSMTPMailer creates a mailer from the application mail configuration
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		config: cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send delivers a notice. Disabled mail and notices without a destination are
// logged no-ops; classification never depends on a send going out.
func (m *SMTPMailer) Send(ctx context.Context, notice notification.Notice) error {
	if notice.Destination == "" {
		m.logger.Info("Skipping notice with no destination",
			zap.String("kind", string(notice.Kind)),
			zap.String("company", notice.CompanyName))
		return nil
	}
	if !m.config.Enabled {
		m.logger.Info("Mail disabled, skipping notice",
			zap.String("kind", string(notice.Kind)),
			zap.String("destination", notice.Destination))
		return nil
	}

	subject, body, err := composeNotice(notice)
	if err != nil {
		return err
	}

	msg := buildMessage(m.config.From, notice.Destination, subject, body)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := m.send(addr, auth, m.config.From, []string{notice.Destination}, msg); err != nil {
		return fmt.Errorf("notification: failed to send %s notice: %w", notice.Kind, err)
	}

	m.logger.Info("Notice sent",
		zap.String("kind", string(notice.Kind)),
		zap.String("destination", notice.Destination),
		zap.String("company", notice.CompanyName))
	return nil
}

// composeNotice renders the subject and body for a notice kind
func composeNotice(notice notification.Notice) (string, string, error) {
	switch notice.Kind {
	case notification.KindAmendmentRequest:
		return "Contract Amendment Required - Office Services",
			fmt.Sprintf("Hello, %s.\n\n"+
				"Your company is registered with us under an individual registration. "+
				"Please contact our finance department to update the contract to a "+
				"business registration.\n\n"+
				"Kind regards,\nThe Office Services Team", notice.CompanyName),
			nil
	case notification.KindCorrespondenceArrival:
		return "Correspondence Received - Office Services",
			fmt.Sprintf("Hello, %s.\n\n"+
				"Correspondence addressed to your company has arrived at the office "+
				"and is ready for collection.\n\n"+
				"Kind regards,\nThe Office Services Team", notice.CompanyName),
			nil
	case notification.KindAddressMisuse:
		return "Unauthorized Address Use Detected - Office Services",
			fmt.Sprintf("Alert: the company %q appears to be using the office address "+
				"without an active contract.\n"+
				"Please review and take the appropriate measures.", notice.CompanyName),
			nil
	default:
		return "", "", fmt.Errorf("notification: unknown notice kind %q", notice.Kind)
	}
}

// buildMessage assembles a minimal RFC 5322 message
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// Ensure SMTPMailer implements the dispatcher contract
var _ notification.Dispatcher = (*SMTPMailer)(nil)
