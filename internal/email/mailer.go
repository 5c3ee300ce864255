// Package email sends the site's transactional mail: admin login codes and
// contact form messages.
package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/metrics"
)

var ErrNotConfigured = errors.New("email: mailer not configured")

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is a plain-text mail. Template names the message for logs and
// metrics.
type Message struct {
	Template string
	From     Address
	To       []string
	ReplyTo  string
	Subject  string
	Text     string
}

func (m *Message) validate() error {
	if m.From.Email == "" {
		return fmt.Errorf("%w: missing sender", ErrNotConfigured)
	}
	if len(m.To) == 0 {
		return errors.New("email: no recipients")
	}
	for _, to := range m.To {
		if _, err := mail.ParseAddress(to); err != nil {
			return fmt.Errorf("email: invalid recipient %q: %w", to, err)
		}
	}
	return nil
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("email not delivered (log mailer)",
		"template", msg.Template,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}

// instrumented records delivery outcome for any Mailer.
type instrumented struct {
	next Mailer
}

// Instrument wraps m so every send is logged and counted.
func Instrument(m Mailer) Mailer {
	return instrumented{next: m}
}

func (i instrumented) Send(ctx context.Context, msg *Message) error {
	err := i.next.Send(ctx, msg)
	metrics.RecordMail(msg.Template, err)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Error("email send failed", "template", msg.Template, "to", msg.To, "error", err)
		return err
	}
	log.Info("email sent", "template", msg.Template, "to", msg.To)
	return nil
}

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
	ProviderLog    = "log"
)

// New returns the instrumented mailer for provider.
func New(provider string, smtp SMTPConfig, resendAPIKey string) (Mailer, error) {
	switch provider {
	case ProviderSMTP:
		return Instrument(NewSMTPMailer(smtp)), nil
	case ProviderResend:
		return Instrument(NewResendMailer(resendAPIKey)), nil
	case ProviderLog, "":
		return Instrument(LogMailer{}), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", provider)
	}
}
