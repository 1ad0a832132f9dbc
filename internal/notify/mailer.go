package notify

import (
	"context"
	"fmt"

	"github.com/straye-as/pipeline-api/internal/config"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Message is an outgoing email with a plain text body and an HTML alternative
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends email
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends email through an SMTP relay
type SMTPMailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer for the configured relay
func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send implements Mailer
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mail, err := buildMsg(m.cfg, msg)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(m.cfg.TimeoutDuration()),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("failed to send email to %v: %w", msg.To, err)
	}

	m.logger.Info("email sent",
		zap.String("subject", msg.Subject),
		zap.Int("recipients", len(msg.To)),
	)
	return nil
}

func buildMsg(cfg *config.MailConfig, msg Message) (*gomail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("email has no recipients")
	}

	mail := gomail.NewMsg()
	if err := mail.FromFormat(cfg.FromName, cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := mail.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mail.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return mail, nil
}

// LogMailer logs messages instead of sending them. Used when SMTP is disabled.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a LogMailer
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send implements Mailer
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info("email not sent, mail disabled",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
