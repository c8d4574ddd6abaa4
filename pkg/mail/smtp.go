package mail

import (
	"context"
	"fmt"

	"github.com/pixelvide/laravel-mail/pkg/config"
	gomail "github.com/wneessen/go-mail"
)

// SMTPTransport implements Transport over SMTP
type SMTPTransport struct {
	cfg config.MailConfig
}

// NewSMTPTransport creates a new SMTPTransport
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

// Send sends the given message using SMTP
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	m, err := NewMsg(msg)
	if err != nil {
		return fmt.Errorf("smtp: failed to build message: %w", err)
	}

	client, err := gomail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp: failed to create client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

func (t *SMTPTransport) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(t.cfg.Port),
	}

	if t.cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(t.cfg.Timeout))
	}

	// Implicit TLS is usually port 465; everything else negotiates STARTTLS
	switch {
	case t.cfg.Encryption == "ssl" || t.cfg.Port == 465:
		opts = append(opts, gomail.WithSSL())
	case t.cfg.Encryption == "tls":
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	case t.cfg.Encryption == "none":
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	if t.cfg.Username != "" && t.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(t.cfg.Username),
			gomail.WithPassword(t.cfg.Password),
		)
	}

	return opts
}

// Name returns the transport name
func (t *SMTPTransport) Name() string {
	return "smtp"
}
