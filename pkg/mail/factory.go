package mail

import (
	"context"
	"fmt"

	"github.com/pixelvide/laravel-mail/pkg/config"
	"github.com/pixelvide/laravel-mail/pkg/view"
)

// NewTransport creates a Transport based on the configuration
func NewTransport(ctx context.Context, cfg *config.Config) (Transport, error) {
	switch cfg.Mail.Mailer {
	case "smtp":
		return NewSMTPTransport(cfg.Mail), nil
	case "log":
		return NewLogTransport(), nil
	case "array":
		return NewArrayTransport(), nil
	case "ses":
		client, err := config.LoadSESClient(ctx, cfg.SES)
		if err != nil {
			return nil, fmt.Errorf("failed to load ses client: %w", err)
		}
		return NewSESTransport(client, cfg.SES.ConfigurationSet), nil
	case "resend":
		if cfg.Resend.APIKey == "" {
			return nil, fmt.Errorf("resend: RESEND_API_KEY is not set")
		}
		return NewResendTransport(cfg.Resend.APIKey), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMailer, cfg.Mail.Mailer)
	}
}

// NewRenderer creates the view renderer described by the configuration
func NewRenderer(cfg config.MailConfig) view.Renderer {
	var r view.Renderer = view.NewFileRenderer(cfg.ViewsPath)
	if cfg.Markdown {
		r = view.NewMarkdownRenderer(r)
	}
	return r
}

// NewMailer creates a Mailer with its transport, renderer and always-defaults taken from configuration
func NewMailer(ctx context.Context, cfg *config.Config, opts ...Option) (*Mailer, error) {
	transport, err := NewTransport(ctx, cfg)
	if err != nil {
		return nil, err
	}

	name := cfg.Mail.Mailer
	if n, ok := transport.(interface{ Name() string }); ok {
		name = n.Name()
	}

	opts = append([]Option{
		WithName(name),
		WithCharset(cfg.Mail.Charset),
	}, opts...)
	m := New(transport, NewRenderer(cfg.Mail), opts...)

	if err := applyDefaults(m, cfg.Mail); err != nil {
		return nil, err
	}
	return m, nil
}

func applyDefaults(m *Mailer, cfg config.MailConfig) error {
	if cfg.FromAddress != "" {
		m.AlwaysFrom(NewAddress(cfg.FromName, cfg.FromAddress))
	}
	if cfg.ReplyToAddress != "" {
		m.AlwaysReplyTo(NewAddress(cfg.ReplyToName, cfg.ReplyToAddress))
	}
	if cfg.ReturnPath != "" {
		m.AlwaysReturnPath(Addr(cfg.ReturnPath))
	}
	if cfg.AlwaysTo != "" {
		to, err := ParseAddressList(cfg.AlwaysTo)
		if err != nil {
			return fmt.Errorf("invalid MAIL_ALWAYS_TO: %w", err)
		}
		m.AlwaysTo(to)
	}
	return nil
}
