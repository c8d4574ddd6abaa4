package mail

import (
	"context"

	"github.com/pixelvide/laravel-mail/pkg/telemetry"
)

// LogTransport implements Transport by logging messages
type LogTransport struct{}

// NewLogTransport creates a new LogTransport
func NewLogTransport() *LogTransport {
	return &LogTransport{}
}

// Send logs the message details
func (t *LogTransport) Send(ctx context.Context, msg *Message) error {
	logger := telemetry.LoggerFromContext(ctx).With().
		Str("mailer", "log").
		Str("message_id", msg.MessageID).
		Str("from", msg.From.String()).
		Strs("to", msg.To.Strings()).
		Str("subject", msg.Subject).
		Logger()

	if len(msg.Cc) > 0 {
		logger = logger.With().Strs("cc", msg.Cc.Strings()).Logger()
	}
	if len(msg.Bcc) > 0 {
		logger = logger.With().Strs("bcc", msg.Bcc.Strings()).Logger()
	}
	if len(msg.ReplyTo) > 0 {
		logger = logger.With().Strs("reply_to", msg.ReplyTo.Strings()).Logger()
	}
	if len(msg.Attachments) > 0 {
		names := make([]string, 0, len(msg.Attachments))
		for _, a := range msg.Attachments {
			names = append(names, a.Filename())
		}
		logger = logger.With().Strs("attachments", names).Logger()
	}

	logger.Info().Msg("Sending email")

	if msg.HTML != "" {
		logger.Info().Msgf("HTML:\n%s", msg.HTML)
	}
	if msg.Text != "" {
		logger.Info().Msgf("Text:\n%s", msg.Text)
	}

	return nil
}

// Name returns the transport name
func (t *LogTransport) Name() string {
	return "log"
}
