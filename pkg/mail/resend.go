package mail

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/resend/resend-go/v3"
)

// ResendAPI is the subset of the Resend client used by ResendTransport
type ResendAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendTransport implements Transport using the Resend API
type ResendTransport struct {
	emails ResendAPI
}

// NewResendTransport creates a ResendTransport authenticated with apiKey
func NewResendTransport(apiKey string) *ResendTransport {
	return NewResendTransportWithClient(resend.NewClient(apiKey).Emails)
}

// NewResendTransportWithClient creates a ResendTransport using the given emails API
func NewResendTransportWithClient(emails ResendAPI) *ResendTransport {
	return &ResendTransport{emails: emails}
}

// Send delivers the message via Resend
func (t *ResendTransport) Send(ctx context.Context, msg *Message) error {
	req := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      msg.To.Strings(),
		Cc:      msg.Cc.Strings(),
		Bcc:     msg.Bcc.Strings(),
		ReplyTo: strings.Join(msg.ReplyTo.Strings(), ", "),
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Headers: t.headers(msg),
	}

	attachments, err := t.convertAttachments(msg.Attachments)
	if err != nil {
		return err
	}
	req.Attachments = attachments

	if _, err := t.emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func (t *ResendTransport) headers(msg *Message) map[string]string {
	headers := map[string]string{}
	if msg.MessageID != "" {
		headers["Message-ID"] = "<" + msg.MessageID + ">"
	}
	if !msg.Sender.IsZero() {
		headers["Sender"] = msg.Sender.String()
	}
	if msg.Priority != 0 {
		headers["X-Priority"] = msg.Priority.String()
	}
	return headers
}

func (t *ResendTransport) convertAttachments(attachments []Attachment) ([]*resend.Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	result := make([]*resend.Attachment, 0, len(attachments))
	for _, a := range attachments {
		content := a.Content
		if a.Path != "" {
			data, err := os.ReadFile(a.Path)
			if err != nil {
				return nil, fmt.Errorf("resend: failed to read attachment %q: %w", a.Path, err)
			}
			content = data
		}

		result = append(result, &resend.Attachment{
			Filename:    a.Filename(),
			Content:     content,
			ContentType: a.ContentType,
		})
	}
	return result, nil
}

// Name returns the transport name
func (t *ResendTransport) Name() string {
	return "resend"
}
