package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SendEmailAPI is the subset of the SES v2 client used by SESTransport
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESTransport implements Transport using the AWS SES v2 API.
// Messages are sent as raw MIME so every header and attachment is preserved.
type SESTransport struct {
	client           SendEmailAPI
	configurationSet string
}

// NewSESTransport creates a new SESTransport
func NewSESTransport(client SendEmailAPI, configurationSet string) *SESTransport {
	return &SESTransport{client: client, configurationSet: configurationSet}
}

// Send delivers the message via SES
func (t *SESTransport) Send(ctx context.Context, msg *Message) error {
	raw, err := msg.Bytes()
	if err != nil {
		return fmt.Errorf("ses: failed to build raw message: %w", err)
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses:  msg.To.Strings(),
			CcAddresses:  msg.Cc.Strings(),
			BccAddresses: msg.Bcc.Strings(),
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	}
	if !msg.From.IsZero() {
		input.FromEmailAddress = aws.String(msg.From.String())
	}
	if from := msg.EnvelopeFrom(); !from.IsZero() {
		input.FeedbackForwardingEmailAddress = aws.String(from.Email)
	}
	if len(msg.ReplyTo) > 0 {
		input.ReplyToAddresses = msg.ReplyTo.Strings()
	}
	if t.configurationSet != "" {
		input.ConfigurationSetName = aws.String(t.configurationSet)
	}

	if _, err := t.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: %w", err)
	}
	return nil
}

// Name returns the transport name
func (t *SESTransport) Name() string {
	return "ses"
}
