package mail

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/pixelvide/laravel-mail/pkg/config"
	"github.com/resend/resend-go/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSESClient is a mock implementation of the SendEmailAPI interface
type MockSESClient struct {
	mock.Mock
}

func (m *MockSESClient) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sesv2.SendEmailOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockResendEmails is a mock implementation of the ResendAPI interface
type MockResendEmails struct {
	mock.Mock
}

func (m *MockResendEmails) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*resend.SendEmailResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func sampleMessage() *Message {
	return NewBuilder().
		From(NewAddress("App", "app@example.com")).
		Sender(Addr("sender@example.com")).
		To(Addr("user@example.com")).
		Cc(Addr("cc@example.com")).
		Bcc(Addr("bcc@example.com")).
		ReplyTo(Addr("support@example.com")).
		Subject("Test Email").
		Priority(PriorityHigh).
		HTML("<h1>Hello</h1>", "utf-8").
		Text("Hello", "utf-8").
		AttachData([]byte("payload"), "data.txt", "text/plain").
		Message()
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		expected  any
		expectErr error
	}{
		{
			name:     "smtp",
			cfg:      config.Config{Mail: config.MailConfig{Mailer: "smtp", Host: "localhost", Port: 587}},
			expected: &SMTPTransport{},
		},
		{
			name:     "log",
			cfg:      config.Config{Mail: config.MailConfig{Mailer: "log"}},
			expected: &LogTransport{},
		},
		{
			name:     "array",
			cfg:      config.Config{Mail: config.MailConfig{Mailer: "array"}},
			expected: &ArrayTransport{},
		},
		{
			name:     "resend",
			cfg:      config.Config{Mail: config.MailConfig{Mailer: "resend"}, Resend: config.ResendConfig{APIKey: "re_test"}},
			expected: &ResendTransport{},
		},
		{
			name:     "ses",
			cfg:      config.Config{Mail: config.MailConfig{Mailer: "ses"}, SES: config.SESConfig{Region: "eu-west-1", AccessKeyID: "AKID", SecretAccessKey: "SECRET"}},
			expected: &SESTransport{},
		},
		{
			name:      "unsupported",
			cfg:       config.Config{Mail: config.MailConfig{Mailer: "pigeon"}},
			expectErr: ErrUnsupportedMailer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport, err := NewTransport(context.Background(), &tt.cfg)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, transport)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, transport)
		})
	}
}

func TestNewTransport_ResendWithoutKey(t *testing.T) {
	cfg := &config.Config{Mail: config.MailConfig{Mailer: "resend"}}

	_, err := NewTransport(context.Background(), cfg)
	assert.ErrorContains(t, err, "RESEND_API_KEY")
}

func TestNewMailer_FromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.md"), []byte("# Hi %name%"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.txt"), []byte("Hi %name%"), 0o644))

	cfg := &config.Config{Mail: config.MailConfig{
		Mailer:         "array",
		Charset:        "utf-8",
		ViewsPath:      dir,
		Markdown:       true,
		FromAddress:    "hello@example.com",
		FromName:       "Example",
		ReplyToAddress: "support@example.com",
		ReturnPath:     "bounce@example.com",
		AlwaysTo:       "ops@example.com, QA <qa@example.com>",
	}}

	mailer, err := NewMailer(context.Background(), cfg)
	require.NoError(t, err)

	err = mailer.SendView(context.Background(), View{HTML: "welcome.md", Text: "welcome.txt"}, map[string]any{"name": "Ann"}, func(b MessageBuilder) {
		b.To(Addr("user@example.com")).Cc(Addr("cc@example.com"))
	})
	require.NoError(t, err)

	transport, ok := mailer.transport.(*ArrayTransport)
	require.True(t, ok)
	msg := lastMessage(t, transport)

	assert.Equal(t, NewAddress("Example", "hello@example.com"), msg.From)
	assert.Equal(t, AddressList{Addr("support@example.com")}, msg.ReplyTo)
	assert.Equal(t, Addr("bounce@example.com"), msg.ReturnPath)
	assert.Equal(t, AddressList{Addr("ops@example.com"), NewAddress("QA", "qa@example.com")}, msg.To)
	assert.Empty(t, msg.Cc)
	assert.Contains(t, msg.HTML, "<h1>Hi Ann</h1>")
	assert.Equal(t, "Hi Ann", msg.Text)
}

func TestNewMailer_NamedAfterTransport(t *testing.T) {
	tests := []struct {
		mailer   string
		expected string
	}{
		{"log", "log"},
		{"array", "array"},
		{"smtp", "smtp"},
		{"resend", "resend"},
	}

	for _, tt := range tests {
		t.Run(tt.mailer, func(t *testing.T) {
			cfg := &config.Config{
				Mail:   config.MailConfig{Mailer: tt.mailer},
				Resend: config.ResendConfig{APIKey: "re_test"},
			}

			mailer, err := NewMailer(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mailer.name)
		})
	}
}

func TestNewMailer_InvalidAlwaysTo(t *testing.T) {
	cfg := &config.Config{Mail: config.MailConfig{Mailer: "array", AlwaysTo: "not an address"}}

	_, err := NewMailer(context.Background(), cfg)
	assert.ErrorContains(t, err, "MAIL_ALWAYS_TO")
}

func TestNewMailer_UnsupportedMailer(t *testing.T) {
	cfg := &config.Config{Mail: config.MailConfig{Mailer: "pigeon"}}

	_, err := NewMailer(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnsupportedMailer)
}

func TestLogTransport_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	transport := NewLogTransport()
	msg := sampleMessage()

	err := transport.Send(ctx, msg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Sending email")
	assert.Contains(t, output, "user@example.com")
	assert.Contains(t, output, "cc@example.com")
	assert.Contains(t, output, "bcc@example.com")
	assert.Contains(t, output, "Test Email")
	assert.Contains(t, output, "data.txt")
	assert.Contains(t, output, msg.MessageID)
	assert.Contains(t, output, "<h1>Hello</h1>")
	assert.Equal(t, "log", transport.Name())
}

func TestLogTransport_SendWithoutContextLogger(t *testing.T) {
	buf := captureGlobalLog(t)

	err := NewLogTransport().Send(context.Background(), sampleMessage())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Sending email")
	assert.Contains(t, buf.String(), "Test Email")
}

func TestArrayTransport(t *testing.T) {
	transport := NewArrayTransport()

	require.NoError(t, transport.Send(context.Background(), &Message{Subject: "one"}))
	require.NoError(t, transport.Send(context.Background(), &Message{Subject: "two"}))

	messages := transport.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "one", messages[0].Subject)
	assert.Equal(t, "two", messages[1].Subject)

	transport.Flush()
	assert.Empty(t, transport.Messages())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, transport.Send(ctx, &Message{}), context.Canceled)
	assert.Empty(t, transport.Messages())
}

func TestTransportFunc(t *testing.T) {
	var got *Message
	transport := TransportFunc(func(ctx context.Context, msg *Message) error {
		got = msg
		return nil
	})

	msg := &Message{Subject: "hi"}
	require.NoError(t, transport.Send(context.Background(), msg))
	assert.Same(t, msg, got)
}

func TestSMTPTransport_ClientOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.MailConfig
		expected int
	}{
		{
			name:     "starttls without auth",
			cfg:      config.MailConfig{Host: "localhost", Port: 587},
			expected: 2,
		},
		{
			name:     "with timeout",
			cfg:      config.MailConfig{Host: "localhost", Port: 587, Timeout: 5e9},
			expected: 3,
		},
		{
			name:     "ssl with auth",
			cfg:      config.MailConfig{Host: "localhost", Port: 465, Username: "user", Password: "pass"},
			expected: 5,
		},
		{
			name:     "username without password skips auth",
			cfg:      config.MailConfig{Host: "localhost", Port: 25, Encryption: "none", Username: "user"},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := NewSMTPTransport(tt.cfg)
			assert.Len(t, transport.clientOptions(), tt.expected)
			assert.Equal(t, "smtp", transport.Name())
		})
	}
}

func TestSMTPTransport_SendInvalidMessage(t *testing.T) {
	transport := NewSMTPTransport(config.MailConfig{Host: "localhost", Port: 2525})

	err := transport.Send(context.Background(), &Message{From: Addr("not an address")})
	assert.ErrorContains(t, err, "smtp: failed to build message")
}

func TestSESTransport_Send(t *testing.T) {
	client := new(MockSESClient)
	transport := NewSESTransport(client, "tracking")
	msg := sampleMessage()

	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return aws.ToString(in.FromEmailAddress) == `"App" <app@example.com>` &&
			aws.ToString(in.ConfigurationSetName) == "tracking" &&
			aws.ToString(in.FeedbackForwardingEmailAddress) == "sender@example.com" &&
			assert.ObjectsAreEqual([]string{"user@example.com"}, in.Destination.ToAddresses) &&
			assert.ObjectsAreEqual([]string{"cc@example.com"}, in.Destination.CcAddresses) &&
			assert.ObjectsAreEqual([]string{"bcc@example.com"}, in.Destination.BccAddresses) &&
			assert.ObjectsAreEqual([]string{"support@example.com"}, in.ReplyToAddresses) &&
			bytes.Contains(in.Content.Raw.Data, []byte("Subject: Test Email"))
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("ses-id")}, nil)

	require.NoError(t, transport.Send(context.Background(), msg))
	client.AssertExpectations(t)
	assert.Equal(t, "ses", transport.Name())
}

func TestSESTransport_SendError(t *testing.T) {
	client := new(MockSESClient)
	transport := NewSESTransport(client, "")

	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	err := transport.Send(context.Background(), sampleMessage())
	assert.ErrorContains(t, err, "ses: throttled")
}

func TestResendTransport_Send(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	emails := new(MockResendEmails)
	transport := NewResendTransportWithClient(emails)

	msg := sampleMessage()
	msg.Attachments = append([]Attachment{{Path: path}}, msg.Attachments...)

	emails.On("SendWithContext", mock.Anything, mock.MatchedBy(func(req *resend.SendEmailRequest) bool {
		return req.From == `"App" <app@example.com>` &&
			req.Subject == "Test Email" &&
			req.Html == "<h1>Hello</h1>" &&
			req.Text == "Hello" &&
			req.ReplyTo == "support@example.com" &&
			assert.ObjectsAreEqual([]string{"user@example.com"}, req.To) &&
			assert.ObjectsAreEqual([]string{"cc@example.com"}, req.Cc) &&
			assert.ObjectsAreEqual([]string{"bcc@example.com"}, req.Bcc) &&
			req.Headers["Message-ID"] == "<"+msg.MessageID+">" &&
			req.Headers["X-Priority"] == "2 (High)" &&
			len(req.Attachments) == 2 &&
			req.Attachments[0].Filename == "invoice.pdf" &&
			string(req.Attachments[0].Content) == "%PDF" &&
			req.Attachments[1].Filename == "data.txt"
	})).Return(&resend.SendEmailResponse{Id: "re_123"}, nil)

	require.NoError(t, transport.Send(context.Background(), msg))
	emails.AssertExpectations(t)
	assert.Equal(t, "resend", transport.Name())
}

func TestResendTransport_MissingAttachment(t *testing.T) {
	emails := new(MockResendEmails)
	transport := NewResendTransportWithClient(emails)

	msg := &Message{Attachments: []Attachment{{Path: filepath.Join(t.TempDir(), "missing.pdf")}}}

	err := transport.Send(context.Background(), msg)
	assert.ErrorContains(t, err, "failed to read attachment")
	emails.AssertNotCalled(t, "SendWithContext", mock.Anything, mock.Anything)
}

func TestResendTransport_SendError(t *testing.T) {
	emails := new(MockResendEmails)
	transport := NewResendTransportWithClient(emails)

	emails.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, errors.New("unauthorized"))

	err := transport.Send(context.Background(), sampleMessage())
	assert.ErrorContains(t, err, "resend: failed to send email: unauthorized")
}
