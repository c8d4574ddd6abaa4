package config

import "time"

// Config is the root configuration, populated from the environment
type Config struct {
	Mail   MailConfig
	SES    SESConfig
	Resend ResendConfig
}

// MailConfig holds configuration for the default mailer
type MailConfig struct {
	Mailer     string        `env:"MAIL_MAILER" envDefault:"smtp"` // smtp, ses, resend, log, array
	Host       string        `env:"MAIL_HOST" envDefault:"127.0.0.1"`
	Port       int           `env:"MAIL_PORT" envDefault:"587"`
	Username   string        `env:"MAIL_USERNAME"`
	Password   string        `env:"MAIL_PASSWORD"`
	Encryption string        `env:"MAIL_ENCRYPTION"` // tls, ssl, none
	Timeout    time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`

	FromAddress    string `env:"MAIL_FROM_ADDRESS"`
	FromName       string `env:"MAIL_FROM_NAME"`
	ReplyToAddress string `env:"MAIL_REPLY_TO_ADDRESS"`
	ReplyToName    string `env:"MAIL_REPLY_TO_NAME"`
	ReturnPath     string `env:"MAIL_RETURN_PATH"`
	AlwaysTo       string `env:"MAIL_ALWAYS_TO"` // comma separated, redirects all mail

	Charset   string `env:"MAIL_CHARSET" envDefault:"utf-8"`
	ViewsPath string `env:"MAIL_VIEWS_PATH"`
	Markdown  bool   `env:"MAIL_MARKDOWN" envDefault:"true"`
}

// SESConfig holds configuration for the AWS SES transport
type SESConfig struct {
	Region           string `env:"AWS_DEFAULT_REGION" envDefault:"us-east-1"`
	Profile          string `env:"AWS_PROFILE"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
}

// ResendConfig holds configuration for the Resend transport
type ResendConfig struct {
	APIKey string `env:"RESEND_API_KEY"`
}
