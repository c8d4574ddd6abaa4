// Package laravelmail provides a Laravel-style mailer for Go.
//
// Messages are composed either from a view (an html and/or text template plus data)
// or from a Mailable, a reusable type that fills in its own recipients, subject,
// attachments and view. A Mailer renders the view, applies its always-defaults
// and hands the composed Message to a Transport.
//
// Key subpackages:
//
//	github.com/pixelvide/laravel-mail/pkg/mail     - Mailer, Mailable, MessageBuilder and transports (smtp, ses, resend, log, array)
//	github.com/pixelvide/laravel-mail/pkg/view     - Template renderers with %key% substitution and markdown support
//	github.com/pixelvide/laravel-mail/pkg/config   - Configuration structs loaded from the environment
//	github.com/pixelvide/laravel-mail/pkg/console  - The mail:send command
//
// Example Usage:
//
//	package main
//
//	import (
//		"context"
//		"github.com/pixelvide/laravel-mail/pkg/config"
//		"github.com/pixelvide/laravel-mail/pkg/mail"
//	)
//
//	type WelcomeMail struct {
//		mail.Base
//		Name string
//	}
//
//	func (m *WelcomeMail) Build() {
//		m.Subject("Welcome").
//			HTML("emails/welcome.md", map[string]any{"name": m.Name})
//	}
//
//	func main() {
//		ctx := context.Background()
//		cfg, _ := config.Load()
//		mailer, _ := mail.NewMailer(ctx, cfg)
//		_ = mailer.To(mail.Addr("jane@example.com")).Send(ctx, &WelcomeMail{Name: "Jane"})
//	}
package laravelmail
