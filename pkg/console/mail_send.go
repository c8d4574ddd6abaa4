package console

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pixelvide/laravel-mail/pkg/config"
	"github.com/pixelvide/laravel-mail/pkg/mail"
	"github.com/pixelvide/laravel-mail/pkg/root"
	"github.com/pixelvide/laravel-mail/pkg/telemetry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	html    string
	text    string
	subject string
	from    string
	mailer  string
	to      []string
	cc      []string
	bcc     []string
	attach  []string
	data    []string
	trace   bool
	verbose bool
}

var opts sendOptions

var mailSendCmd = &cobra.Command{
	Use:   "mail:send",
	Short: "Render an email view and send it",
	Example: `  mail mail:send --html emails/welcome.md --text emails/welcome.txt \
    --to "Jane <jane@example.com>" --subject Welcome --data name=Jane`,
	RunE: func(cmd *cobra.Command, args []string) error {
		telemetry.SetGlobalLogger(opts.verbose)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = log.Logger.WithContext(ctx)

		var mailerOpts []mail.Option
		if opts.trace {
			tp, err := telemetry.InitTracer("laravel-mail", nil)
			if err != nil {
				return fmt.Errorf("failed to initialize tracer: %w", err)
			}
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Error shutting down tracer")
				}
			}()
			mailerOpts = append(mailerOpts, mail.WithTracer(tp.Tracer("mail")))
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if opts.mailer != "" {
			cfg.Mail.Mailer = opts.mailer
		}

		return opts.run(ctx, cfg, mailerOpts...)
	},
}

func (o *sendOptions) run(ctx context.Context, cfg *config.Config, mailerOpts ...mail.Option) error {
	data, err := parseData(o.data)
	if err != nil {
		return err
	}

	configure, err := o.configure()
	if err != nil {
		return err
	}

	m, err := mail.NewMailer(ctx, cfg, mailerOpts...)
	if err != nil {
		return err
	}

	return m.SendView(ctx, mail.View{HTML: o.html, Text: o.text}, data, configure)
}

// configure parses the address flags into a SendView callback
func (o *sendOptions) configure() (func(mail.MessageBuilder), error) {
	var from mail.Address
	if o.from != "" {
		addr, err := mail.ParseAddress(o.from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from address %q: %w", o.from, err)
		}
		from = addr
	}

	to, err := parseAddresses("to", o.to)
	if err != nil {
		return nil, err
	}
	cc, err := parseAddresses("cc", o.cc)
	if err != nil {
		return nil, err
	}
	bcc, err := parseAddresses("bcc", o.bcc)
	if err != nil {
		return nil, err
	}

	return func(b mail.MessageBuilder) {
		if !from.IsZero() {
			b.From(from)
		}
		b.To(to).Cc(cc).Bcc(bcc)
		if o.subject != "" {
			b.Subject(o.subject)
		}
		for _, path := range o.attach {
			b.AttachFile(path, "", "")
		}
	}, nil
}

func parseAddresses(flag string, values []string) (mail.AddressList, error) {
	var list mail.AddressList
	for _, v := range values {
		parsed, err := mail.ParseAddressList(v)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s address %q: %w", flag, v, err)
		}
		list = append(list, parsed...)
	}
	return list, nil
}

// parseData turns key=value pairs into view data
func parseData(pairs []string) (map[string]any, error) {
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --data %q: expected key=value", pair)
		}
		data[key] = value
	}
	return data, nil
}

func init() {
	flags := mailSendCmd.Flags()
	flags.StringVar(&opts.html, "html", "", "Path of the HTML template (.md files are converted to HTML)")
	flags.StringVar(&opts.text, "text", "", "Path of the plain text template")
	flags.StringVar(&opts.subject, "subject", "", "Subject line")
	flags.StringVar(&opts.from, "from", "", "From address, overrides MAIL_FROM_ADDRESS")
	flags.StringVar(&opts.mailer, "mailer", "", "Mailer to use, overrides MAIL_MAILER")
	flags.StringArrayVar(&opts.to, "to", nil, "Recipient address (repeatable, comma separated)")
	flags.StringArrayVar(&opts.cc, "cc", nil, "Carbon copy address (repeatable)")
	flags.StringArrayVar(&opts.bcc, "bcc", nil, "Blind carbon copy address (repeatable)")
	flags.StringArrayVar(&opts.attach, "attach", nil, "File to attach (repeatable)")
	flags.StringArrayVar(&opts.data, "data", nil, "View data as key=value (repeatable)")
	flags.BoolVar(&opts.trace, "trace", false, "Print the send span to stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.GetRoot().AddCommand(mailSendCmd)
}
