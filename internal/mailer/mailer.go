package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/08Abhinay/portfolio/internal/config"
	"github.com/wneessen/go-mail"
)

// implicitTLSPort is the submission port that expects TLS from the first byte.
const implicitTLSPort = 465

// Message is a single outbound email with a plain text and an HTML part.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type TLSMode int

const (
	// TLSStartTLS upgrades a plain connection when the server offers STARTTLS.
	TLSStartTLS TLSMode = iota
	// TLSImplicit dials straight into TLS.
	TLSImplicit
)

func (m TLSMode) String() string {
	if m == TLSImplicit {
		return "implicit"
	}
	return "starttls"
}

// TLSModeForPort picks the TLS mode from the configured SMTP port.
func TLSModeForPort(port int) TLSMode {
	if port == implicitTLSPort {
		return TLSImplicit
	}
	return TLSStartTLS
}

// SMTPMailer relays messages through an authenticated SMTP server. It opens
// one connection per Send.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	timeout  time.Duration
}

func NewSMTPMailer(cfg config.Mail) (*SMTPMailer, error) {
	port, err := cfg.PortNumber()
	if err != nil {
		return nil, err
	}

	return &SMTPMailer{
		host:     cfg.Host,
		port:     port,
		user:     cfg.User,
		password: cfg.Password,
		timeout:  cfg.Timeout,
	}, nil
}

func (s *SMTPMailer) TLSMode() TLSMode {
	return TLSModeForPort(s.port)
}

// Send delivers msg. The request context and the SMTP timeout both bound
// the exchange.
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", s.host, s.port, err)
	}

	return nil
}

func (s *SMTPMailer) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.user),
		mail.WithPassword(s.password),
	}

	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}

	switch s.TLSMode() {
	case TLSImplicit:
		opts = append(opts, mail.WithSSL())
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	return mail.NewClient(s.host, opts...)
}

func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}
