package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

// Sender delivers rendered HTML email.
type Sender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
	Status() model.MailConfigStatus
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through an authenticated SMTP relay.
type SMTPSender struct {
	addr     string
	host     string
	user     string
	password string
	from     string
	send     sendFunc
	logger   *slog.Logger
}

// Options configures SMTPSender.
type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NewSMTPSender builds sender for the given relay.
func NewSMTPSender(opts Options, logger *slog.Logger) *SMTPSender {
	from := opts.From
	if from == "" {
		from = opts.User
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		host:     opts.Host,
		user:     opts.User,
		password: opts.Password,
		from:     from,
		send:     smtp.SendMail,
		logger:   logger,
	}
}

// Status reports which credentials are configured, never their values.
func (s *SMTPSender) Status() model.MailConfigStatus {
	return model.MailConfigStatus{
		UserConfigured:     s.user != "",
		PasswordConfigured: s.password != "",
	}
}

// Send delivers msg or fails with ErrMailNotConfigured when credentials are missing.
func (s *SMTPSender) Send(ctx context.Context, msg model.EmailMessage) error {
	if !s.Status().Ready() {
		return domainErrors.ErrMailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err := s.send(s.addr, auth, s.from, []string{msg.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("%w: smtp send: %v", domainErrors.ErrUpstream, err)
	}
	s.logger.Info("email sent", slog.String("to", msg.To))
	return nil
}

func (s *SMTPSender) compose(msg model.EmailMessage) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTML)
	return buf.Bytes()
}
