package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"

	"github.com/polkiloo/clientportal/internal/config"
	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSMTPSenderStatus(t *testing.T) {
	s := NewSMTPSender(Options{Host: "smtp.example.com", Port: 587, User: "bot@example.com"}, testLogger())
	status := s.Status()
	if !status.UserConfigured || status.PasswordConfigured || status.Ready() {
		t.Fatalf("unexpected status: %+v", status)
	}
	if s.from != "bot@example.com" {
		t.Fatalf("expected from to default to user, got %q", s.from)
	}
	if s.addr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", s.addr)
	}
}

func TestSMTPSenderSendRequiresCredentials(t *testing.T) {
	s := NewSMTPSender(Options{Host: "smtp.example.com", Port: 587}, testLogger())
	called := false
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}
	err := s.Send(context.Background(), model.EmailMessage{To: "a@example.com", Subject: "s", HTML: "<p>h</p>"})
	if !errors.Is(err, domainErrors.ErrMailNotConfigured) {
		t.Fatalf("expected not configured error, got %v", err)
	}
	if called {
		t.Fatal("transport must not be used without credentials")
	}
}

func TestSMTPSenderSend(t *testing.T) {
	s := NewSMTPSender(Options{Host: "smtp.example.com", Port: 587, User: "bot@example.com", Password: "pw", From: "Portal <noreply@example.com>"}, testLogger())

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
	)
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	err := s.Send(context.Background(), model.EmailMessage{To: "client@example.com", Subject: "Invoice paid", HTML: "<p>Thanks</p>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "Portal <noreply@example.com>" {
		t.Fatalf("unexpected envelope %s %s", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "client@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	for _, want := range []string{"To: client@example.com\r\n", "Subject: Invoice paid\r\n", "Content-Type: text/html", "\r\n\r\n<p>Thanks</p>"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q:\n%s", want, gotMsg)
		}
	}
}

func TestSMTPSenderSendFailure(t *testing.T) {
	s := NewSMTPSender(Options{Host: "smtp.example.com", Port: 587, User: "u", Password: "p"}, testLogger())
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("535 auth failed")
	}
	if err := s.Send(context.Background(), model.EmailMessage{To: "a@example.com"}); !errors.Is(err, domainErrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, model.EmailMessage{To: "a@example.com"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestNewSenderUsesConfig(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 465, SMTPUser: "u", SMTPPassword: "p"}
	sender := newSender(senderParams{Config: cfg, Logger: testLogger()})
	smtpSender, ok := sender.(*SMTPSender)
	if !ok {
		t.Fatalf("expected *SMTPSender, got %T", sender)
	}
	if smtpSender.addr != "smtp.gmail.com:465" || !smtpSender.Status().Ready() {
		t.Fatalf("unexpected sender: %+v", smtpSender)
	}
}
