package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/clientportal/internal/config"
)

// Module exposes SMTP sender to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) Sender {
	return NewSMTPSender(Options{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		User:     p.Config.SMTPUser,
		Password: p.Config.SMTPPassword,
		From:     p.Config.SMTPFrom,
	}, p.Logger)
}
