package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"

	mailer "github.com/polkiloo/clientportal/internal/adapter/mail"
	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/domain/repository"
)

// EmailUseCase renders and sends transactional email.
type EmailUseCase struct {
	templates repository.TemplateRepository
	sender    mailer.Sender
	logger    *slog.Logger
}

// NewEmailUseCase constructs EmailUseCase.
func NewEmailUseCase(templates repository.TemplateRepository, sender mailer.Sender, logger *slog.Logger) *EmailUseCase {
	return &EmailUseCase{templates: templates, sender: sender, logger: logger}
}

// Send renders req and delivers it. The returned status is valid even on error.
func (u *EmailUseCase) Send(ctx context.Context, req model.EmailRequest) (model.MailConfigStatus, error) {
	status := u.sender.Status()
	if !status.Ready() {
		return status, domainErrors.ErrMailNotConfigured
	}

	msg, err := u.render(ctx, req)
	if err != nil {
		return status, err
	}

	if err := u.sender.Send(ctx, msg); err != nil {
		u.logger.Error("email delivery failed", slog.String("to", msg.To), slog.String("error", err.Error()))
		return status, err
	}
	return status, nil
}

func (u *EmailUseCase) render(ctx context.Context, req model.EmailRequest) (model.EmailMessage, error) {
	msg := model.EmailMessage{
		To:      strings.TrimSpace(req.To),
		Subject: req.Subject,
		HTML:    req.HTML,
	}

	if name := strings.TrimSpace(req.Template); name != "" {
		tpl, err := u.templates.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return model.EmailMessage{}, fmt.Errorf("%w: unknown template %q", domainErrors.ErrInvalidEmail, name)
			}
			return model.EmailMessage{}, fmt.Errorf("load template: %w", err)
		}
		if msg.Subject == "" {
			msg.Subject = tpl.Subject
		}
		if msg.HTML == "" {
			msg.HTML = tpl.HTML
		}
	}

	if len(req.Variables) > 0 {
		r := placeholderReplacer(req.Variables)
		msg.Subject = r.Replace(msg.Subject)
		msg.HTML = r.Replace(msg.HTML)
	}

	switch {
	case msg.To == "":
		return model.EmailMessage{}, fmt.Errorf("%w: recipient is required", domainErrors.ErrInvalidEmail)
	case strings.TrimSpace(msg.Subject) == "":
		return model.EmailMessage{}, fmt.Errorf("%w: subject is required", domainErrors.ErrInvalidEmail)
	case strings.TrimSpace(msg.HTML) == "":
		return model.EmailMessage{}, fmt.Errorf("%w: html body is required", domainErrors.ErrInvalidEmail)
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return model.EmailMessage{}, fmt.Errorf("%w: invalid recipient %q", domainErrors.ErrInvalidEmail, msg.To)
	}
	return msg, nil
}

// placeholderReplacer substitutes {{key}} with the variable value.
func placeholderReplacer(vars map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", vars[k])
	}
	return strings.NewReplacer(pairs...)
}
