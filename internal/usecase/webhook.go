package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/polkiloo/clientportal/internal/adapter/eventlock"
	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/domain/repository"
	"github.com/polkiloo/clientportal/internal/metrics"
)

const (
	MessageWebhookProcessed = "Webhook processed successfully"
	MessageWebhookInFlight  = "Webhook delivery already in progress"

	paymentNotificationTitle = "Payment Received"
)

// WebhookUseCase applies Zoho invoice events to orders, invoices and notifications.
type WebhookUseCase struct {
	orders repository.OrderRepository
	locker eventlock.Locker
	logger *slog.Logger
	now    func() time.Time
}

// NewWebhookUseCase constructs WebhookUseCase.
func NewWebhookUseCase(orders repository.OrderRepository, locker eventlock.Locker, logger *slog.Logger) *WebhookUseCase {
	return &WebhookUseCase{orders: orders, locker: locker, logger: logger, now: time.Now}
}

// Handle dispatches event by kind and returns the acknowledgement message.
// Unknown kinds, including an empty event type, are acknowledged without side effects.
// Only kinds that change orders require an invoice id and take the delivery lock.
func (u *WebhookUseCase) Handle(ctx context.Context, event model.WebhookEvent) (string, error) {
	logger := u.logger.With(
		slog.String("event_type", event.Type),
		slog.String("invoice_id", event.Data.InvoiceID),
	)

	message := MessageWebhookProcessed
	var err error
	switch event.Kind {
	case model.EventInvoicePaymentReceived:
		message, err = u.applyLocked(ctx, logger, event, u.paymentReceived)
	case model.EventInvoiceStatusChanged:
		message, err = u.applyLocked(ctx, logger, event, u.statusChanged)
	case model.EventInvoiceCreated:
		u.invoiceCreated(ctx, logger, event.Data)
	case model.EventUnknown:
		logger.Info("unhandled webhook event")
	}

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case message == MessageWebhookInFlight:
		outcome = "in_flight"
	}
	metrics.WebhookEvents.WithLabelValues(event.Kind.String(), outcome).Inc()

	if err != nil {
		return "", err
	}
	return message, nil
}

type eventApplier func(ctx context.Context, logger *slog.Logger, data model.InvoiceEventData) error

// applyLocked runs apply under the delivery lock for (kind, invoice id).
// A lock backend failure is logged and processing continues.
func (u *WebhookUseCase) applyLocked(ctx context.Context, logger *slog.Logger, event model.WebhookEvent, apply eventApplier) (string, error) {
	if event.Data.InvoiceID == "" {
		return "", fmt.Errorf("%w: %s without invoice_id", domainErrors.ErrInvalidEvent, event.Kind)
	}

	release, acquired, err := u.locker.Acquire(ctx, event.Kind.String()+":"+event.Data.InvoiceID)
	switch {
	case err != nil:
		logger.Warn("event lock unavailable, processing without it", slog.String("error", err.Error()))
	case !acquired:
		logger.Info("duplicate webhook delivery skipped")
		return MessageWebhookInFlight, nil
	}
	defer release()

	if err := apply(ctx, logger, event.Data); err != nil {
		return "", err
	}
	return MessageWebhookProcessed, nil
}

func (u *WebhookUseCase) paymentReceived(ctx context.Context, logger *slog.Logger, data model.InvoiceEventData) error {
	outcome, err := u.orders.ConfirmPayment(ctx, model.PaymentConfirmation{
		ZohoInvoiceID:       data.InvoiceID,
		InvoiceNumber:       data.InvoiceNumber,
		Total:               data.Total,
		PaidAt:              u.now().UTC(),
		NotificationTitle:   paymentNotificationTitle,
		NotificationMessage: fmt.Sprintf("Your payment for invoice %s has been received. Thank you!", data.InvoiceNumber),
	})
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	switch {
	case !outcome.OrderFound:
		logger.Warn("payment received for unknown order")
	case !outcome.InvoiceCreated:
		logger.Info("payment already recorded", slog.String("client_id", outcome.ClientID.String()))
	default:
		logger.Info("payment recorded",
			slog.String("client_id", outcome.ClientID.String()),
			slog.String("invoice_number", data.InvoiceNumber),
			slog.String("payment_date", data.PaymentDate),
		)
	}
	return nil
}

func (u *WebhookUseCase) invoiceCreated(ctx context.Context, logger *slog.Logger, data model.InvoiceEventData) {
	order, err := u.orders.GetByInvoiceID(ctx, data.InvoiceID)
	if err != nil {
		logger.Info("invoice created", slog.String("invoice_number", data.InvoiceNumber), slog.Bool("order_known", false))
		return
	}
	logger.Info("invoice created",
		slog.String("invoice_number", data.InvoiceNumber),
		slog.Bool("order_known", true),
		slog.String("order_id", order.ID.String()),
	)
}

func (u *WebhookUseCase) statusChanged(ctx context.Context, logger *slog.Logger, data model.InvoiceEventData) error {
	status := data.Status.OrderStatus()
	affected, err := u.orders.UpdateStatusByInvoiceID(ctx, data.InvoiceID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	logger.Info("order status updated",
		slog.String("invoice_status", string(data.Status)),
		slog.String("order_status", string(status)),
		slog.Int64("orders", affected),
	)
	return nil
}
