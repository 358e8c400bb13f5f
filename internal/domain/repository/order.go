package repository

import (
	"context"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// OrderRepository applies webhook driven transitions to orders and their invoices.
type OrderRepository interface {
	GetByInvoiceID(ctx context.Context, zohoInvoiceID string) (*model.Order, error)
	UpdateStatusByInvoiceID(ctx context.Context, zohoInvoiceID string, status model.OrderStatus) (int64, error)
	ConfirmPayment(ctx context.Context, payment model.PaymentConfirmation) (model.PaymentOutcome, error)
}
