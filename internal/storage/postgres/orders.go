package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) GetByInvoiceID(ctx context.Context, zohoInvoiceID string) (*model.Order, error) {
	const query = `SELECT id, client_id, zoho_invoice_id, amount_usd, amount_inr, currency, status, created_at, updated_at
                   FROM orders WHERE zoho_invoice_id=$1 ORDER BY created_at LIMIT 1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, zohoInvoiceID).Scan(
		&o.ID, &o.ClientID, &o.ZohoInvoiceID, &o.AmountUSD, &o.AmountINR, &o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UpdateStatusByInvoiceID returns the number of orders moved to status.
func (r *orderRepository) UpdateStatusByInvoiceID(ctx context.Context, zohoInvoiceID string, status model.OrderStatus) (int64, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE zoho_invoice_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, zohoInvoiceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ConfirmPayment marks the order paid, records its invoice once and notifies the client
// about a newly recorded invoice, all in one transaction.
func (r *orderRepository) ConfirmPayment(ctx context.Context, payment model.PaymentConfirmation) (model.PaymentOutcome, error) {
	const markPaid = `UPDATE orders SET status=$1, updated_at=NOW() WHERE zoho_invoice_id=$2
                      RETURNING id, client_id, amount_usd, amount_inr, currency`
	const insertInvoice = `INSERT INTO invoices (order_id, client_id, zoho_invoice_id, invoice_number,
                               amount_usd, amount_inr, currency, total_amount, status, due_date)
                           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                           ON CONFLICT (zoho_invoice_id) DO NOTHING
                           RETURNING id`
	const insertNotification = `INSERT INTO notifications (client_id, title, message, type) VALUES ($1, $2, $3, $4)`

	var outcome model.PaymentOutcome
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var order model.Order
		err := tx.QueryRow(ctx, markPaid, model.OrderStatusPaid, payment.ZohoInvoiceID).Scan(
			&order.ID, &order.ClientID, &order.AmountUSD, &order.AmountINR, &order.Currency)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		outcome.OrderFound = true
		outcome.ClientID = order.ClientID

		var invoiceID int64
		err = tx.QueryRow(ctx, insertInvoice,
			order.ID, order.ClientID, payment.ZohoInvoiceID, payment.InvoiceNumber,
			order.AmountUSD, order.AmountINR, order.Currency, payment.Total,
			string(model.OrderStatusPaid), payment.PaidAt,
		).Scan(&invoiceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		outcome.InvoiceCreated = true

		_, err = tx.Exec(ctx, insertNotification, order.ClientID,
			payment.NotificationTitle, payment.NotificationMessage, model.NotificationSuccess)
		return err
	})
	if err != nil {
		return model.PaymentOutcome{}, err
	}
	return outcome, nil
}
