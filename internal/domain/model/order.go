package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes payment lifecycle of a storefront order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a checkout order linked to a Zoho invoice.
type Order struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ZohoInvoiceID string
	AmountUSD     decimal.Decimal
	AmountINR     decimal.Decimal
	Currency      string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Invoice is issued once per paid Zoho invoice.
type Invoice struct {
	ID            int64
	OrderID       uuid.UUID
	ClientID      uuid.UUID
	ZohoInvoiceID string
	InvoiceNumber string
	AmountUSD     decimal.Decimal
	AmountINR     decimal.Decimal
	Currency      string
	TotalAmount   decimal.Decimal
	Status        string
	DueDate       time.Time
	CreatedAt     time.Time
}

// PaymentConfirmation carries everything needed to settle an order after payment.
type PaymentConfirmation struct {
	ZohoInvoiceID       string
	InvoiceNumber       string
	Total               decimal.Decimal
	PaidAt              time.Time
	NotificationTitle   string
	NotificationMessage string
}

// PaymentOutcome reports which records a payment confirmation touched.
type PaymentOutcome struct {
	OrderFound     bool
	InvoiceCreated bool
	ClientID       uuid.UUID
}
