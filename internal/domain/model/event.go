package model

import "github.com/shopspring/decimal"

// EventKind enumerates Zoho webhook events understood by the dispatcher.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventInvoicePaymentReceived
	EventInvoiceCreated
	EventInvoiceStatusChanged
)

var eventKindNames = map[string]EventKind{
	"invoice_payment_received": EventInvoicePaymentReceived,
	"invoice_created":          EventInvoiceCreated,
	"invoice_status_changed":   EventInvoiceStatusChanged,
}

// ParseEventKind maps a wire event_type to its kind; unrecognised names yield EventUnknown.
func ParseEventKind(eventType string) EventKind {
	if kind, ok := eventKindNames[eventType]; ok {
		return kind
	}
	return EventUnknown
}

func (k EventKind) String() string {
	switch k {
	case EventInvoicePaymentReceived:
		return "invoice_payment_received"
	case EventInvoiceCreated:
		return "invoice_created"
	case EventInvoiceStatusChanged:
		return "invoice_status_changed"
	case EventUnknown:
		return "unknown"
	}
	return "unknown"
}

// InvoiceStatus is the invoice state reported by Zoho in status change events.
type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// OrderStatus maps the invoice state onto the order lifecycle.
// Overdue invoices move the order back to pending.
func (s InvoiceStatus) OrderStatus() OrderStatus {
	switch s {
	case InvoiceStatusPaid:
		return OrderStatusPaid
	case InvoiceStatusOverdue:
		return OrderStatusPending
	case InvoiceStatusCancelled:
		return OrderStatusCancelled
	default:
		return OrderStatusPending
	}
}

// InvoiceEventData is the invoice snapshot carried by a webhook event.
type InvoiceEventData struct {
	InvoiceID     string
	InvoiceNumber string
	CustomerID    string
	Total         decimal.Decimal
	Status        InvoiceStatus
	PaymentDate   string
}

// WebhookEvent is a decoded Zoho notification.
type WebhookEvent struct {
	Type string
	Kind EventKind
	Data InvoiceEventData
}
