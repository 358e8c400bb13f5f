package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// WebhookRequest is the Zoho invoice notification payload.
type WebhookRequest struct {
	EventType string             `json:"event_type"`
	Data      WebhookInvoiceData `json:"data"`
}

// WebhookInvoiceData is the invoice snapshot inside a webhook payload.
// Total accepts both JSON numbers and numeric strings, and so do the ids.
type WebhookInvoiceData struct {
	InvoiceID     ExternalID      `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    ExternalID      `json:"customer_id"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PaymentDate   string          `json:"payment_date,omitempty"`
}

// ExternalID is a provider identifier sent either as a JSON string or a JSON number.
// Numbers keep their literal digits.
type ExternalID string

func (id *ExternalID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExternalID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("external id must be a string or number: %w", err)
	}
	*id = ExternalID(n.String())
	return nil
}

// WebhookResponse acknowledges a webhook delivery.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
