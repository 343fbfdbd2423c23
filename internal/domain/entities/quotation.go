package entities

import (
	"encoding/json"
	"time"
)

// QuotationStatus represents the lifecycle of a quotation (orçamento).
//
// Domain notes:
//   - StatusConverted is terminal and is only ever written by the order
//     converter; a quotation converts to an order at most once.

type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusSent      QuotationStatus = "sent"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusExpired   QuotationStatus = "expired"
	QuotationStatusConverted QuotationStatus = "converted"
)

// QuotationItem is one line of a quotation. ProductID may be empty for
// free-form lines; those pass through conversion without catalog enrichment.
type QuotationItem struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Quotation is the priced, non-binding proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// CustomerInfo and ShippingInfo are embedded JSON blobs written by the CRM
// front end. They are validated lazily, at conversion time, by the typed
// decoders in the usecase layer, not at creation time.
type Quotation struct {
	ID            string          `json:"id"`
	Status        QuotationStatus `json:"status"`
	CustomerInfo  json.RawMessage `json:"customer_info,omitempty"`
	ShippingInfo  json.RawMessage `json:"shipping_info,omitempty"`
	Items         []QuotationItem `json:"items"`
	Subtotal      float64         `json:"subtotal_amount"`
	Discount      float64         `json:"discount_amount"`
	Total         float64         `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
