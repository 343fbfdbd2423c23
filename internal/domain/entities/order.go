package entities

import "time"

// OrderStatus represents the order lifecycle. The converter only ever writes
// "pending"; downstream payment/ERP sync drives later transitions.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OmieStatus is the ERP sync state. New orders always start as "novo"; the
// sync worker (out of scope here) moves them forward.
type OmieStatus string

const (
	OmieStatusNovo     OmieStatus = "novo"
	OmieStatusEnviado  OmieStatus = "enviado"
	OmieStatusErro     OmieStatus = "erro"
	OmieStatusFaturado OmieStatus = "faturado"
)

// OrderItem is a quotation line enriched with the current catalog record.
// OmieCode stays nil when the product has none or the lookup degraded.
type OrderItem struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	OmieCode  *string `json:"omie_code,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// ShippingAddress is the delivery snapshot built from the quotation's
// extracted customer at conversion time.
type ShippingAddress struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Neighborhood string `json:"neighborhood"`
}

// Order is the binding purchase record created from a converted quotation.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (quotation_id-index): quotation_id
//
// The quotation_id index is the converter's idempotency anchor: a retry after
// a crash between order insert and quotation status update finds the existing
// order instead of creating a duplicate.
type Order struct {
	ID            string          `json:"id"`
	QuotationID   string          `json:"quotation_id"`
	CustomerID    string          `json:"customer_id"`
	Items         []OrderItem     `json:"items"`
	Subtotal      float64         `json:"subtotal_amount"`
	Discount      float64         `json:"discount_amount"`
	Total         float64         `json:"total_amount"`
	ShippingFee   float64         `json:"shipping_fee"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        OrderStatus     `json:"status"`
	OmieStatus    OmieStatus      `json:"omie_status"`
	PreferenceID  string          `json:"preference_id,omitempty"`
	Address       ShippingAddress `json:"shipping_address"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
