package request

import (
	"encoding/json"
	"errors"
	"strings"

	"distrimed/internal/domain/entities"
)

var ErrInvalidQuotationPayload = errors.New("invalid quotation payload")

type QuotationItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// QuotationCreateRequest is the CRM-facing creation payload. CustomerInfo and
// ShippingInfo pass through as raw JSON: they are validated lazily, at
// conversion time, never here.
type QuotationCreateRequest struct {
	CustomerInfo  json.RawMessage        `json:"customer_info"`
	ShippingInfo  json.RawMessage        `json:"shipping_info"`
	Items         []QuotationItemRequest `json:"items" binding:"required"`
	Subtotal      float64                `json:"subtotal_amount"`
	Discount      float64                `json:"discount_amount"`
	Total         float64                `json:"total_amount"`
	PaymentMethod string                 `json:"payment_method"`
}

func (r QuotationCreateRequest) ToEntity() (entities.Quotation, error) {
	if len(r.Items) == 0 {
		return entities.Quotation{}, ErrInvalidQuotationPayload
	}

	items := make([]entities.QuotationItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.Quantity < 1 {
			return entities.Quotation{}, ErrInvalidQuotationPayload
		}
		total := it.Total
		if total == 0 {
			total = it.UnitPrice * float64(it.Quantity)
		}
		items = append(items, entities.QuotationItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     total,
		})
	}

	return entities.Quotation{
		CustomerInfo:  r.CustomerInfo,
		ShippingInfo:  r.ShippingInfo,
		Items:         items,
		Subtotal:      r.Subtotal,
		Discount:      r.Discount,
		Total:         r.Total,
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}, nil
}

// QuotationStatusRequest drives the PATCH status endpoint.
type QuotationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuotationStatusRequest) ResolveStatus() entities.QuotationStatus {
	return entities.QuotationStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
