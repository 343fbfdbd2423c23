package response

import (
	"encoding/json"
	"time"

	"distrimed/internal/domain/entities"
)

type QuotationItemResponse struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type QuotationResponse struct {
	ID            string                  `json:"id"`
	Status        string                  `json:"status"`
	CustomerInfo  json.RawMessage         `json:"customer_info,omitempty"`
	ShippingInfo  json.RawMessage         `json:"shipping_info,omitempty"`
	Items         []QuotationItemResponse `json:"items"`
	Subtotal      float64                 `json:"subtotal_amount"`
	Discount      float64                 `json:"discount_amount"`
	Total         float64                 `json:"total_amount"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuotationItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return QuotationResponse{
		ID:            q.ID,
		Status:        string(q.Status),
		CustomerInfo:  q.CustomerInfo,
		ShippingInfo:  q.ShippingInfo,
		Items:         items,
		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		Total:         q.Total,
		PaymentMethod: q.PaymentMethod,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
