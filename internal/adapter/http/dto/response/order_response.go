package response

import (
	"time"

	"distrimed/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	OmieCode  *string `json:"omie_code,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type ShippingAddressResponse struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Neighborhood string `json:"neighborhood"`
}

type OrderResponse struct {
	ID            string                  `json:"id"`
	QuotationID   string                  `json:"quotation_id"`
	CustomerID    string                  `json:"customer_id"`
	Items         []OrderItemResponse     `json:"items"`
	Subtotal      float64                 `json:"subtotal_amount"`
	Discount      float64                 `json:"discount_amount"`
	Total         float64                 `json:"total_amount"`
	ShippingFee   float64                 `json:"shipping_fee"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Status        string                  `json:"status"`
	OmieStatus    string                  `json:"omie_status"`
	PreferenceID  string                  `json:"preference_id,omitempty"`
	Address       ShippingAddressResponse `json:"shipping_address"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
			OmieCode:  it.OmieCode,
			ImageURL:  it.ImageURL,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		QuotationID:   o.QuotationID,
		CustomerID:    o.CustomerID,
		Items:         items,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		ShippingFee:   o.ShippingFee,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		OmieStatus:    string(o.OmieStatus),
		PreferenceID:  o.PreferenceID,
		Address: ShippingAddressResponse{
			Name:         o.Address.Name,
			Address:      o.Address.Address,
			City:         o.Address.City,
			State:        o.Address.State,
			ZipCode:      o.Address.ZipCode,
			Neighborhood: o.Address.Neighborhood,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
