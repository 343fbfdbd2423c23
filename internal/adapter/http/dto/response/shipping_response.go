package response

import (
	"time"

	"distrimed/internal/domain/entities"
)

type ShippingRateResponse struct {
	ID                 string  `json:"id"`
	ServiceType        string  `json:"service_type"`
	DisplayName        string  `json:"display_name"`
	Price              float64 `json:"price"`
	DeliveryDays       int     `json:"delivery_days"`
	OriginZipCode      string  `json:"origin_zip_code"`
	DestinationZipCode string  `json:"destination_zip_code"`
}

func FromShippingRate(r entities.ShippingRate) ShippingRateResponse {
	return ShippingRateResponse{
		ID:                 r.ID,
		ServiceType:        r.ServiceType,
		DisplayName:        r.DisplayName,
		Price:              r.Price,
		DeliveryDays:       r.DeliveryDays,
		OriginZipCode:      r.OriginZipCode,
		DestinationZipCode: r.DestinationZipCode,
	}
}

type ShippingQuoteResponse struct {
	Rates []ShippingRateResponse `json:"rates"`
}

func FromShippingRates(rates []entities.ShippingRate) ShippingQuoteResponse {
	out := ShippingQuoteResponse{Rates: make([]ShippingRateResponse, 0, len(rates))}
	for _, r := range rates {
		out.Rates = append(out.Rates, FromShippingRate(r))
	}
	return out
}

// ShippingSelectionResponse mirrors the resolver's derived state: fee and
// delivery date are projections of the selected rate, never set without it.
type ShippingSelectionResponse struct {
	SelectedRate *ShippingRateResponse `json:"selected_rate,omitempty"`
	ShippingFee  float64               `json:"shipping_fee"`
	DeliveryDate *time.Time            `json:"delivery_date,omitempty"`
}

func FromShippingSelection(selected *entities.ShippingRate, fee float64, deliveryDate *time.Time) ShippingSelectionResponse {
	res := ShippingSelectionResponse{ShippingFee: fee, DeliveryDate: deliveryDate}
	if selected != nil {
		r := FromShippingRate(*selected)
		res.SelectedRate = &r
	}
	return res
}

type RegionalBandResponse struct {
	Region     string  `json:"region"`
	PrefixFrom int     `json:"prefix_from"`
	PrefixTo   int     `json:"prefix_to"`
	BaseFee    float64 `json:"base_fee"`
	BaseDays   int     `json:"base_days"`
}

func FromRegionalBand(b entities.RegionalBand) RegionalBandResponse {
	return RegionalBandResponse{
		Region:     b.Region,
		PrefixFrom: b.PrefixFrom,
		PrefixTo:   b.PrefixTo,
		BaseFee:    b.BaseFee,
		BaseDays:   b.BaseDays,
	}
}

func FromRegionalBands(bands []entities.RegionalBand) []RegionalBandResponse {
	out := make([]RegionalBandResponse, 0, len(bands))
	for _, b := range bands {
		out = append(out, FromRegionalBand(b))
	}
	return out
}
