package request

import "distrimed/internal/domain/entities"

// ShippingQuoteRequest is the quote payload sent by the cart/checkout UI.
// Parcel measures are optional; the freight service applies its minimums.
type ShippingQuoteRequest struct {
	DestinationZipCode string  `json:"destination_zip_code" binding:"required"`
	WeightKg           float64 `json:"weight_kg"`
	LengthCm           float64 `json:"length_cm"`
	HeightCm           float64 `json:"height_cm"`
	WidthCm            float64 `json:"width_cm"`
}

func (r ShippingQuoteRequest) Parcel() entities.ParcelMetrics {
	return entities.ParcelMetrics{
		WeightKg: r.WeightKg,
		LengthCm: r.LengthCm,
		HeightCm: r.HeightCm,
		WidthCm:  r.WidthCm,
	}
}

// SelectRateRequest carries the full rate being selected; the resolver keeps
// no server-side catalog of quoted rates beyond the last response.
type SelectRateRequest struct {
	ID                 string  `json:"id"`
	ServiceType        string  `json:"service_type" binding:"required"`
	DisplayName        string  `json:"display_name"`
	Price              float64 `json:"price"`
	DeliveryDays       int     `json:"delivery_days"`
	OriginZipCode      string  `json:"origin_zip_code"`
	DestinationZipCode string  `json:"destination_zip_code"`
}

func (r SelectRateRequest) ToEntity() entities.ShippingRate {
	return entities.ShippingRate{
		ID:                 r.ID,
		ServiceType:        r.ServiceType,
		DisplayName:        r.DisplayName,
		Price:              r.Price,
		DeliveryDays:       r.DeliveryDays,
		OriginZipCode:      r.OriginZipCode,
		DestinationZipCode: r.DestinationZipCode,
	}
}

// RegionalBandRequest is the admin payload for the estimation table.
type RegionalBandRequest struct {
	Region     string  `json:"region" binding:"required"`
	PrefixFrom int     `json:"prefix_from"`
	PrefixTo   int     `json:"prefix_to"`
	BaseFee    float64 `json:"base_fee"`
	BaseDays   int     `json:"base_days"`
}

func (r RegionalBandRequest) ToEntity() entities.RegionalBand {
	return entities.RegionalBand{
		Region:     r.Region,
		PrefixFrom: r.PrefixFrom,
		PrefixTo:   r.PrefixTo,
		BaseFee:    r.BaseFee,
		BaseDays:   r.BaseDays,
	}
}
