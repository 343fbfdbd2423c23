package entities

// ShippingRate is one priced, timed delivery option for a given
// origin/destination pair, either quoted live by the freight service or
// synthesized from a regional band when the service is unavailable.
//
// Invariants:
//   - Price >= 0
//   - DeliveryDays >= 1
//   - a quote response holds at most one rate per ServiceType.

type ShippingRate struct {
	ID                 string  `json:"id"`
	ServiceType        string  `json:"service_type"`
	DisplayName        string  `json:"display_name"`
	Price              float64 `json:"price"`
	DeliveryDays       int     `json:"delivery_days"`
	OriginZipCode      string  `json:"origin_zip_code"`
	DestinationZipCode string  `json:"destination_zip_code"`
}

// ParcelMetrics carries the cart-derived package measures sent to the freight
// quote service. Zero values are acceptable; the service applies its own
// minimums.
type ParcelMetrics struct {
	WeightKg float64 `json:"weight_kg"`
	LengthCm float64 `json:"length_cm"`
	HeightCm float64 `json:"height_cm"`
	WidthCm  float64 `json:"width_cm"`
}

// RegionalBand maps an inclusive 3-digit CEP prefix range to a base freight
// fee and lead time. Bands are the degraded-path estimation table used when
// live quoting fails; the admin surface may override the compiled defaults.
type RegionalBand struct {
	Region     string  `json:"region"`
	PrefixFrom int     `json:"prefix_from"`
	PrefixTo   int     `json:"prefix_to"`
	BaseFee    float64 `json:"base_fee"`
	BaseDays   int     `json:"base_days"`
}
