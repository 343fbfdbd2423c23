package interfaces

import (
	"context"
	"distrimed/internal/domain/entities"
)

// FreightQuoteRequest is the payload sent to the external rate-quoting
// service. Zip codes are already normalized to 8 digits by the caller.
type FreightQuoteRequest struct {
	OriginZipCode      string                `json:"origin_zip_code"`
	DestinationZipCode string                `json:"destination_zip_code"`
	Parcel             entities.ParcelMetrics `json:"parcel"`
}

// IFreightQuoteGateway abstracts the live freight quote service. An error or
// an empty rate list both route the resolver to the regional fallback; the
// gateway itself makes no fallback decision.
type IFreightQuoteGateway interface {
	QuoteRates(ctx context.Context, req FreightQuoteRequest) ([]entities.ShippingRate, error)
}
