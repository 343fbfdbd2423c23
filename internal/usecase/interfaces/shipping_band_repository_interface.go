package interfaces

import (
	"context"
	"distrimed/internal/domain/entities"
)

// IShippingBandRepository abstracts persistence for the regional estimation
// bands (the shipping_bands admin table). List returning an empty slice means
// "use the compiled defaults".

type IShippingBandRepository interface {
	List(ctx context.Context) ([]entities.RegionalBand, error)
	Put(ctx context.Context, b entities.RegionalBand) (entities.RegionalBand, error)
}
