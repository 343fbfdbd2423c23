package interfaces

import (
	"context"
	"distrimed/internal/domain/entities"
)

// IProductRepository abstracts read access to the catalog table. GetByID
// returns a zero value (not an error) when the product no longer exists.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
