package interfaces

import (
	"context"
	"distrimed/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByQuotationID resolves through the quotation_id GSI and returns a zero
// value when no order was ever created for that quotation. The converter
// relies on it to avoid duplicating orders on crash-and-retry.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error)
	UpdatePreferenceID(ctx context.Context, id, preferenceID string) (entities.Order, error)
}
