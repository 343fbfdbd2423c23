package usecase

import (
	"context"
	"errors"
	"strings"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
)

// IOrderUseCase exposes read access to orders. Orders are only ever created
// by the converter; after that the ERP sync owns their mutation.

type IOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Order{}, ErrInvalidQuotationID
	}

	o, err := u.repo.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
