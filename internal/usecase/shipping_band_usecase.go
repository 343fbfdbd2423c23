package usecase

import (
	"context"
	"errors"
	"strings"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"
)

var ErrInvalidRegionalBand = errors.New("invalid regional band")

// IShippingBandUseCase is the admin surface over the regional estimation
// table. Changes take effect for resolvers built after the write; a running
// resolver keeps the table it was constructed with.

type IShippingBandUseCase interface {
	List(ctx context.Context) ([]entities.RegionalBand, error)
	Put(ctx context.Context, b entities.RegionalBand) (entities.RegionalBand, error)
}

type ShippingBandUseCase struct {
	repo interfaces.IShippingBandRepository
}

var _ IShippingBandUseCase = (*ShippingBandUseCase)(nil)

func NewShippingBandUseCase(repo interfaces.IShippingBandRepository) *ShippingBandUseCase {
	return &ShippingBandUseCase{repo: repo}
}

// List returns the stored bands, or the compiled defaults when the table is
// empty or no repository is wired.
func (u *ShippingBandUseCase) List(ctx context.Context) ([]entities.RegionalBand, error) {
	if u.repo == nil {
		return DefaultRegionalBands(), nil
	}
	bands, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(bands) == 0 {
		return DefaultRegionalBands(), nil
	}
	return bands, nil
}

func (u *ShippingBandUseCase) Put(ctx context.Context, b entities.RegionalBand) (entities.RegionalBand, error) {
	b.Region = strings.TrimSpace(b.Region)
	if b.Region == "" || b.BaseFee < 0 || b.BaseDays < 1 {
		return entities.RegionalBand{}, ErrInvalidRegionalBand
	}
	if b.PrefixFrom < 0 || b.PrefixTo > 999 || b.PrefixFrom > b.PrefixTo {
		return entities.RegionalBand{}, ErrInvalidRegionalBand
	}
	if u.repo == nil {
		return entities.RegionalBand{}, errors.New("shipping band repository not configured")
	}
	return u.repo.Put(ctx, b)
}
