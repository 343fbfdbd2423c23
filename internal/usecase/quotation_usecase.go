package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuotationItems  = errors.New("quotation needs at least one item")
	ErrInvalidQuotationStatus = errors.New("invalid quotation status")
)

// IQuotationUseCase exposes quotation lifecycle operations. Conversion to an
// order is deliberately not here; only the converter writes "converted".

type IQuotationUseCase interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo}
}

func (u *QuotationUseCase) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if len(q.Items) == 0 {
		return entities.Quotation{}, ErrInvalidQuotationItems
	}
	for _, it := range q.Items {
		if it.Quantity < 1 {
			return entities.Quotation{}, ErrInvalidQuotationItems
		}
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.Status = entities.QuotationStatusDraft
	q.CreatedAt = now
	q.UpdatedAt = now

	if q.Subtotal == 0 {
		for _, it := range q.Items {
			q.Subtotal += it.Total
		}
	}
	if q.Total == 0 {
		q.Total = q.Subtotal - q.Discount
	}

	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	switch status {
	case entities.QuotationStatusDraft,
		entities.QuotationStatusSent,
		entities.QuotationStatusAccepted,
		entities.QuotationStatusRejected,
		entities.QuotationStatusExpired:
	default:
		// "converted" included: only the converter may write it.
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if current.Status == entities.QuotationStatusConverted {
		return entities.Quotation{}, ErrQuotationAlreadyConverted
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}
