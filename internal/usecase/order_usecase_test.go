package usecase

import (
	"context"
	"errors"
	"testing"

	"distrimed/internal/domain/entities"
	mock_interfaces "distrimed/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-x").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-x")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "ord-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)

		o, err := uc.GetByID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "ord-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_GetByQuotationID(t *testing.T) {
	t.Run("invalid quotation id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByQuotationID(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("no order for quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByQuotationID(gomock.Any(), "quo-1").Return(entities.Order{}, nil)

		_, err := uc.GetByQuotationID(context.Background(), "quo-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByQuotationID(gomock.Any(), "quo-1").
			Return(entities.Order{ID: "ord-1", QuotationID: "quo-1"}, nil)

		o, err := uc.GetByQuotationID(context.Background(), "quo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.QuotationID != "quo-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}
