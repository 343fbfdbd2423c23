package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"distrimed/internal/adapter/http/handlers/mocks"
	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ord-x").
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending, Total: 115}, nil)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "ord-1" || body["total_amount"] != 115.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrderByQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no order for quotation maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetByQuotationID(gomock.Any(), "quo-1").
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/quotations/:id/order", h.GetOrderByQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/quo-1/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetByQuotationID(gomock.Any(), "quo-1").
			Return(entities.Order{ID: "ord-1", QuotationID: "quo-1"}, nil)

		r := gin.New()
		r.GET("/v1/quotations/:id/order", h.GetOrderByQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/quo-1/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
