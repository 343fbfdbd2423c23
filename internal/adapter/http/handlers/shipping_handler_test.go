package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distrimed/internal/adapter/http/handlers/mocks"
	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestShippingHandler_QuoteRates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.QuoteRates)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid zip maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		resolver.EXPECT().
			QuoteToDestination(gomock.Any(), "123", gomock.Any()).
			Return(nil, usecase.ErrInvalidZipCode)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.QuoteRates)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString(`{"destination_zip_code":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "INVALID_ZIP_CODE" {
			t.Fatalf("expected INVALID_ZIP_CODE, got %v", body["code"])
		}
	})

	t.Run("quote success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		resolver.EXPECT().
			QuoteToDestination(gomock.Any(), "01310100", entities.ParcelMetrics{WeightKg: 2}).
			Return([]entities.ShippingRate{
				{ID: "r1", ServiceType: "SEDEX", Price: 25, DeliveryDays: 2},
				{ID: "r2", ServiceType: "PAC", Price: 15, DeliveryDays: 4},
			}, nil)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.QuoteRates)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes",
			bytes.NewBufferString(`{"destination_zip_code":"01310100","weight_kg":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Rates []map[string]any `json:"rates"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Rates) != 2 || body.Rates[0]["id"] != "r1" {
			t.Fatalf("unexpected rates: %+v", body.Rates)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		resolver.EXPECT().
			QuoteToDestination(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.QuoteRates)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes",
			bytes.NewBufferString(`{"destination_zip_code":"01310100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestShippingHandler_Selection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("select rate returns refreshed selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		selected := entities.ShippingRate{ID: "r2", ServiceType: "PAC", Price: 15, DeliveryDays: 4}
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		resolver.EXPECT().SelectRate(selected)
		resolver.EXPECT().Selection().Return(&selected, 15.0, &date)

		r := gin.New()
		r.PUT("/v1/shipping/selection", h.SelectRate)

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/selection",
			bytes.NewBufferString(`{"id":"r2","service_type":"PAC","price":15,"delivery_days":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["shipping_fee"] != 15.0 {
			t.Fatalf("expected shipping_fee 15, got %v", body["shipping_fee"])
		}
	})

	t.Run("get empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		resolver.EXPECT().Selection().Return(nil, 0.0, nil)

		r := gin.New()
		r.GET("/v1/shipping/selection", h.GetSelection)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/selection", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if _, has := body["selected_rate"]; has {
			t.Fatalf("expected selected_rate omitted, got %v", body)
		}
	})

	t.Run("reset returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		resolver.EXPECT().Reset()

		r := gin.New()
		r.DELETE("/v1/shipping/selection", h.ResetSelection)

		req := httptest.NewRequest(http.MethodDelete, "/v1/shipping/selection", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestShippingHandler_Bands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list bands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		bands.EXPECT().List(gomock.Any()).Return([]entities.RegionalBand{
			{Region: "sp-capital", PrefixFrom: 10, PrefixTo: 59, BaseFee: 15, BaseDays: 2},
		}, nil)

		r := gin.New()
		r.GET("/v1/shipping/bands", h.ListBands)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/bands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("put invalid band maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		bands.EXPECT().Put(gomock.Any(), gomock.Any()).
			Return(entities.RegionalBand{}, usecase.ErrInvalidRegionalBand)

		r := gin.New()
		r.PUT("/v1/shipping/bands", h.PutBand)

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/bands",
			bytes.NewBufferString(`{"region":"x","prefix_from":50,"prefix_to":10,"base_fee":1,"base_days":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put band success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIShippingResolverUseCase(ctrl)
		bands := mocks.NewMockIShippingBandUseCase(ctrl)
		h := NewShippingHandler(resolver, bands)

		band := entities.RegionalBand{Region: "litoral-sp", PrefixFrom: 110, PrefixTo: 119, BaseFee: 17, BaseDays: 2}
		bands.EXPECT().Put(gomock.Any(), band).Return(band, nil)

		r := gin.New()
		r.PUT("/v1/shipping/bands", h.PutBand)

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/bands",
			bytes.NewBufferString(`{"region":"litoral-sp","prefix_from":110,"prefix_to":119,"base_fee":17,"base_days":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
