package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"
	mock_interfaces "distrimed/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestShippingResolverUseCase_QuoteToDestination(t *testing.T) {
	t.Run("invalid zip too short", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		_, err := uc.QuoteToDestination(context.Background(), "0131010", entities.ParcelMetrics{})
		if !errors.Is(err, ErrInvalidZipCode) {
			t.Fatalf("expected ErrInvalidZipCode, got %v", err)
		}
	})

	t.Run("invalid zip non numeric", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		_, err := uc.QuoteToDestination(context.Background(), "abcdefgh", entities.ParcelMetrics{})
		if !errors.Is(err, ErrInvalidZipCode) {
			t.Fatalf("expected ErrInvalidZipCode, got %v", err)
		}
	})

	t.Run("masked zip is normalized and accepted", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		rates, err := uc.QuoteToDestination(context.Background(), "01310-100", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rates) != 2 {
			t.Fatalf("expected 2 fallback rates, got %d", len(rates))
		}
		if rates[0].DestinationZipCode != "01310100" {
			t.Fatalf("expected normalized destination, got %s", rates[0].DestinationZipCode)
		}
	})

	t.Run("live rates returned verbatim and first auto-selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
		uc := NewShippingResolverUseCase(gateway, nil, "", "")

		live := []entities.ShippingRate{
			{ID: "live-1", ServiceType: "SEDEX", Price: 31.9, DeliveryDays: 1},
			{ID: "live-2", ServiceType: "PAC", Price: 19.5, DeliveryDays: 5},
		}
		gateway.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).Return(live, nil)

		rates, err := uc.QuoteToDestination(context.Background(), "01310100", entities.ParcelMetrics{WeightKg: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rates) != 2 || rates[0].ID != "live-1" || rates[1].ID != "live-2" {
			t.Fatalf("expected live rates verbatim, got %+v", rates)
		}

		selected, fee, deliveryDate := uc.Selection()
		if selected == nil || selected.ID != "live-1" {
			t.Fatalf("expected first live rate selected, got %+v", selected)
		}
		if fee != 31.9 {
			t.Fatalf("expected fee 31.9, got %v", fee)
		}
		if deliveryDate == nil {
			t.Fatalf("expected delivery date for 1-day rate")
		}
	})

	t.Run("gateway error falls back to regional bands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
		uc := NewShippingResolverUseCase(gateway, nil, "", "")

		gateway.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		rates, err := uc.QuoteToDestination(context.Background(), "01310100", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("expected no error on fallback, got %v", err)
		}
		if len(rates) != 2 {
			t.Fatalf("expected express+economy, got %d rates", len(rates))
		}
		// Prefix 013 lands in sp-capital (15 / 2 days).
		express, economy := rates[0], rates[1]
		if express.ServiceType != "SEDEX" || express.Price != 25 || express.DeliveryDays != 2 {
			t.Fatalf("unexpected express rate: %+v", express)
		}
		if economy.ServiceType != "PAC" || economy.Price != 15 || economy.DeliveryDays != 4 {
			t.Fatalf("unexpected economy rate: %+v", economy)
		}
		if express.Price != economy.Price+10 {
			t.Fatalf("express must cost economy+10, got %v vs %v", express.Price, economy.Price)
		}
		if express.DeliveryDays != economy.DeliveryDays-2 {
			t.Fatalf("express must be 2 days faster, got %d vs %d", express.DeliveryDays, economy.DeliveryDays)
		}
	})

	t.Run("empty live result falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
		uc := NewShippingResolverUseCase(gateway, nil, "", "")

		gateway.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).Return([]entities.ShippingRate{}, nil)

		rates, err := uc.QuoteToDestination(context.Background(), "60000000", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Prefix 600 lands in ce-pi-ma (30 / 8 days).
		if rates[0].Price != 40 || rates[1].Price != 30 {
			t.Fatalf("unexpected fallback fees: %v / %v", rates[0].Price, rates[1].Price)
		}
	})

	t.Run("residual band covers uncatalogued prefixes", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		rates, err := uc.QuoteToDestination(context.Background(), "70000000", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Prefix 700 is centro-oeste (22 / 5 days).
		if rates[0].Price != 32 || rates[0].DeliveryDays != 5 {
			t.Fatalf("unexpected residual express: %+v", rates[0])
		}
		if rates[1].Price != 22 || rates[1].DeliveryDays != 7 {
			t.Fatalf("unexpected residual economy: %+v", rates[1])
		}
	})

	t.Run("same prefix always resolves to the same band", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		first, err := uc.QuoteToDestination(context.Background(), "30140071", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.QuoteToDestination(context.Background(), "30199999", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first[0].Price != second[0].Price || first[1].DeliveryDays != second[1].DeliveryDays {
			t.Fatalf("same prefix must quote identically: %+v vs %+v", first, second)
		}
	})

	t.Run("cheapest policy selects lowest price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
		uc := NewShippingResolverUseCase(gateway, nil, SelectionPolicyCheapest, "")

		gateway.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).Return([]entities.ShippingRate{
			{ID: "exp", ServiceType: "SEDEX", Price: 40, DeliveryDays: 1},
			{ID: "eco", ServiceType: "PAC", Price: 18, DeliveryDays: 6},
		}, nil)

		if _, err := uc.QuoteToDestination(context.Background(), "01310100", entities.ParcelMetrics{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		selected, fee, _ := uc.Selection()
		if selected == nil || selected.ID != "eco" || fee != 18 {
			t.Fatalf("expected cheapest rate selected, got %+v fee=%v", selected, fee)
		}
	})

	t.Run("custom bands override defaults", func(t *testing.T) {
		bands := []entities.RegionalBand{
			{Region: "test-only", PrefixFrom: 0, PrefixTo: 999, BaseFee: 50, BaseDays: 1},
		}
		uc := NewShippingResolverUseCase(nil, bands, "", "")
		rates, err := uc.QuoteToDestination(context.Background(), "01310100", entities.ParcelMetrics{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates[0].Price != 60 || rates[1].Price != 50 {
			t.Fatalf("expected custom band fees, got %v / %v", rates[0].Price, rates[1].Price)
		}
	})

	t.Run("origin zip propagated to gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
		uc := NewShippingResolverUseCase(gateway, nil, "", "01001-000")

		gateway.EXPECT().
			QuoteRates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.FreightQuoteRequest) ([]entities.ShippingRate, error) {
				if req.OriginZipCode != "01001000" {
					t.Fatalf("expected normalized origin, got %s", req.OriginZipCode)
				}
				if req.DestinationZipCode != "20040030" {
					t.Fatalf("expected normalized destination, got %s", req.DestinationZipCode)
				}
				return []entities.ShippingRate{{ID: "r", Price: 10, DeliveryDays: 3}}, nil
			})

		if _, err := uc.QuoteToDestination(context.Background(), "20040-030", entities.ParcelMetrics{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestShippingResolverUseCase_SelectRate(t *testing.T) {
	t.Run("selection recomputes fee and delivery date", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")

		before := time.Now().UTC()
		uc.SelectRate(entities.ShippingRate{ID: "r1", Price: 27.5, DeliveryDays: 3})

		selected, fee, deliveryDate := uc.Selection()
		if selected == nil || selected.ID != "r1" {
			t.Fatalf("expected r1 selected, got %+v", selected)
		}
		if fee != 27.5 {
			t.Fatalf("expected fee 27.5, got %v", fee)
		}
		if deliveryDate == nil {
			t.Fatalf("expected delivery date")
		}
		want := before.AddDate(0, 0, 3)
		if deliveryDate.Before(want.Add(-time.Minute)) || deliveryDate.After(want.Add(time.Minute)) {
			t.Fatalf("delivery date out of range: %v", deliveryDate)
		}
	})

	t.Run("invalid price coerces fee to zero", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		uc.SelectRate(entities.ShippingRate{ID: "bad", Price: -3, DeliveryDays: 2})

		selected, fee, _ := uc.Selection()
		if selected == nil || fee != 0 {
			t.Fatalf("expected zero fee for negative price, got %v", fee)
		}
	})

	t.Run("non-positive delivery days leaves no delivery date", func(t *testing.T) {
		uc := NewShippingResolverUseCase(nil, nil, "", "")
		uc.SelectRate(entities.ShippingRate{ID: "r", Price: 10, DeliveryDays: 0})

		selected, fee, deliveryDate := uc.Selection()
		if selected == nil || fee != 10 {
			t.Fatalf("expected selection with fee 10, got %v", fee)
		}
		if deliveryDate != nil {
			t.Fatalf("expected nil delivery date, got %v", deliveryDate)
		}
	})
}

func TestShippingResolverUseCase_Reset(t *testing.T) {
	uc := NewShippingResolverUseCase(nil, nil, "", "")
	if _, err := uc.QuoteToDestination(context.Background(), "01310100", entities.ParcelMetrics{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selected, _, _ := uc.Selection(); selected == nil {
		t.Fatalf("expected auto-selection after quote")
	}

	uc.Reset()

	selected, fee, deliveryDate := uc.Selection()
	if selected != nil || fee != 0 || deliveryDate != nil {
		t.Fatalf("expected cleared state, got %+v fee=%v date=%v", selected, fee, deliveryDate)
	}
	if rates := uc.Rates(); len(rates) != 0 {
		t.Fatalf("expected empty rate list, got %d", len(rates))
	}
}

func TestShippingResolverUseCase_StaleQuoteDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIFreightQuoteGateway(ctrl)
	uc := NewShippingResolverUseCase(gateway, nil, "", "")

	// Simulate two in-flight requests: the older one acquires its token first
	// but applies last. Its result must not overwrite the newer rate list.
	oldToken := uc.nextToken()
	newToken := uc.nextToken()

	gateway.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).Times(0)

	uc.applyQuote(newToken, []entities.ShippingRate{{ID: "new", Price: 12, DeliveryDays: 3}})
	uc.applyQuote(oldToken, []entities.ShippingRate{{ID: "old", Price: 99, DeliveryDays: 9}})

	rates := uc.Rates()
	if len(rates) != 1 || rates[0].ID != "new" {
		t.Fatalf("expected newer rates to win, got %+v", rates)
	}
	selected, fee, _ := uc.Selection()
	if selected == nil || selected.ID != "new" || fee != 12 {
		t.Fatalf("expected newer selection to win, got %+v fee=%v", selected, fee)
	}
}

func TestNormalizeZipCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01310-100", "01310100"},
		{" 01310100 ", "01310100"},
		{"01.310-100", "01310100"},
		{"abc", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeZipCode(c.in); got != c.want {
			t.Fatalf("NormalizeZipCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
