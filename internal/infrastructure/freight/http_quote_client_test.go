package freight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"distrimed/internal/usecase/interfaces"
)

func TestHTTPQuoteClient_QuoteRates(t *testing.T) {
	t.Run("success with mixed price encodings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/quotes" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Fatalf("unexpected auth header %q", got)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("invalid request body: %v", err)
			}
			if body["destination_zip_code"] != "01310100" {
				t.Fatalf("unexpected destination %v", body["destination_zip_code"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"rates":[
				{"id":"sedex","service_type":"SEDEX","name":"SEDEX","price":"31.90","delivery_days":1},
				{"id":"pac","service_type":"PAC","name":"PAC","price":19.5,"delivery_days":"5"},
				{"id":"broken","service_type":"X","name":"X","price":10,"delivery_days":0}
			]}`))
		}))
		defer srv.Close()

		c := NewHTTPQuoteClient(srv.URL, "tok-1")
		rates, err := c.QuoteRates(context.Background(), interfaces.FreightQuoteRequest{
			OriginZipCode:      "04571010",
			DestinationZipCode: "01310100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rates) != 2 {
			t.Fatalf("expected 2 valid rates, got %d", len(rates))
		}
		if rates[0].Price != 31.90 || rates[0].DeliveryDays != 1 {
			t.Fatalf("unexpected first rate: %+v", rates[0])
		}
		if rates[1].Price != 19.5 || rates[1].DeliveryDays != 5 {
			t.Fatalf("unexpected second rate: %+v", rates[1])
		}
		if rates[0].OriginZipCode != "04571010" || rates[0].DestinationZipCode != "01310100" {
			t.Fatalf("expected request zips stamped onto rates: %+v", rates[0])
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewHTTPQuoteClient(srv.URL, "")
		if _, err := c.QuoteRates(context.Background(), interfaces.FreightQuoteRequest{DestinationZipCode: "01310100"}); err == nil {
			t.Fatalf("expected error for http 502")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":`))
		}))
		defer srv.Close()

		c := NewHTTPQuoteClient(srv.URL, "")
		if _, err := c.QuoteRates(context.Background(), interfaces.FreightQuoteRequest{DestinationZipCode: "01310100"}); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("mock mode skips the network", func(t *testing.T) {
		t.Setenv("FREIGHT_SERVICE_MOCK", "1")

		c := NewHTTPQuoteClient("http://unreachable.invalid", "")
		rates, err := c.QuoteRates(context.Background(), interfaces.FreightQuoteRequest{
			OriginZipCode:      "04571010",
			DestinationZipCode: "01310100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rates) != 2 || rates[0].ServiceType != "SEDEX" {
			t.Fatalf("unexpected mock rates: %+v", rates)
		}
		if rates[1].DestinationZipCode != "01310100" {
			t.Fatalf("expected request zips stamped onto mock rates: %+v", rates[1])
		}
	})

	t.Run("no auth header without token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "" {
				t.Fatalf("expected no auth header, got %q", got)
			}
			w.Write([]byte(`{"rates":[]}`))
		}))
		defer srv.Close()

		c := NewHTTPQuoteClient(srv.URL, "")
		rates, err := c.QuoteRates(context.Background(), interfaces.FreightQuoteRequest{DestinationZipCode: "01310100"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rates) != 0 {
			t.Fatalf("expected empty rate list, got %d", len(rates))
		}
	})
}
