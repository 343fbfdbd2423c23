package freight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"
)

// HTTPQuoteClient calls the external freight rate-quoting service.
//
// Expected contract:
//
//	POST {baseURL}/v1/quotes
//	{"origin_zip_code","destination_zip_code","parcel":{...}}
//	-> {"rates":[{"id","service_type","name","price","delivery_days"}]}
//
// Price tolerates both numbers and numeric strings; some carrier backends
// return one, some the other.

type HTTPQuoteClient struct {
	baseURL  string
	apiToken string
	mockMode bool
	httpc    *http.Client
}

var _ interfaces.IFreightQuoteGateway = (*HTTPQuoteClient)(nil)

func NewHTTPQuoteClient(baseURL, apiToken string) *HTTPQuoteClient {
	if baseURL == "" {
		baseURL = "http://localhost:9100"
	}
	mockMode := isFreightMockEnabled()
	if mockMode {
		log.Printf("[freight][client] mock mode enabled")
	}
	return &HTTPQuoteClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		mockMode: mockMode,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type quoteRateBody struct {
	ID           string     `json:"id"`
	ServiceType  string     `json:"service_type"`
	Name         string     `json:"name"`
	Price        looseFloat `json:"price"`
	DeliveryDays looseInt   `json:"delivery_days"`
}

type quoteResponseBody struct {
	Rates []quoteRateBody `json:"rates"`
}

func (c *HTTPQuoteClient) QuoteRates(ctx context.Context, req interfaces.FreightQuoteRequest) ([]entities.ShippingRate, error) {
	if c.mockMode {
		log.Printf("[freight][client] mock quote destination=%s", req.DestinationZipCode)
		return []entities.ShippingRate{
			{ID: "mock-sedex", ServiceType: "SEDEX", DisplayName: "SEDEX", Price: 31.9, DeliveryDays: 2, OriginZipCode: req.OriginZipCode, DestinationZipCode: req.DestinationZipCode},
			{ID: "mock-pac", ServiceType: "PAC", DisplayName: "PAC", Price: 19.5, DeliveryDays: 6, OriginZipCode: req.OriginZipCode, DestinationZipCode: req.DestinationZipCode},
		}, nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal quote request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/quotes", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("new quote request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("freight service http %d", resp.StatusCode)
	}

	var body quoteResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode quote response: %w", err)
	}

	rates := make([]entities.ShippingRate, 0, len(body.Rates))
	for _, r := range body.Rates {
		if r.DeliveryDays < 1 {
			log.Printf("[freight][client] dropping rate with invalid delivery days id=%s days=%d", r.ID, int(r.DeliveryDays))
			continue
		}
		rates = append(rates, entities.ShippingRate{
			ID:                 r.ID,
			ServiceType:        r.ServiceType,
			DisplayName:        r.Name,
			Price:              float64(r.Price),
			DeliveryDays:       int(r.DeliveryDays),
			OriginZipCode:      req.OriginZipCode,
			DestinationZipCode: req.DestinationZipCode,
		})
	}
	log.Printf("[freight][client] quote success destination=%s rates=%d", req.DestinationZipCode, len(rates))
	return rates, nil
}

func isFreightMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FREIGHT_SERVICE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// looseFloat decodes a JSON number or numeric string; anything else becomes 0.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}

// looseInt decodes a JSON integer, float, or numeric string.
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = looseInt(v)
	return nil
}
