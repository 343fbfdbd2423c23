package request

import (
	"encoding/json"
	"errors"
	"testing"

	"distrimed/internal/domain/entities"
)

func TestQuotationCreateRequest_ToEntity(t *testing.T) {
	r := QuotationCreateRequest{
		CustomerInfo: json.RawMessage(`{"id":"cus-1","name":"Ana"}`),
		Items: []QuotationItemRequest{
			{ProductID: " prd-1 ", Name: " Termômetro ", Quantity: 2, UnitPrice: 25},
			{Name: "Frete extra", Quantity: 1, UnitPrice: 10, Total: 10},
		},
		Discount:      5,
		PaymentMethod: " pix ",
	}

	q, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Items[0].ProductID != "prd-1" || q.Items[0].Name != "Termômetro" {
		t.Fatalf("expected trimmed fields: %+v", q.Items[0])
	}
	if q.Items[0].Total != 50 {
		t.Fatalf("expected computed line total 50, got %v", q.Items[0].Total)
	}
	if q.Items[1].Total != 10 {
		t.Fatalf("expected explicit line total kept, got %v", q.Items[1].Total)
	}
	if q.PaymentMethod != "pix" {
		t.Fatalf("expected trimmed payment method, got %q", q.PaymentMethod)
	}
	if string(q.CustomerInfo) != `{"id":"cus-1","name":"Ana"}` {
		t.Fatalf("customer blob must pass through untouched")
	}
}

func TestQuotationCreateRequest_ToEntityInvalid(t *testing.T) {
	if _, err := (QuotationCreateRequest{}).ToEntity(); !errors.Is(err, ErrInvalidQuotationPayload) {
		t.Fatalf("expected ErrInvalidQuotationPayload, got %v", err)
	}

	r := QuotationCreateRequest{Items: []QuotationItemRequest{{Name: "Luva", Quantity: 0}}}
	if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidQuotationPayload) {
		t.Fatalf("expected ErrInvalidQuotationPayload, got %v", err)
	}
}

func TestQuotationStatusRequest_ResolveStatus(t *testing.T) {
	r := QuotationStatusRequest{Status: " Accepted "}
	if got := r.ResolveStatus(); got != entities.QuotationStatusAccepted {
		t.Fatalf("expected accepted, got %q", got)
	}
}
