package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"distrimed/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoPreferenceGateway creates checkout preferences for converted
// orders. Preference creation is best-effort from the converter's point of
// view; this gateway only reports, never retries.

type MercadoPagoPreferenceGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPreferenceGateway = (*MercadoPagoPreferenceGateway)(nil)

func NewMercadoPagoPreferenceGateway(accessToken string) (*MercadoPagoPreferenceGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[preference][gateway] mock mode enabled")
		return &MercadoPagoPreferenceGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[preference][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[preference][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[preference][gateway] Mercado Pago client initialized")

	return &MercadoPagoPreferenceGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoPreferenceGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[preference][gateway] mock create success order_id=%s preference_id=%s", req.OrderID, id)
		return interfaces.PreferenceResult{PreferenceID: id}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[preference][gateway] gateway not configured")
		return interfaces.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[preference][gateway] create start order_id=%s items=%d", req.OrderID, len(req.Items))

	items := make([]preference.ItemRequest, 0, len(req.Items))
	for i, it := range req.Items {
		items = append(items, preference.ItemRequest{
			ID:         strconv.Itoa(i + 1),
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			PictureURL: it.PictureURL,
			CurrencyID: "BRL",
		})
	}

	sdkReq := preference.Request{
		ExternalReference: req.OrderID,
		Items:             items,
		Payer: &preference.PayerRequest{
			Name:  req.Buyer.Name,
			Email: req.Buyer.Email,
		},
	}
	if req.Buyer.Document != "" {
		sdkReq.Payer.Identification = &preference.IdentificationRequest{
			Type:   "CPF",
			Number: req.Buyer.Document,
		}
	}
	if req.ShippingCost > 0 {
		sdkReq.Shipments = &preference.ShipmentsRequest{
			Mode: "not_specified",
			Cost: req.ShippingCost,
		}
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[preference][gateway] sdk create failed order_id=%s err=%v", req.OrderID, err)
		return interfaces.PreferenceResult{}, err
	}
	log.Printf("[preference][gateway] create success order_id=%s preference_id=%s", req.OrderID, resp.ID)

	return interfaces.PreferenceResult{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
