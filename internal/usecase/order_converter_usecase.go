package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuotationID        = errors.New("invalid quotation id")
	ErrQuotationNotFound         = errors.New("quotation not found")
	ErrQuotationAlreadyConverted = errors.New("quotation already converted")
	ErrCustomerNotResolved       = errors.New("customer not found for this quotation")
)

const defaultPaymentLinkBaseURL = "https://loja.distrimed.com.br"

// IOrderConverterUseCase encapsulates the quotation-to-order conversion
// pipeline.
//
// Requested behavior:
//   - convert an accepted quotation into a persisted order exactly once
//   - auxiliary side effects (payment preference, notification, workflow)
//     are best-effort and never abort the conversion.

type IOrderConverterUseCase interface {
	ConvertToOrder(ctx context.Context, quotationID string) (entities.Order, error)
}

type OrderConverterUseCase struct {
	quotations    interfaces.IQuotationRepository
	orders        interfaces.IOrderRepository
	products      interfaces.IProductRepository
	notifications interfaces.INotificationRepository
	preferences   interfaces.IPreferenceGateway
	workflows     interfaces.IWorkflowTrigger

	paymentLinkBaseURL string
}

var _ IOrderConverterUseCase = (*OrderConverterUseCase)(nil)

func NewOrderConverterUseCase(
	quotations interfaces.IQuotationRepository,
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	notifications interfaces.INotificationRepository,
	preferences interfaces.IPreferenceGateway,
	workflows interfaces.IWorkflowTrigger,
	paymentLinkBaseURL string,
) *OrderConverterUseCase {
	if strings.TrimSpace(paymentLinkBaseURL) == "" {
		paymentLinkBaseURL = defaultPaymentLinkBaseURL
	}
	return &OrderConverterUseCase{
		quotations:         quotations,
		orders:             orders,
		products:           products,
		notifications:      notifications,
		preferences:        preferences,
		workflows:          workflows,
		paymentLinkBaseURL: strings.TrimRight(paymentLinkBaseURL, "/"),
	}
}

// ConvertToOrder runs the conversion stages in order:
//
//	load & guard -> item enrichment -> customer extraction ->
//	shipping extraction -> order insert -> preference (best-effort) ->
//	notification (best-effort) -> workflow (best-effort) -> status update
//
// The order insert is the first mutating call; a failure before or at that
// point leaves no partial state. A failure of the final status update is
// surfaced even though the order already exists; a retry then finds the
// order through the quotation index, re-applies the status update and returns
// the existing order instead of duplicating it.
func (u *OrderConverterUseCase) ConvertToOrder(ctx context.Context, quotationID string) (entities.Order, error) {
	quotationID = strings.TrimSpace(quotationID)
	log.Printf("[converter][usecase] convert start quotation_id=%s", quotationID)
	if quotationID == "" {
		return entities.Order{}, ErrInvalidQuotationID
	}
	if u.quotations == nil || u.orders == nil {
		return entities.Order{}, errors.New("order converter not configured")
	}

	// Stage 1: load & guard.
	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[converter][usecase] quotation load failed quotation_id=%s err=%v", quotationID, err)
		return entities.Order{}, err
	}
	if q.ID == "" {
		log.Printf("[converter][usecase] quotation not found quotation_id=%s", quotationID)
		return entities.Order{}, ErrQuotationNotFound
	}
	if q.Status == entities.QuotationStatusConverted {
		log.Printf("[converter][usecase] quotation already converted quotation_id=%s", quotationID)
		return entities.Order{}, ErrQuotationAlreadyConverted
	}

	// Stage 1b: crash repair. An order left behind by a run that died before
	// the status update means the conversion already happened; finish it.
	if existing, lookErr := u.orders.GetByQuotationID(ctx, quotationID); lookErr != nil {
		log.Printf("[converter][usecase] existing-order lookup failed quotation_id=%s err=%v", quotationID, lookErr)
	} else if existing.ID != "" {
		log.Printf("[converter][usecase] repairing interrupted conversion quotation_id=%s order_id=%s", quotationID, existing.ID)
		if err := u.markConverted(ctx, quotationID); err != nil {
			return entities.Order{}, err
		}
		return existing, nil
	}

	// Stage 2: item enrichment (per-item degradation, never aborts).
	items := u.enrichItems(ctx, q.Items)

	// Stage 3: customer extraction (hard precondition).
	cust, ok := decodeCustomerSnapshot(q.CustomerInfo)
	if !ok || strings.TrimSpace(string(cust.ID)) == "" || strings.TrimSpace(string(cust.Name)) == "" {
		log.Printf("[converter][usecase] customer not resolved quotation_id=%s", quotationID)
		return entities.Order{}, ErrCustomerNotResolved
	}

	// Stage 4: shipping extraction (degrades to zero cost).
	shipping := decodeShippingSnapshot(q.ShippingInfo)

	// Stage 5: order insert (fatal on failure; first and only primary mutation).
	now := time.Now().UTC()
	order := entities.Order{
		ID:            uuid.NewString(),
		QuotationID:   q.ID,
		CustomerID:    string(cust.ID),
		Items:         items,
		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		Total:         q.Total,
		ShippingFee:   float64(shipping.Cost),
		PaymentMethod: q.PaymentMethod,
		Status:        entities.OrderStatusPending,
		OmieStatus:    entities.OmieStatusNovo,
		Address: entities.ShippingAddress{
			Name:         string(cust.Name),
			Address:      string(cust.Address),
			City:         string(cust.City),
			State:        string(cust.State),
			ZipCode:      string(cust.ZipCode),
			Neighborhood: string(cust.Neighborhood),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[converter][usecase] order insert failed quotation_id=%s err=%v", quotationID, err)
		return entities.Order{}, err
	}
	log.Printf("[converter][usecase] order created quotation_id=%s order_id=%s total=%.2f", quotationID, created.ID, created.Total)

	// Stage 6: payment preference (best-effort).
	paymentLink := u.createPreference(ctx, &created, cust)

	// Stage 7: customer notification (best-effort).
	u.notifyCustomer(ctx, created)

	// Stage 8: workflow trigger (best-effort).
	u.triggerWorkflow(ctx, created, cust, paymentLink)

	// Stage 9: quotation status update (failure surfaces; order stays).
	if err := u.markConverted(ctx, quotationID); err != nil {
		return entities.Order{}, err
	}

	log.Printf("[converter][usecase] convert success quotation_id=%s order_id=%s", quotationID, created.ID)
	return created, nil
}

func (u *OrderConverterUseCase) markConverted(ctx context.Context, quotationID string) error {
	updated, err := u.quotations.UpdateStatus(ctx, quotationID, entities.QuotationStatusConverted)
	if err != nil {
		log.Printf("[converter][usecase] quotation status update failed quotation_id=%s err=%v", quotationID, err)
		return fmt.Errorf("mark quotation converted: %w", err)
	}
	if updated.ID == "" {
		log.Printf("[converter][usecase] quotation vanished during conversion quotation_id=%s", quotationID)
		return ErrQuotationNotFound
	}
	return nil
}

// enrichItems re-fetches the catalog record for every line that carries a
// product reference, concurrently (lookups are independent). A failed or
// empty lookup degrades that line to "catalog code unknown"; the line itself
// is always kept. The stored snapshot name wins over the catalog name.
func (u *OrderConverterUseCase) enrichItems(ctx context.Context, items []entities.QuotationItem) []entities.OrderItem {
	out := make([]entities.OrderItem, len(items))
	var wg sync.WaitGroup
	for i, it := range items {
		out[i] = entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		}
		productID := strings.TrimSpace(it.ProductID)
		if u.products == nil || productID == "" {
			continue
		}
		wg.Add(1)
		go func(i int, productID string) {
			defer wg.Done()
			p, err := u.products.GetByID(ctx, productID)
			if err != nil {
				log.Printf("[converter][usecase] product lookup failed product_id=%s err=%v", productID, err)
				return
			}
			if p.ID == "" {
				log.Printf("[converter][usecase] product no longer in catalog product_id=%s", productID)
				return
			}
			out[i].OmieCode = p.OmieCode
			out[i].ImageURL = p.ImageURL
			if strings.TrimSpace(out[i].Name) == "" {
				out[i].Name = p.Name
			}
			if out[i].UnitPrice == 0 {
				out[i].UnitPrice = p.Price
			}
		}(i, productID)
	}
	wg.Wait()
	return out
}

// createPreference attempts the external checkout preference and patches its
// id onto the order. Every failure is logged and swallowed; the returned
// payment link falls back to the constructed store URL.
func (u *OrderConverterUseCase) createPreference(ctx context.Context, order *entities.Order, cust customerSnapshot) string {
	paymentLink := fmt.Sprintf("%s/checkout/pagamento?pedido=%s", u.paymentLinkBaseURL, order.ID)
	if u.preferences == nil {
		log.Printf("[converter][usecase] preference gateway not configured order_id=%s", order.ID)
		return paymentLink
	}

	req := interfaces.PreferenceRequest{
		OrderID:      order.ID,
		ShippingCost: order.ShippingFee,
		Buyer: interfaces.PreferenceBuyer{
			Name:     string(cust.Name),
			Email:    string(cust.Email),
			Document: string(cust.Document),
		},
	}
	if req.Buyer.Name == "" {
		req.Buyer.Name = "Cliente Distrimed"
	}
	if req.Buyer.Email == "" {
		req.Buyer.Email = "atendimento@distrimed.com.br"
	}
	for _, it := range order.Items {
		req.Items = append(req.Items, interfaces.PreferenceItem{
			Title:      it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			PictureURL: it.ImageURL,
		})
	}

	res, err := u.preferences.CreatePreference(ctx, req)
	if err != nil {
		log.Printf("[converter][usecase] preference creation failed order_id=%s err=%v", order.ID, err)
		return paymentLink
	}

	patched, err := u.orders.UpdatePreferenceID(ctx, order.ID, res.PreferenceID)
	if err != nil {
		log.Printf("[converter][usecase] preference id patch failed order_id=%s preference_id=%s err=%v", order.ID, res.PreferenceID, err)
	} else if patched.ID != "" {
		*order = patched
	}

	if res.InitPoint != "" {
		return res.InitPoint
	}
	return paymentLink
}

func (u *OrderConverterUseCase) notifyCustomer(ctx context.Context, order entities.Order) {
	if u.notifications == nil {
		return
	}
	_, err := u.notifications.Create(ctx, entities.Notification{
		ID:        uuid.NewString(),
		UserID:    order.CustomerID,
		Type:      entities.NotificationTypePayment,
		Content:   fmt.Sprintf("Seu pedido %s foi criado e está aguardando pagamento.", order.ID),
		Status:    entities.NotificationStatusPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[converter][usecase] notification insert failed order_id=%s err=%v", order.ID, err)
	}
}

func (u *OrderConverterUseCase) triggerWorkflow(ctx context.Context, order entities.Order, cust customerSnapshot, paymentLink string) {
	if u.workflows == nil {
		return
	}
	err := u.workflows.TriggerOrderCreated(ctx, interfaces.OrderCreatedEvent{
		OrderID:       order.ID,
		CustomerName:  string(cust.Name),
		CustomerEmail: string(cust.Email),
		CustomerPhone: string(cust.Phone),
		Total:         order.Total,
		PaymentLink:   paymentLink,
		PaymentMethod: order.PaymentMethod,
	})
	if err != nil {
		log.Printf("[converter][usecase] workflow trigger failed order_id=%s err=%v", order.ID, err)
	}
}
