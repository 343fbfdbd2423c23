package interfaces

import "context"

// OrderCreatedEvent is the payload handed to the automation platform when a
// quotation converts into an order.
type OrderCreatedEvent struct {
	OrderID       string  `json:"order_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Total         float64 `json:"total"`
	PaymentLink   string  `json:"payment_link"`
	PaymentMethod string  `json:"payment_method"`
}

// IWorkflowTrigger abstracts the external workflow/automation webhook.
// Invocations are fire-and-forget from the domain's point of view; failures
// are logged by the caller and never surfaced.
type IWorkflowTrigger interface {
	TriggerOrderCreated(ctx context.Context, evt OrderCreatedEvent) error
}
