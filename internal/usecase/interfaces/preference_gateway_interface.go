package interfaces

import "context"

// PreferenceItem is one checkout line sent to the payment provider.
type PreferenceItem struct {
	Title      string
	Quantity   int
	UnitPrice  float64
	PictureURL string
}

// PreferenceBuyer identifies the payer. Blank fields are acceptable; the
// gateway fills provider-side safe defaults.
type PreferenceBuyer struct {
	Name     string
	Email    string
	Document string
}

// PreferenceRequest is the payment-preference creation input. OrderID becomes
// the provider external reference.
type PreferenceRequest struct {
	OrderID      string
	Items        []PreferenceItem
	ShippingCost float64
	Buyer        PreferenceBuyer
}

// PreferenceResult carries the provider ids the converter persists/links.
type PreferenceResult struct {
	PreferenceID string
	InitPoint    string
}

// IPreferenceGateway abstracts external checkout-preference providers
// (e.g. Mercado Pago). Callers treat failures as best-effort.
type IPreferenceGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResult, error)
}
