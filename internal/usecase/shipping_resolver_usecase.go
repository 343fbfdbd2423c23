package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"
)

var (
	ErrInvalidZipCode = errors.New("invalid destination zip code")
)

// SelectionPolicy names the rule used to auto-select a rate after a quote.
// The product default is "first returned wins"; cheapest-first is available
// without touching call sites.
type SelectionPolicy string

const (
	SelectionPolicyFirst    SelectionPolicy = "first"
	SelectionPolicyCheapest SelectionPolicy = "cheapest"
)

const fallbackExpressSurcharge = 10.0

// IShippingResolverUseCase exposes shipping-rate resolution and the current
// selection state.
//
// Requested behavior:
//   - quote live rates for a destination, degrading to the regional
//     estimation table when the freight service errors or returns nothing
//   - keep selection, fee and delivery date mutually consistent at all times

type IShippingResolverUseCase interface {
	QuoteToDestination(ctx context.Context, destinationZip string, parcel entities.ParcelMetrics) ([]entities.ShippingRate, error)
	SelectRate(rate entities.ShippingRate)
	Selection() (selected *entities.ShippingRate, shippingFee float64, deliveryDate *time.Time)
	Rates() []entities.ShippingRate
	Reset()
}

type ShippingResolverUseCase struct {
	gateway   interfaces.IFreightQuoteGateway
	bands     []entities.RegionalBand
	policy    SelectionPolicy
	originZip string

	mu           sync.Mutex
	seq          uint64
	appliedSeq   uint64
	rates        []entities.ShippingRate
	selected     *entities.ShippingRate
	shippingFee  float64
	deliveryDate *time.Time
}

var _ IShippingResolverUseCase = (*ShippingResolverUseCase)(nil)

// NewShippingResolverUseCase builds a resolver. A nil/empty band list falls
// back to the compiled defaults; an empty policy falls back to
// SelectionPolicyFirst. Bands are copied and immutable afterwards, so regional
// banding stays a pure function of the zip prefix for the resolver's lifetime.
func NewShippingResolverUseCase(gateway interfaces.IFreightQuoteGateway, bands []entities.RegionalBand, policy SelectionPolicy, originZip string) *ShippingResolverUseCase {
	if len(bands) == 0 {
		bands = DefaultRegionalBands()
	} else {
		bands = append([]entities.RegionalBand(nil), bands...)
	}
	if policy == "" {
		policy = SelectionPolicyFirst
	}
	if strings.TrimSpace(originZip) == "" {
		originZip = defaultOriginZipCode
	}
	return &ShippingResolverUseCase{
		gateway:   gateway,
		bands:     bands,
		policy:    policy,
		originZip: NormalizeZipCode(originZip),
	}
}

// QuoteToDestination resolves the rate set for a destination. It returns
// ErrInvalidZipCode only when the destination does not normalize to 8 digits;
// every freight-service failure is absorbed by the regional fallback, never
// surfaced. The shared rate list and auto-selection are updated unless a newer
// request already applied its result (stale responses lose).
func (u *ShippingResolverUseCase) QuoteToDestination(ctx context.Context, destinationZip string, parcel entities.ParcelMetrics) ([]entities.ShippingRate, error) {
	dest := NormalizeZipCode(destinationZip)
	if len(dest) != 8 {
		log.Printf("[shipping][usecase] invalid destination zip raw=%q normalized=%q", destinationZip, dest)
		return nil, ErrInvalidZipCode
	}

	token := u.nextToken()

	rates := u.quoteLive(ctx, dest, parcel)
	if len(rates) == 0 {
		rates = u.fallbackRates(dest)
		log.Printf("[shipping][usecase] fallback rates synthesized destination=%s count=%d", dest, len(rates))
	}

	u.applyQuote(token, rates)
	return rates, nil
}

func (u *ShippingResolverUseCase) quoteLive(ctx context.Context, dest string, parcel entities.ParcelMetrics) []entities.ShippingRate {
	if u.gateway == nil {
		log.Printf("[shipping][usecase] freight gateway not configured; using fallback")
		return nil
	}

	rates, err := u.gateway.QuoteRates(ctx, interfaces.FreightQuoteRequest{
		OriginZipCode:      u.originZip,
		DestinationZipCode: dest,
		Parcel:             parcel,
	})
	if err != nil {
		log.Printf("[shipping][usecase] freight quote failed destination=%s err=%v", dest, err)
		return nil
	}
	if len(rates) == 0 {
		log.Printf("[shipping][usecase] freight quote returned no rates destination=%s", dest)
		return nil
	}
	log.Printf("[shipping][usecase] freight quote success destination=%s count=%d", dest, len(rates))
	return rates
}

func (u *ShippingResolverUseCase) nextToken() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.seq++
	return u.seq
}

// applyQuote writes the quote result into the shared state, guarded by the
// request token: an older request observing a newer applied token is stale
// and must not overwrite the fresher rate list.
func (u *ShippingResolverUseCase) applyQuote(token uint64, rates []entities.ShippingRate) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if token < u.appliedSeq {
		log.Printf("[shipping][usecase] stale quote dropped token=%d applied=%d", token, u.appliedSeq)
		return
	}
	u.appliedSeq = token
	u.rates = rates

	if len(rates) == 0 {
		u.clearSelectionLocked()
		return
	}
	u.selectRateLocked(pickDefaultRate(rates, u.policy))
}

func pickDefaultRate(rates []entities.ShippingRate, policy SelectionPolicy) entities.ShippingRate {
	if policy == SelectionPolicyCheapest {
		cheapest := rates[0]
		for _, r := range rates[1:] {
			if r.Price < cheapest.Price {
				cheapest = r
			}
		}
		return cheapest
	}
	return rates[0]
}

// SelectRate sets the current selection and synchronously recomputes the
// derived fee and delivery date. There is no state where they diverge.
func (u *ShippingResolverUseCase) SelectRate(rate entities.ShippingRate) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.selectRateLocked(rate)
}

func (u *ShippingResolverUseCase) selectRateLocked(rate entities.ShippingRate) {
	u.selected = &rate
	u.shippingFee = coerceFee(rate.Price)

	if rate.DeliveryDays < 1 {
		u.deliveryDate = nil
		return
	}
	d := time.Now().UTC().AddDate(0, 0, rate.DeliveryDays)
	u.deliveryDate = &d
}

// Selection returns a consistent snapshot of (selected rate, fee, delivery date).
func (u *ShippingResolverUseCase) Selection() (*entities.ShippingRate, float64, *time.Time) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var sel *entities.ShippingRate
	if u.selected != nil {
		cp := *u.selected
		sel = &cp
	}
	var date *time.Time
	if u.deliveryDate != nil {
		cp := *u.deliveryDate
		date = &cp
	}
	return sel, u.shippingFee, date
}

func (u *ShippingResolverUseCase) Rates() []entities.ShippingRate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]entities.ShippingRate(nil), u.rates...)
}

// Reset clears selection, rate list, fee and delivery date together; there is
// no partial-reset path.
func (u *ShippingResolverUseCase) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rates = nil
	u.clearSelectionLocked()
}

func (u *ShippingResolverUseCase) clearSelectionLocked() {
	u.selected = nil
	u.shippingFee = 0
	u.deliveryDate = nil
}

func coerceFee(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

// NormalizeZipCode strips every non-digit character from a CEP.
func NormalizeZipCode(zip string) string {
	var b strings.Builder
	for _, r := range zip {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

const defaultOriginZipCode = "04571010"

// DefaultRegionalBands is the compiled estimation table: inclusive 3-digit CEP
// prefix ranges mapped to a base fee and lead time. Centro-Oeste is the
// residual band for every prefix not covered by an earlier range.
func DefaultRegionalBands() []entities.RegionalBand {
	return []entities.RegionalBand{
		{Region: "sp-capital", PrefixFrom: 10, PrefixTo: 59, BaseFee: 15, BaseDays: 2},
		{Region: "sp-interior", PrefixFrom: 60, PrefixTo: 199, BaseFee: 18, BaseDays: 3},
		{Region: "rj-es", PrefixFrom: 200, PrefixTo: 299, BaseFee: 20, BaseDays: 3},
		{Region: "mg", PrefixFrom: 300, PrefixTo: 399, BaseFee: 20, BaseDays: 4},
		{Region: "ba-se", PrefixFrom: 400, PrefixTo: 499, BaseFee: 25, BaseDays: 6},
		{Region: "nordeste", PrefixFrom: 500, PrefixTo: 599, BaseFee: 28, BaseDays: 7},
		{Region: "ce-pi-ma", PrefixFrom: 600, PrefixTo: 659, BaseFee: 30, BaseDays: 8},
		{Region: "norte", PrefixFrom: 660, PrefixTo: 699, BaseFee: 35, BaseDays: 10},
	}
}

var residualBand = entities.RegionalBand{Region: "centro-oeste", BaseFee: 22, BaseDays: 5}

// bandForPrefix resolves the regional band for a 3-digit CEP prefix. Same
// prefix, same band, always.
func (u *ShippingResolverUseCase) bandForPrefix(prefix int) entities.RegionalBand {
	for _, b := range u.bands {
		if prefix >= b.PrefixFrom && prefix <= b.PrefixTo {
			return b
		}
	}
	return residualBand
}

// fallbackRates synthesizes the two-option degraded quote for a normalized
// 8-digit destination: express at baseFee+10/baseDays and economy at
// baseFee/baseDays+2, express first (it is the policy default).
func (u *ShippingResolverUseCase) fallbackRates(dest string) []entities.ShippingRate {
	prefix, _ := strconv.Atoi(dest[:3])
	band := u.bandForPrefix(prefix)

	return []entities.ShippingRate{
		{
			ID:                 fmt.Sprintf("fallback-express-%s", band.Region),
			ServiceType:        "SEDEX",
			DisplayName:        "SEDEX (estimado)",
			Price:              band.BaseFee + fallbackExpressSurcharge,
			DeliveryDays:       band.BaseDays,
			OriginZipCode:      u.originZip,
			DestinationZipCode: dest,
		},
		{
			ID:                 fmt.Sprintf("fallback-economy-%s", band.Region),
			ServiceType:        "PAC",
			DisplayName:        "PAC (estimado)",
			Price:              band.BaseFee,
			DeliveryDays:       band.BaseDays + 2,
			OriginZipCode:      u.originZip,
			DestinationZipCode: dest,
		},
	}
}
