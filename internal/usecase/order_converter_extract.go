package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The CRM front end persists customer and shipping snapshots as loose JSON
// blobs. These decoders are the single validation point at the store
// boundary: they produce a typed value or an explicit decode error instead of
// null-coalescing scattered through the pipeline.

// flexFloat accepts a JSON number, a numeric string, or null. Anything else
// decodes to 0 without failing the enclosing document.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexString accepts a JSON string or number; anything else decodes to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*f = ""
			return nil
		}
		*f = flexString(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = flexString(n.String())
	return nil
}

// customerSnapshot is the decoded customer_info blob.
type customerSnapshot struct {
	ID           flexString `json:"id"`
	Name         flexString `json:"name"`
	Email        flexString `json:"email"`
	Phone        flexString `json:"phone"`
	Document     flexString `json:"document"`
	Address      flexString `json:"address"`
	City         flexString `json:"city"`
	State        flexString `json:"state"`
	ZipCode      flexString `json:"zip_code"`
	Neighborhood flexString `json:"neighborhood"`
}

// decodeCustomerSnapshot parses the embedded customer blob. A missing blob or
// malformed JSON yields ok=false; id/name presence is checked by the caller
// (it is a hard conversion precondition, the rest of the fields are not).
func decodeCustomerSnapshot(raw json.RawMessage) (customerSnapshot, bool) {
	if len(raw) == 0 || !json.Valid(raw) {
		return customerSnapshot{}, false
	}
	var c customerSnapshot
	if err := json.Unmarshal(raw, &c); err != nil {
		return customerSnapshot{}, false
	}
	return c, true
}

// shippingSnapshot is the decoded shipping_info blob. Cost tolerates both
// numbers and numeric strings because older quotations stored it either way.
type shippingSnapshot struct {
	Cost          flexFloat  `json:"cost"`
	Method        flexString `json:"method"`
	Carrier       flexString `json:"carrier"`
	EstimatedDays flexFloat  `json:"estimated_days"`
}

// decodeShippingSnapshot parses the embedded shipping blob. Missing shipping
// info is not an error: it degrades to a zero-cost snapshot.
func decodeShippingSnapshot(raw json.RawMessage) shippingSnapshot {
	if len(raw) == 0 || !json.Valid(raw) {
		return shippingSnapshot{}
	}
	var s shippingSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return shippingSnapshot{}
	}
	if s.Cost < 0 {
		s.Cost = 0
	}
	return s
}
