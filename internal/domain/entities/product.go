package entities

// Product is the catalog record consulted during item enrichment.
//
// Storage model (DynamoDB):
//   - PK: id (string)
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	OmieCode *string `json:"omie_code,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Active   bool    `json:"active"`
}
