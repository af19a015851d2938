package models

// Sentinel values applied by the catalog loader when a source record
// omits a field. The query path only ever sees the normalized shape.
const (
	PlaceholderText  = "—"
	PlaceholderImage = "/images/placeholder.jpg"
)

// Product represents one normalized catalog entry. Records are created by
// the catalog loader, held in an immutable snapshot, and never mutated.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	PriceCents  int      `json:"price_cents"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Usage       string   `json:"usage,omitempty"`
	Tags        []string `json:"tags"`
	Benefits    []string `json:"benefits"`
	Ingredients []string `json:"ingredients"`
}
