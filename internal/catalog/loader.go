package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/luminous-shop/catalog-api/internal/models"
)

// rawProduct tolerates the field shapes found in real catalog files:
// price as a dollar number, a "$12.99" string, or an integer cent count;
// tags either as an array or a ";"/"," separated string.
type rawProduct struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Brand       string          `json:"brand"`
	Vendor      string          `json:"vendor"`
	Category    string          `json:"category"`
	Price       json.RawMessage `json:"price"`
	PriceCents  json.RawMessage `json:"price_cents"`
	PriceCents2 json.RawMessage `json:"priceCents"`
	Image       string          `json:"image"`
	Images      []string        `json:"images"`
	Description string          `json:"description"`
	Usage       string          `json:"usage"`
	Tags        json.RawMessage `json:"tags"`
	Keywords    json.RawMessage `json:"keywords"`
	Benefits    []string        `json:"benefits"`
	Ingredients []string        `json:"ingredients"`
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ParseCatalog decodes a raw catalog JSON document (a bare array, or an
// object with an "items" array) into normalized product records. Records
// without a name are dropped; duplicate ids keep the first occurrence.
func ParseCatalog(data []byte) ([]models.Product, error) {
	var arr []rawProduct
	if err := json.Unmarshal(data, &arr); err != nil {
		var envelope struct {
			Items []rawProduct `json:"items"`
		}
		if err2 := json.Unmarshal(data, &envelope); err2 != nil || envelope.Items == nil {
			return nil, fmt.Errorf("catalog is neither an array nor an items envelope: %w", err)
		}
		arr = envelope.Items
	}

	products := make([]models.Product, 0, len(arr))
	seen := make(map[string]bool, len(arr))
	dropped := 0
	for _, r := range arr {
		p, ok := normalize(r)
		if !ok {
			dropped++
			continue
		}
		if seen[p.ID] {
			dropped++
			continue
		}
		seen[p.ID] = true
		products = append(products, p)
	}
	if dropped > 0 {
		log.Printf("[PRODUCTS] dropped %d invalid or duplicate records", dropped)
	}
	return products, nil
}

func normalize(r rawProduct) (models.Product, bool) {
	name := strings.TrimSpace(firstNonEmpty(r.Name, r.Title))
	if name == "" {
		return models.Product{}, false
	}

	brand := strings.TrimSpace(firstNonEmpty(r.Brand, r.Vendor))
	if brand == "" {
		brand = models.PlaceholderText
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = models.PlaceholderText
	}

	id := strings.TrimSpace(firstNonEmpty(r.ID, r.SKU))
	if id == "" {
		id = deriveID(name, brand)
	}

	image := strings.TrimSpace(r.Image)
	if image == "" && len(r.Images) > 0 {
		image = strings.TrimSpace(r.Images[0])
	}
	if image == "" {
		image = models.PlaceholderImage
	}

	return models.Product{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Category:    category,
		PriceCents:  priceCents(r),
		Image:       image,
		Description: strings.TrimSpace(r.Description),
		Usage:       strings.TrimSpace(r.Usage),
		Tags:        stringList(r.Tags, stringList(r.Keywords, nil)),
		Benefits:    cleanList(r.Benefits),
		Ingredients: cleanList(r.Ingredients),
	}, true
}

// priceCents normalizes every price shape to non-negative integer cents.
// Precedence: explicit cent fields, then the dollar-valued "price" field.
func priceCents(r rawProduct) int {
	for _, raw := range []json.RawMessage{r.PriceCents, r.PriceCents2} {
		if c, ok := centsFromRaw(raw); ok {
			return c
		}
	}
	if len(r.Price) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(r.Price, &n); err == nil {
		return clampCents(math.Round(n * 100))
	}
	var s string
	if err := json.Unmarshal(r.Price, &s); err == nil {
		cleaned := nonPriceChars.ReplaceAllString(s, "")
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return clampCents(math.Round(v * 100))
		}
	}
	return 0
}

func centsFromRaw(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return clampCents(math.Round(n)), true
}

func clampCents(v float64) int {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return int(v)
}

// stringList accepts either a JSON array of strings or a single string
// split on ";" and ",".
func stringList(raw json.RawMessage, fallback []string) []string {
	if len(raw) == 0 {
		if fallback != nil {
			return fallback
		}
		return []string{}
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return cleanList(arr)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cleanList(strings.FieldsFunc(s, func(c rune) bool {
			return c == ';' || c == ','
		}))
	}
	if fallback != nil {
		return fallback
	}
	return []string{}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// deriveID builds a stable id for records that ship without one,
// matching the importer's sku-<md5 prefix> convention.
func deriveID(name, brand string) string {
	sum := md5.Sum([]byte(strings.ToLower(name + "|" + brand)))
	return "sku-" + hex.EncodeToString(sum[:])[:8]
}
