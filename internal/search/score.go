package search

import (
	"strings"

	"github.com/luminous-shop/catalog-api/internal/models"
)

// Field weights. Monotonic by design: category ≥ name ≥ brand ≥ free text.
const (
	weightCategory = 3.0
	weightName     = 2.0
	weightBrand    = 1.0
	weightFreeText = 0.5
)

// haystack is the lowercased, per-field match surface for one record,
// built once per query pass.
type haystack struct {
	category string
	name     string
	brand    string
	freeText string
}

func buildHaystack(p *models.Product) haystack {
	free := make([]string, 0, 2+len(p.Tags)+len(p.Benefits)+len(p.Ingredients))
	free = append(free, p.Description, p.Usage)
	free = append(free, p.Tags...)
	free = append(free, p.Benefits...)
	free = append(free, p.Ingredients...)
	return haystack{
		category: strings.ToLower(p.Category),
		name:     strings.ToLower(p.Name),
		brand:    strings.ToLower(p.Brand),
		freeText: strings.ToLower(strings.Join(free, " ")),
	}
}

// Score assigns a non-negative relevance score to one record given the
// expanded token set. Per-token field hits are summed, never averaged, so
// matching more distinct tokens beats matching one token in many fields.
// An empty token set means the query was empty: every record scores 1 so
// downstream filtering keeps the whole catalog.
func Score(p *models.Product, tokens map[string]struct{}) float64 {
	if len(tokens) == 0 {
		return 1
	}
	hay := buildHaystack(p)
	var score float64
	for t := range tokens {
		if strings.Contains(hay.category, t) {
			score += weightCategory
		}
		if strings.Contains(hay.name, t) {
			score += weightName
		}
		if strings.Contains(hay.brand, t) {
			score += weightBrand
		}
		if strings.Contains(hay.freeText, t) {
			score += weightFreeText
		}
	}
	return score
}
