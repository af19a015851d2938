package search

import (
	"sort"
	"strings"

	"github.com/luminous-shop/catalog-api/internal/models"
)

// Pagination bounds. Limit defaults to 12 and is clamped to [1, 50];
// negative offsets clamp to 0. Out-of-range input is tolerated, never
// rejected.
const (
	DefaultLimit = 12
	MaxLimit     = 50

	// fallbackSize caps the fuzzy and featured fallback tiers.
	fallbackSize = 24
)

// Fallback markers reported alongside results so the UI can explain that
// the strict match came up empty.
const (
	FallbackNone     = ""
	FallbackFuzzy    = "fuzzy"
	FallbackFeatured = "featured"
)

// Filters are caller-supplied hard constraints applied independently of
// free-text scoring.
type Filters struct {
	Category string
	MinCents *int
	MaxCents *int
}

// Request is one search invocation against a catalog snapshot.
type Request struct {
	Query   string
	Filters Filters
	Offset  int
	Limit   int
}

// Result is a deterministically ordered page of matches. Total counts the
// candidate set before pagination; Fallback is set when the strict pass
// found nothing and a fallback tier supplied the candidates.
type Result struct {
	Total    int
	Count    int
	Fallback string
	Items    []models.Product
}

type scored struct {
	product *models.Product
	score   float64
}

// Search runs the full query pipeline over one catalog snapshot: price
// ceiling extraction, tokenization, synonym expansion, scoring, hard
// filters, the strict pass, the non-empty fallback guarantee, deterministic
// ordering and pagination. It is a pure function of its inputs.
func Search(catalog []models.Product, req Request) Result {
	offset, limit := clampPage(req.Offset, req.Limit)

	if len(catalog) == 0 {
		return Result{Items: []models.Product{}}
	}

	ceiling, rest := ExtractPriceCeiling(req.Query)
	tokens := Expand(Tokenize(rest))

	all := make([]scored, len(catalog))
	for i := range catalog {
		all[i] = scored{product: &catalog[i], score: Score(&catalog[i], tokens)}
	}

	strict := make([]scored, 0, len(all))
	for _, s := range all {
		if !matchesFilters(s.product, req.Filters, ceiling) {
			continue
		}
		if s.score > 0 {
			strict = append(strict, s)
		}
	}

	candidates := strict
	fallback := FallbackNone
	if len(candidates) == 0 {
		candidates, fallback = fallbackCandidates(all)
	}

	sortCandidates(candidates)

	total := len(candidates)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]models.Product, 0, end-start)
	for _, s := range candidates[start:end] {
		items = append(items, *s.product)
	}

	return Result{Total: total, Count: len(items), Fallback: fallback, Items: items}
}

func matchesFilters(p *models.Product, f Filters, ceiling *int) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinCents != nil && p.PriceCents < *f.MinCents {
		return false
	}
	if f.MaxCents != nil && p.PriceCents > *f.MaxCents {
		return false
	}
	if ceiling != nil && p.PriceCents > *ceiling {
		return false
	}
	return true
}

// fallbackCandidates implements the never-empty guarantee for non-empty
// catalogs. The fuzzy tier takes the best positive-scoring records of the
// whole catalog, ignoring the hard filters that emptied the strict pass;
// if no record scores at all, the featured tier returns the head of the
// catalog in its natural order.
func fallbackCandidates(all []scored) ([]scored, string) {
	fuzzy := make([]scored, 0, fallbackSize)
	for _, s := range all {
		if s.score > 0 {
			fuzzy = append(fuzzy, s)
		}
	}
	if len(fuzzy) > 0 {
		sortCandidates(fuzzy)
		if len(fuzzy) > fallbackSize {
			fuzzy = fuzzy[:fallbackSize]
		}
		return fuzzy, FallbackFuzzy
	}

	n := len(all)
	if n > fallbackSize {
		n = fallbackSize
	}
	featured := make([]scored, n)
	copy(featured, all[:n])
	return featured, FallbackFeatured
}

// sortCandidates orders by score descending, then case-insensitive name,
// then id. The tie-break chain is total, so repeated identical queries
// return identical orderings.
func sortCandidates(list []scored) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		ni, nj := strings.ToLower(list[i].product.Name), strings.ToLower(list[j].product.Name)
		if ni != nj {
			return ni < nj
		}
		return list[i].product.ID < list[j].product.ID
	})
}

func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}
