package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luminous-shop/catalog-api/internal/search"
)

// SearchProductsHandler godoc
// @Summary Search the catalog
// @Description Free-text search with synonym expansion, inline price ceilings ("under $20"), structured filters and pagination. Never returns an empty item list unless the catalog itself is empty.
// @Tags products
// @Produce json
// @Param q query string false "Free-text query"
// @Param category query string false "Exact category filter"
// @Param minCents query int false "Minimum price in cents"
// @Param maxCents query int false "Maximum price in cents"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (1-50, default 12)"
// @Success 200 {object} SearchResult
// @Router /api/products [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := search.Request{
		Query: q.Get("q"),
		Filters: search.Filters{
			Category: q.Get("category"),
			MinCents: parseCentsPtr(q.Get("minCents")),
			MaxCents: parseCentsPtr(q.Get("maxCents")),
		},
		Offset: atoiOr(q.Get("offset"), 0),
		Limit:  atoiOr(q.Get("limit"), search.DefaultLimit),
	}

	snap := catalogStore.Snapshot()

	cacheKey := fmt.Sprintf("search:%d:%s", snap.LoadedAt.UnixNano(), r.URL.RawQuery)
	if payload, ok := cache.Get(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.Write(payload)
		return
	}

	result := search.Search(snap.Products, req)

	resp := SearchResult{
		Success:  true,
		Total:    result.Total,
		Count:    result.Count,
		Fallback: result.Fallback,
		Items:    result.Items,
	}
	writeCached(w, r, cacheKey, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, p := range catalogStore.Snapshot().Products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

// StatsHandler godoc
// @Summary Catalog aggregates
// @Tags products
// @Produce json
// @Success 200 {object} StatsResult
// @Router /api/stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := catalogStore.Snapshot()

	stats := StatsResult{
		Products:   len(snap.Products),
		Categories: map[string]int{},
	}
	for i, p := range snap.Products {
		stats.Categories[p.Category]++
		if i == 0 || p.PriceCents < stats.MinPriceCents {
			stats.MinPriceCents = p.PriceCents
		}
		if p.PriceCents > stats.MaxPriceCents {
			stats.MaxPriceCents = p.PriceCents
		}
	}
	writeJSON(w, http.StatusOK, stats)
}
