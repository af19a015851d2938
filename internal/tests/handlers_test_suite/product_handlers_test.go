package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/luminous-shop/catalog-api/internal/http"
	handler "github.com/luminous-shop/catalog-api/internal/http/handlers"
)

func TestSearchProducts_StrictMatch(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/products?q=shampoo+under+%2420")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp, err := decodeSearch(w)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Total != 1 || resp.Count != 1 {
		t.Errorf("expected total=1 count=1, got total=%d count=%d", resp.Total, resp.Count)
	}
	if resp.Fallback != "" {
		t.Errorf("expected no fallback marker, got %q", resp.Fallback)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "a" {
		t.Errorf("expected item a, got %+v", resp.Items)
	}
}

func TestSearchProducts_FeaturedFallback(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/products?q=moisturizer")
	resp, err := decodeSearch(w)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Fallback != "featured" {
		t.Errorf("expected featured fallback, got %q", resp.Fallback)
	}
	if resp.Total != 3 {
		t.Errorf("expected whole catalog as featured pool, got total=%d", resp.Total)
	}
	if len(resp.Items) == 0 {
		t.Error("fallback response must never be empty for a non-empty catalog")
	}
}

func TestSearchProducts_FuzzyFallback(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	// The ceiling eliminates every strict match, but "mask" still scores
	// against the catalog, so the fuzzy tier answers.
	w := doGet(r, "/api/products?q=mask+under+%245")
	resp, err := decodeSearch(w)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Fallback != "fuzzy" {
		t.Errorf("expected fuzzy fallback, got %q", resp.Fallback)
	}
	if len(resp.Items) == 0 || resp.Items[0].ID != "c" {
		t.Errorf("expected Repair Mask first, got %+v", resp.Items)
	}
}

func TestSearchProducts_PaginationClamps(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	tests := []struct {
		name      string
		url       string
		wantCount int
		wantTotal int
	}{
		{"default page", "/api/products", 3, 3},
		{"limit 1", "/api/products?limit=1", 1, 3},
		{"limit over max clamps to catalog size", "/api/products?limit=500", 3, 3},
		{"negative offset treated as zero", "/api/products?offset=-5&limit=2", 2, 3},
		{"offset past total", "/api/products?offset=10", 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := decodeSearch(doGet(r, tc.url))
			if err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Count != tc.wantCount || resp.Total != tc.wantTotal {
				t.Errorf("got count=%d total=%d, want count=%d total=%d",
					resp.Count, resp.Total, tc.wantCount, tc.wantTotal)
			}
		})
	}
}

func TestSearchProducts_StructuredFilters(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/products?category=hair+%2F+shampoo")
	resp, err := decodeSearch(w)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != "a" {
		t.Errorf("category filter should match case-insensitively, got %+v", resp.Items)
	}

	w = doGet(r, "/api/products?minCents=2000&maxCents=2500")
	resp, err = decodeSearch(w)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != "c" {
		t.Errorf("price range 2000-2500 should match only c, got %+v", resp.Items)
	}
}

func TestSearchProducts_EmptyItemsIsArray(t *testing.T) {
	setCatalog(nil)
	defer setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/products?q=anything")
	if got := w.Body.String(); !json.Valid([]byte(got)) {
		t.Fatalf("invalid JSON: %s", got)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(raw["items"]) != "[]" {
		t.Errorf("empty catalog must serialize items as [], got %s", raw["items"])
	}
}

func TestGetProductByID(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/products/b")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var p struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if p.ID != "b" || p.Name != "Vitamin C Serum" {
		t.Errorf("unexpected product: %+v", p)
	}

	if w := doGet(r, "/api/products/nope"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestStats(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.StatsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Products != 3 {
		t.Errorf("expected 3 products, got %d", resp.Products)
	}
	if resp.Categories["Hair / Shampoo"] != 1 {
		t.Errorf("unexpected category counts: %+v", resp.Categories)
	}
	if resp.MinPriceCents != 1800 || resp.MaxPriceCents != 2900 {
		t.Errorf("expected price range 1800-2900, got %d-%d", resp.MinPriceCents, resp.MaxPriceCents)
	}
}

func TestHealth(t *testing.T) {
	setCatalog(defaultCatalog())
	r := api.NewRouter()

	w := doGet(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.HealthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK || resp.Products != 3 {
		t.Errorf("unexpected health payload: %+v", resp)
	}
}
