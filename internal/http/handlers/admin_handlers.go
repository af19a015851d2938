package handlers

import (
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Service health and catalog size
// @Tags admin
// @Produce json
// @Success 200 {object} HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	snap := catalogStore.Snapshot()
	resp := HealthResult{
		OK:       true,
		Products: len(snap.Products),
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = snap.LoadedAt.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ReloadProductsHandler godoc
// @Summary Reload the catalog from its source
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ReloadResult
// @Failure 500 {string} string "Reload failed"
// @Router /admin/reload-products [post]
func ReloadProductsHandler(w http.ResponseWriter, r *http.Request) {
	if err := catalogStore.Reload(r.Context()); err != nil {
		http.Error(w, "could not reload products", http.StatusInternalServerError)
		return
	}
	cache.Flush(r.Context(), "search:*")
	writeJSON(w, http.StatusOK, ReloadResult{
		OK:    true,
		Count: len(catalogStore.Snapshot().Products),
	})
}
