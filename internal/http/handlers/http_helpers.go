package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeCached writes a JSON response and stores the payload in the search
// cache under key. Cache failures never affect the response.
func writeCached(w http.ResponseWriter, r *http.Request, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	cache.Set(r.Context(), key, payload)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// atoiOr parses s, falling back when it is empty or malformed. Pagination
// input is tolerated, never rejected.
func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func parseCentsPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
