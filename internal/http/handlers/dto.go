package handlers

import "github.com/luminous-shop/catalog-api/internal/models"

// SearchResult is the /api/products response envelope. Fallback is empty
// for strict matches, or "fuzzy"/"featured" when the strict pass found
// nothing and a fallback tier supplied the items.
type SearchResult struct {
	Success  bool             `json:"success"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Fallback string           `json:"fallback,omitempty"`
	Items    []models.Product `json:"items"`
}

type HealthResult struct {
	OK       bool   `json:"ok"`
	Products int    `json:"products"`
	LoadedAt string `json:"loadedAt,omitempty"`
}

type StatsResult struct {
	Products      int            `json:"products"`
	Categories    map[string]int `json:"categories"`
	MinPriceCents int            `json:"min_price_cents"`
	MaxPriceCents int            `json:"max_price_cents"`
}

type ReloadResult struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
