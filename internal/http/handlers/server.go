package handlers

import (
	"github.com/luminous-shop/catalog-api/internal/catalog"
	"github.com/luminous-shop/catalog-api/internal/redissvc"
)

var (
	catalogStore *catalog.Store
	cache        *redissvc.RedisService

	adminUsername     string
	adminPasswordHash string
)

func SetCatalogStore(s *catalog.Store) {
	catalogStore = s
}

// SetRedisService installs the optional search cache. A nil service
// disables caching.
func SetRedisService(rs *redissvc.RedisService) {
	cache = rs
}

func SetAdminCredentials(username, passwordHash string) {
	adminUsername = username
	adminPasswordHash = passwordHash
}
