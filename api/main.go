package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/luminous-shop/catalog-api/internal/auth"
	"github.com/luminous-shop/catalog-api/internal/catalog"
	"github.com/luminous-shop/catalog-api/internal/config"
	"github.com/luminous-shop/catalog-api/internal/db"
	api "github.com/luminous-shop/catalog-api/internal/http"
	"github.com/luminous-shop/catalog-api/internal/http/handlers"
	rl "github.com/luminous-shop/catalog-api/internal/http/rate_limiter"
	"github.com/luminous-shop/catalog-api/internal/redissvc"
)

// @title Luminous Catalog API
// @version 1.0
// @description Product catalog search for the Luminous storefront.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	var source catalog.Source
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		defer database.Close()
		source = catalog.NewPostgresSource(database)
	} else {
		source = catalog.FileSource{Path: cfg.ProductsPath}
	}

	store := catalog.NewStore(source)
	if err := store.Reload(context.Background()); err != nil {
		log.Fatalf("could not load catalog: %v", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			defer rdb.Close()
			handlers.SetRedisService(redissvc.NewRedisService(rdb, cfg.CacheTTL))
		}
	}

	handlers.SetCatalogStore(store)
	handlers.SetAdminCredentials(cfg.AdminUsername, cfg.AdminPasswordHash)

	r := api.NewRouter()
	log.Printf("Luminous catalog listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
