package catalog

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/luminous-shop/catalog-api/internal/models"
)

// Source supplies a normalized product list, e.g. from a JSON file or a
// database table.
type Source interface {
	Load(ctx context.Context) ([]models.Product, error)
}

// Snapshot is an immutable, point-in-time view of the catalog. Queries in
// flight always observe one consistent snapshot; reloads build a new one.
type Snapshot struct {
	Products []models.Product
	LoadedAt time.Time
}

// Store holds the current catalog snapshot behind a single atomic pointer.
type Store struct {
	source  Source
	current atomic.Pointer[Snapshot]
}

func NewStore(source Source) *Store {
	s := &Store{source: source}
	s.current.Store(&Snapshot{Products: []models.Product{}})
	return s
}

// Reload fetches the catalog from the source, builds a fresh snapshot and
// publishes it atomically. On error the previous snapshot stays live.
func (s *Store) Reload(ctx context.Context) error {
	products, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	s.current.Store(&Snapshot{Products: products, LoadedAt: time.Now()})
	log.Printf("[PRODUCTS] loaded %d items", len(products))
	return nil
}

// Snapshot returns the most recently published snapshot. Callers must not
// mutate the returned slice.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// FileSource loads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Load(_ context.Context) ([]models.Product, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	products, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return products, nil
}
