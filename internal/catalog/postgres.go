package catalog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/luminous-shop/catalog-api/internal/models"
)

// PostgresSource loads the catalog from a products table. Rows are expected
// to be normalized already (prices in cents); list columns are stored as
// ";"-joined text, matching what the import tooling writes.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, brand, category, price_cents, image, description, usage, tags, benefits, ingredients FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var brand, category, image, description, usage sql.NullString
		var tags, benefits, ingredients sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &brand, &category, &p.PriceCents, &image,
			&description, &usage, &tags, &benefits, &ingredients); err != nil {
			return nil, err
		}
		if p.Name == "" {
			continue
		}
		p.Brand = textOr(brand, models.PlaceholderText)
		p.Category = textOr(category, models.PlaceholderText)
		p.Image = textOr(image, models.PlaceholderImage)
		p.Description = description.String
		p.Usage = usage.String
		p.Tags = splitList(tags)
		p.Benefits = splitList(benefits)
		p.Ingredients = splitList(ingredients)
		if p.PriceCents < 0 {
			p.PriceCents = 0
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func textOr(v sql.NullString, fallback string) string {
	if v.Valid && strings.TrimSpace(v.String) != "" {
		return v.String
	}
	return fallback
}

func splitList(v sql.NullString) []string {
	if !v.Valid || v.String == "" {
		return []string{}
	}
	return cleanList(strings.Split(v.String, ";"))
}
