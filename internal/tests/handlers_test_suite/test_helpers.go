package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	"github.com/luminous-shop/catalog-api/internal/auth"
	"github.com/luminous-shop/catalog-api/internal/catalog"
	api "github.com/luminous-shop/catalog-api/internal/http"
	handler "github.com/luminous-shop/catalog-api/internal/http/handlers"
	rl "github.com/luminous-shop/catalog-api/internal/http/rate_limiter"
	"github.com/luminous-shop/catalog-api/internal/models"
)

var (
	token string
	store *catalog.Store
)

type staticSource struct {
	products []models.Product
}

func (s *staticSource) Load(context.Context) ([]models.Product, error) {
	return s.products, nil
}

var source = &staticSource{}

func init() {
	auth.SetSecret("test-secret")
	rl.Configure(1000, 1000) // keep the limiter out of the way

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	handler.SetAdminCredentials("admin", string(hash))

	store = catalog.NewStore(source)
	handler.SetCatalogStore(store)
	setCatalog(defaultCatalog())

	r := api.NewRouter()
	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func defaultCatalog() []models.Product {
	return []models.Product{
		{ID: "a", Name: "Purple Toning Shampoo", Brand: "Luminous", Category: "Hair / Shampoo", PriceCents: 1800, Tags: []string{}, Benefits: []string{}, Ingredients: []string{}},
		{ID: "b", Name: "Vitamin C Serum", Brand: "Glow", Category: "Skin / Serum", PriceCents: 2900, Tags: []string{}, Benefits: []string{}, Ingredients: []string{}},
		{ID: "c", Name: "Repair Mask", Brand: "Luminous", Category: "Hair / Repair", PriceCents: 2400, Tags: []string{}, Benefits: []string{}, Ingredients: []string{}},
	}
}

func setCatalog(products []models.Product) {
	source.products = products
	if err := store.Reload(context.Background()); err != nil {
		panic(fmt.Sprintf("error loading test catalog: %v", err))
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doGet(r http.Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSearch(w *httptest.ResponseRecorder) (handler.SearchResult, error) {
	var resp handler.SearchResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
