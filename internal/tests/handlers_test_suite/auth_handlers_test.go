package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/luminous-shop/catalog-api/internal/http"
	handler "github.com/luminous-shop/catalog-api/internal/http/handlers"
)

func postLogin(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.UserLogin{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := api.NewRouter()

	w := postLogin(r, "admin", "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token on successful login")
	}
}

func TestLogin_Failures(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown user", "nobody", "secret"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := postLogin(r, tc.username, tc.password); w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestReloadProducts_RequiresToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/reload-products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/reload-products", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", w.Code)
	}
}

func TestReloadProducts_SwapsCatalog(t *testing.T) {
	setCatalog(defaultCatalog())
	defer setCatalog(defaultCatalog())
	r := api.NewRouter()

	// Change the source, then ask the server to pick it up.
	next := defaultCatalog()[:2]
	source.products = next

	req := httptest.NewRequest(http.MethodPost, "/admin/reload-products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.ReloadResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK || resp.Count != 2 {
		t.Errorf("expected ok with count=2, got %+v", resp)
	}

	search, err := decodeSearch(doGet(r, "/api/products"))
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if search.Total != 2 {
		t.Errorf("expected the reloaded catalog to serve, got total=%d", search.Total)
	}
}
