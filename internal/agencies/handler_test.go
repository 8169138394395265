package agencies_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"medrights-backend/internal/bootstrap"
	"medrights-backend/internal/shared/config"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{Port: "0", Env: "dev"})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestListAgencies(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agencies", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var agencies []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&agencies); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(agencies) != 6 {
		t.Fatalf("expected 6 agencies, got %d", len(agencies))
	}
}

func TestListAgenciesByIssueType(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agencies?issueType=price", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var agencies []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&agencies); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(agencies) == 0 {
		t.Fatalf("expected agencies for price")
	}
	for _, agency := range agencies {
		if agency.ID == "ministerio-da-saude" {
			t.Fatalf("health ministry must not cover price")
		}
	}
}

func TestListAgenciesRejectsUnknownIssueType(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agencies?issueType=billing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetAgency(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agencies/anvisa", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var agency struct {
		ID      string `json:"id"`
		Acronym string `json:"acronym"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&agency); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if agency.Acronym != "ANVISA" {
		t.Fatalf("expected acronym ANVISA, got %q", agency.Acronym)
	}
}

func TestGetAgencyNotFound(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agencies/anatel", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
