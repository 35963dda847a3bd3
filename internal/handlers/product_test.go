package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/models"
)

func fp(v float64) *float64 { return &v }

func testApp() *fiber.App {
	repo := catalog.NewRepository([]models.Product{
		{ID: "p1", Brand: "Chanel", Name: "Bleu de Chanel", RawName: "CHANEL BLEU DE CHANEL EDP 100ML", Gender: models.GenderMen, Price: fp(145)},
		{ID: "p2", Brand: "Dior", Name: "Sauvage", RawName: "DIOR SAUVAGE EDT 60ML", Gender: models.GenderMen, Price: fp(98)},
		{ID: "p3", Brand: "Chanel", Name: "No 5", RawName: "CHANEL N5 EDP 50ML", Gender: models.GenderWomen, Price: nil},
	}, nil)

	app := fiber.New()
	handler := NewProductHandler(catalog.NewEngine(repo))
	handler.RegisterProductRoutes(app.Group("/api/products"))
	return app
}

type listResponse struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Meta    struct {
		ActiveFilters int `json:"active_filters"`
	} `json:"meta"`
	Pagination struct {
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
}

func listProducts(t *testing.T, app *fiber.App, query string) listResponse {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/products"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func resultIDs(body listResponse) []string {
	out := make([]string, len(body.Data))
	for i, p := range body.Data {
		out[i] = p.ID
	}
	return out
}

func TestListProductsDefaults(t *testing.T) {
	body := listProducts(t, testApp(), "")

	want := []string{"p1", "p3", "p2"} // brand-asc, Chanel names tie-broken
	got := resultIDs(body)
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("got %v want %v", got, want)
	}
	if body.Meta.ActiveFilters != 0 {
		t.Fatalf("defaults should have no active filters, got %d", body.Meta.ActiveFilters)
	}
}

func TestListProductsGenderAndSort(t *testing.T) {
	body := listProducts(t, testApp(), "?gender=men&sort=price-asc")

	got := resultIDs(body)
	if len(got) != 2 || got[0] != "p2" || got[1] != "p1" {
		t.Fatalf("got %v want [p2 p1]", got)
	}
	if body.Meta.ActiveFilters != 1 {
		t.Fatalf("expected one active filter, got %d", body.Meta.ActiveFilters)
	}
}

func TestListProductsSearch(t *testing.T) {
	body := listProducts(t, testApp(), "?search=sauvage")

	got := resultIDs(body)
	if len(got) != 1 || got[0] != "p2" {
		t.Fatalf("got %v want [p2]", got)
	}
}

func TestListProductsPagination(t *testing.T) {
	body := listProducts(t, testApp(), "?limit=2&page=2")

	if body.Pagination.TotalItems != 3 {
		t.Fatalf("total should report the full filtered count, got %d", body.Pagination.TotalItems)
	}
	got := resultIDs(body)
	if len(got) != 1 || got[0] != "p2" {
		t.Fatalf("got %v want [p2]", got)
	}
}

func TestGetProductNotFound(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/api/products/unknown", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}
