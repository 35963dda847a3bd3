package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/utils"
)

// ProductHandler serves the browsable product grid from the in-memory
// catalog engine.
type ProductHandler struct {
	engine *catalog.Engine
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(engine *catalog.Engine) *ProductHandler {
	return &ProductHandler{engine: engine}
}

// ListProducts returns the filtered, sorted, paginated product grid. Every
// request carries its complete filter selection in query params; the engine
// holds no per-client state.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	f := parseFilterState(c)
	pg := utils.ParsePagination(c)

	products, activeFilters := h.engine.Evaluate(f)
	total := len(products)
	start, end := pg.Window(total)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
		"meta": fiber.Map{
			"active_filters": activeFilters,
		},
	})
}

// GetProduct returns a single product by bundle ID.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.engine.Repository().Get(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// parseFilterState maps query params onto a FilterState. Values are passed
// through as given; the filtering core trusts its callers, and a nonsense
// selection simply yields an empty grid.
func parseFilterState(c *fiber.Ctx) catalog.FilterState {
	f := catalog.DefaultFilterState()

	if v := c.Query("gender"); v != "" {
		f.Gender = v
	}
	f.Search = c.Query("search")
	if v := strings.TrimSpace(c.Query("brand")); v != "" {
		f.Brand = &v
	}
	if v := c.Query("types"); v != "" {
		f.Types = splitCSV(v)
	}
	if v := c.Query("sizes"); v != "" {
		f.Sizes = splitCSV(v)
	}
	if v := c.Query("min_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Min = parsed
		}
	}
	if v := c.Query("max_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Max = parsed
		}
	}
	if v := c.Query("sort"); v != "" {
		f.Sort = catalog.SortOption(v)
	}

	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RegisterProductRoutes attaches product routes to the fiber router.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router) {
	router.Get("/", h.ListProducts)
	router.Get("/:id", h.GetProduct)
}
