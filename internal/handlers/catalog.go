package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/models"
)

// CatalogHandler serves the catalog's supporting data: brand aggregates and
// the facet values the filter drawer is built from. Counts here are computed
// from the raw repository, before any filters apply.
type CatalogHandler struct {
	engine *catalog.Engine
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(engine *catalog.Engine) *CatalogHandler {
	return &CatalogHandler{engine: engine}
}

// ListBrands returns the bundle's brand aggregates.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.engine.Repository().Brands(),
	})
}

// GetMeta returns per-gender counts and the distinct type/size values with
// their product counts, for tabs and filter chips.
func (h *CatalogHandler) GetMeta(c *fiber.Ctx) error {
	repo := h.engine.Repository()

	genderCounts := fiber.Map{
		models.GenderMen:    0,
		models.GenderWomen:  0,
		models.GenderUnisex: 0,
	}
	typeCounts := map[string]int{}
	sizeCounts := map[string]int{}

	for _, p := range repo.Products() {
		if n, ok := genderCounts[p.Gender].(int); ok {
			genderCounts[p.Gender] = n + 1
		}
		if p.Type != nil {
			typeCounts[*p.Type]++
		}
		if p.Size != nil {
			sizeCounts[*p.Size]++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total":   repo.Len(),
			"genders": genderCounts,
			"types":   facetList(typeCounts),
			"sizes":   facetList(sizeCounts),
		},
	})
}

// ListSortOptions returns the orderings the grid supports.
func (h *CatalogHandler) ListSortOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": []catalog.SortOption{
			catalog.SortBrandAsc,
			catalog.SortNameAsc,
			catalog.SortNameDesc,
			catalog.SortPriceAsc,
			catalog.SortPriceDesc,
		},
	})
}

type facetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func facetList(counts map[string]int) []facetValue {
	out := make([]facetValue, 0, len(counts))
	for value, count := range counts {
		out = append(out, facetValue{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
