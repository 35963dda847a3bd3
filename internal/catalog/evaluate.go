package catalog

import (
	"strings"

	"github.com/example/aromique/internal/models"
)

// Evaluate runs the full derivation for one filter state: predicate narrowing
// in fixed order (gender, fuzzy search, brand, type, size, price), then the
// selected sort. It is pure: neither the repository nor the state is
// modified, and the same inputs always produce the same output.
//
// The search text in f is taken as already committed; debouncing happens in
// Session before this function ever sees the value.
func Evaluate(repo *Repository, idx *Index, f FilterState) []models.Product {
	if repo == nil {
		return []models.Product{}
	}

	search := strings.TrimSpace(f.Search)
	searching := len([]rune(search)) >= MinQueryLength

	var matches map[string]struct{}
	if searching {
		matches = idx.Search(search)
	}

	out := make([]models.Product, 0, repo.Len())
	for _, p := range repo.Products() {
		if f.Gender != GenderAll && p.Gender != f.Gender {
			continue
		}
		if searching {
			if _, ok := matches[p.ID]; !ok {
				continue
			}
		}
		if f.Brand != nil && p.Brand != *f.Brand {
			continue
		}
		if len(f.Types) > 0 && (p.Type == nil || !containsString(f.Types, *p.Type)) {
			continue
		}
		if len(f.Sizes) > 0 && (p.Size == nil || !containsString(f.Sizes, *p.Size)) {
			continue
		}
		// Unknown price is unconstrained: the price filter never drops it.
		if p.Price != nil && (*p.Price < f.PriceRange.Min || *p.Price > f.PriceRange.Max) {
			continue
		}
		out = append(out, p)
	}

	return SortProducts(out, f.Sort)
}

// ActiveFilterCount counts the filter dimensions a user has engaged. Types
// and sizes contribute one per selected value; everything else contributes at
// most one. Search is counted with the same minimum-length rule used to apply
// it, so "active" and "applied" never disagree.
func ActiveFilterCount(f FilterState) int {
	count := 0
	if f.Gender != GenderAll {
		count++
	}
	if len([]rune(strings.TrimSpace(f.Search))) >= MinQueryLength {
		count++
	}
	if f.Brand != nil {
		count++
	}
	count += len(f.Types)
	count += len(f.Sizes)
	if f.PriceRange != (PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}) {
		count++
	}
	return count
}

func containsString(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
