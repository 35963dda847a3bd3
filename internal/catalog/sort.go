package catalog

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/aromique/internal/models"
)

// SortProducts returns a newly ordered copy of products; the input slice is
// never touched.
//
// name-desc is produced by reversing the name-asc order rather than by a
// mirrored comparator, which keeps the two directions exact inverses of each
// other. The price sorts place unknown prices last in both directions, but
// through different sentinels: ascending substitutes +Inf, descending
// substitutes 0. That asymmetry is the storefront's established behavior and
// is kept as is.
func SortProducts(products []models.Product, opt SortOption) []models.Product {
	out := append([]models.Product(nil), products...)
	coll := collate.New(language.Und, collate.IgnoreCase)

	switch opt {
	case SortNameAsc:
		sortByName(out, coll)
	case SortNameDesc:
		sortByName(out, coll)
		reverse(out)
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOrInf(out[i]) < priceOrInf(out[j])
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOrZero(out[i]) > priceOrZero(out[j])
		})
	default: // brand-asc, the only sort with a secondary key
		sort.SliceStable(out, func(i, j int) bool {
			if cmp := coll.CompareString(out[i].Brand, out[j].Brand); cmp != 0 {
				return cmp < 0
			}
			return coll.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}

func sortByName(products []models.Product, coll *collate.Collator) {
	sort.SliceStable(products, func(i, j int) bool {
		return coll.CompareString(products[i].Name, products[j].Name) < 0
	})
}

func reverse(products []models.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}

func priceOrInf(p models.Product) float64 {
	if p.Price == nil {
		return math.Inf(1)
	}
	return *p.Price
}

func priceOrZero(p models.Product) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
