package catalog

import (
	"testing"

	"github.com/example/aromique/internal/models"
)

func sortFixture() []models.Product {
	return []models.Product{
		{ID: "1", Brand: "Dior", Name: "Sauvage", Price: fp(98)},
		{ID: "2", Brand: "Chanel", Name: "No 5", Price: nil},
		{ID: "3", Brand: "Chanel", Name: "Bleu de Chanel", Price: fp(145)},
		{ID: "4", Brand: "Armani", Name: "Acqua di Gio", Price: fp(75)},
		{ID: "5", Brand: "Tom Ford", Name: "Oud Wood", Price: nil},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Product, want []string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v want %v", gotIDs, want)
		}
	}
}

func TestSortBrandAscWithNameTieBreak(t *testing.T) {
	got := SortProducts(sortFixture(), SortBrandAsc)
	// Chanel ties broken by name: Bleu de Chanel before No 5.
	assertOrder(t, got, []string{"4", "3", "2", "1", "5"})
}

func TestSortNameDescIsExactReverseOfAsc(t *testing.T) {
	in := sortFixture()

	asc := SortProducts(in, SortNameAsc)
	desc := SortProducts(in, SortNameDesc)

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("desc is not the reverse of asc: asc=%v desc=%v", ids(asc), ids(desc))
		}
	}
}

func TestSortPricePlacesUnknownLastBothWays(t *testing.T) {
	cases := []struct {
		name string
		opt  SortOption
		want []string
	}{
		// Ascending substitutes +Inf for unknown prices.
		{name: "price asc", opt: SortPriceAsc, want: []string{"4", "1", "3", "2", "5"}},
		// Descending substitutes 0, which also lands unknowns at the end.
		{name: "price desc", opt: SortPriceDesc, want: []string{"3", "1", "4", "2", "5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SortProducts(sortFixture(), tc.opt)
			assertOrder(t, got, tc.want)

			// Unknown prices must sit strictly after every known price.
			seenNil := false
			for _, p := range got {
				if p.Price == nil {
					seenNil = true
				} else if seenNil {
					t.Fatalf("priced product after unpriced one: %v", ids(got))
				}
			}
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sortFixture()
	before := ids(in)

	SortProducts(in, SortPriceDesc)
	SortProducts(in, SortNameAsc)

	for i, id := range ids(in) {
		if id != before[i] {
			t.Fatalf("input reordered: got %v want %v", ids(in), before)
		}
	}
}
