package catalog

import (
	"testing"

	"github.com/example/aromique/internal/models"
)

func twoProductRepo() *Repository {
	return NewRepository([]models.Product{
		{ID: "1", Brand: "A", Name: "Rose", Price: fp(50), Gender: models.GenderWomen},
		{ID: "2", Brand: "B", Name: "Oud", Price: nil, Gender: models.GenderMen},
	}, nil)
}

func TestEvaluateDefaultsSortBrandAsc(t *testing.T) {
	repo := twoProductRepo()
	got := Evaluate(repo, BuildIndex(repo), DefaultFilterState())
	assertOrder(t, got, []string{"1", "2"})
}

func TestEvaluateGenderPredicate(t *testing.T) {
	repo := twoProductRepo()
	idx := BuildIndex(repo)

	f := DefaultFilterState()
	f.Gender = GenderMen
	assertOrder(t, Evaluate(repo, idx, f), []string{"2"})

	f.Gender = GenderAll
	assertOrder(t, Evaluate(repo, idx, f), []string{"1", "2"})
}

func TestEvaluateUnknownPriceIsUnconstrained(t *testing.T) {
	repo := twoProductRepo()
	idx := BuildIndex(repo)

	f := DefaultFilterState()
	f.PriceRange = PriceRange{Min: 0, Max: 40}

	// id 1 is excluded at $50, id 2 has no price and survives any range.
	assertOrder(t, Evaluate(repo, idx, f), []string{"2"})
}

func TestEvaluateSearchMinimumLength(t *testing.T) {
	repo := twoProductRepo()
	idx := BuildIndex(repo)

	f := DefaultFilterState()
	f.Search = "q"
	// Below the minimum length the search must not exclude anything, even
	// though "q" matches no product.
	assertOrder(t, Evaluate(repo, idx, f), []string{"1", "2"})

	f.Search = "rose"
	assertOrder(t, Evaluate(repo, idx, f), []string{"1"})
}

func TestEvaluateSearchResultsStayInsideMatchSet(t *testing.T) {
	repo := indexFixture()
	idx := BuildIndex(repo)

	f := DefaultFilterState()
	f.Search = "sauvage"

	matches := idx.Search("sauvage")
	for _, p := range Evaluate(repo, idx, f) {
		if _, ok := matches[p.ID]; !ok {
			t.Fatalf("%s returned but not in fuzzy match set", p.ID)
		}
	}
}

func TestEvaluateTypeAndSizePredicates(t *testing.T) {
	repo := NewRepository([]models.Product{
		{ID: "1", Brand: "A", Name: "One", Type: sp("edp"), Size: sp("50ml"), Gender: models.GenderUnisex},
		{ID: "2", Brand: "A", Name: "Two", Type: sp("edt"), Size: sp("100ml"), Gender: models.GenderUnisex},
		{ID: "3", Brand: "A", Name: "Three", Type: nil, Size: nil, Gender: models.GenderUnisex},
	}, nil)
	idx := BuildIndex(repo)

	f := DefaultFilterState()
	f.Types = []string{"edp"}
	// Products without a type are dropped once a type filter is active.
	assertOrder(t, Evaluate(repo, idx, f), []string{"1"})

	f = DefaultFilterState()
	f.Sizes = []string{"50ml", "100ml"}
	assertOrder(t, Evaluate(repo, idx, f), []string{"1", "2"})

	f = DefaultFilterState()
	// No set filters active: null type/size products pass through.
	assertOrder(t, Evaluate(repo, idx, f), []string{"1", "3", "2"})
}

func TestEvaluateNilAndEmptyRepository(t *testing.T) {
	if got := Evaluate(nil, nil, DefaultFilterState()); len(got) != 0 {
		t.Fatalf("nil repository produced products: %v", ids(got))
	}

	empty := NewRepository(nil, nil)
	if got := Evaluate(empty, BuildIndex(empty), DefaultFilterState()); len(got) != 0 {
		t.Fatalf("empty repository produced products: %v", ids(got))
	}
}

func TestActiveFilterCount(t *testing.T) {
	brand := "Dior"

	cases := []struct {
		name  string
		state func() FilterState
		want  int
	}{
		{name: "defaults", state: DefaultFilterState, want: 0},
		{name: "gender", state: func() FilterState {
			f := DefaultFilterState()
			f.Gender = GenderMen
			return f
		}, want: 1},
		{name: "short search is not active", state: func() FilterState {
			f := DefaultFilterState()
			f.Search = "a"
			return f
		}, want: 0},
		{name: "each selected value counts", state: func() FilterState {
			f := DefaultFilterState()
			f.Types = []string{"edp", "edt", "parfum"}
			f.Sizes = []string{"50ml"}
			return f
		}, want: 4},
		{name: "everything", state: func() FilterState {
			f := DefaultFilterState()
			f.Gender = GenderWomen
			f.Search = "rose"
			f.Brand = &brand
			f.Types = []string{"edp", "edt"}
			f.Sizes = []string{"50ml"}
			f.PriceRange = PriceRange{Min: 10, Max: 500}
			return f
		}, want: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ActiveFilterCount(tc.state()); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
