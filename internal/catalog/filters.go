package catalog

// Gender filter selections. GenderAll widens the filter to every audience and
// only exists at the filter level, never on product records.
const (
	GenderAll    = "all"
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortBrandAsc  SortOption = "brand-asc"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// Default price range selection. A range equal to the default does not count
// as an active filter.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 1000
)

// PriceRange is a closed interval [Min, Max]. Ordering of the bounds is the
// caller's responsibility; the store does not validate it.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState holds every user-facing catalog selection. Values are only ever
// replaced through Store mutators, never patched in place.
type FilterState struct {
	Gender     string
	Search     string
	Brand      *string
	PriceRange PriceRange
	Types      []string
	Sizes      []string
	Sort       SortOption
}

// DefaultFilterState returns a fresh default selection. It is a factory
// rather than a shared constant so the Types/Sizes slices never alias
// between sessions.
func DefaultFilterState() FilterState {
	return FilterState{
		Gender:     GenderAll,
		Search:     "",
		Brand:      nil,
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		Types:      []string{},
		Sizes:      []string{},
		Sort:       SortBrandAsc,
	}
}

// Store owns a FilterState and exposes the fixed mutator set. Each mutator
// replaces exactly the named field and leaves the rest untouched. Inputs are
// trusted: enum membership and range ordering are not checked here.
type Store struct {
	state FilterState
}

// NewStore creates a Store holding the default FilterState.
func NewStore() *Store {
	return &Store{state: DefaultFilterState()}
}

// State returns a snapshot of the current selection. The Types/Sizes slices
// are copied so callers cannot reach back into the store; an empty selection
// stays an empty slice, never nil, so a default-state snapshot compares equal
// to DefaultFilterState and renders as [] in JSON.
func (s *Store) State() FilterState {
	snap := s.state
	snap.Types = make([]string, len(s.state.Types))
	copy(snap.Types, s.state.Types)
	snap.Sizes = make([]string, len(s.state.Sizes))
	copy(snap.Sizes, s.state.Sizes)
	return snap
}

func (s *Store) SetGender(gender string) {
	s.state.Gender = gender
}

func (s *Store) SetSearch(text string) {
	s.state.Search = text
}

func (s *Store) SetBrand(brand *string) {
	s.state.Brand = brand
}

func (s *Store) SetPriceRange(r PriceRange) {
	s.state.PriceRange = r
}

func (s *Store) SetSort(opt SortOption) {
	s.state.Sort = opt
}

// ToggleType removes the value when present and appends it when absent, so
// two calls with the same value cancel out and duplicates never accumulate.
func (s *Store) ToggleType(t string) {
	s.state.Types = toggle(s.state.Types, t)
}

// ToggleSize behaves like ToggleType over the size selection.
func (s *Store) ToggleSize(size string) {
	s.state.Sizes = toggle(s.state.Sizes, size)
}

// ClearFilters restores the entire state to defaults.
func (s *Store) ClearFilters() {
	s.state = DefaultFilterState()
}

func toggle(values []string, v string) []string {
	for i, existing := range values {
		if existing == v {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, v)
}
