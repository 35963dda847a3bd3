package catalog

import (
	"sync"
	"time"

	"github.com/example/aromique/internal/models"
)

// DefaultDebounceWindow is the quiescence window for search input. Only after
// the text has been stable this long does it reach the evaluator.
const DefaultDebounceWindow = 200 * time.Millisecond

// Session is one interactive catalog run: it owns the filter store, debounces
// search input, and derives the filtered+sorted product list with its active
// filter count. All methods are safe for use from multiple goroutines, though
// a session is typically driven by a single consumer.
type Session struct {
	mu    sync.Mutex
	repo  *Repository
	idx   *Index
	store *Store

	debouncedSearch string
	window          time.Duration
	timer           *time.Timer
	searchSeq       uint64
	closed          bool
	onUpdate        func()

	version     uint64
	memoVersion uint64
	memoValid   bool
	memoList    []models.Product
	memoCount   int
}

// SessionOption customizes a Session at construction.
type SessionOption func(*Session)

// WithDebounceWindow overrides the search debounce window.
func WithDebounceWindow(d time.Duration) SessionOption {
	return func(s *Session) { s.window = d }
}

// WithUpdateHook registers a callback invoked after every committed change,
// i.e. whenever Results would return something new. Search keystrokes do not
// fire it; the debounce commit does, once.
func WithUpdateHook(fn func()) SessionOption {
	return func(s *Session) { s.onUpdate = fn }
}

// NewSession starts a session over the given repository with default filters.
// The search index is built here and rebuilt only when the repository is
// replaced.
func NewSession(repo *Repository, opts ...SessionOption) *Session {
	s := &Session{
		repo:   repo,
		idx:    BuildIndex(repo),
		store:  NewStore(),
		window: DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close tears the session down and cancels any pending search commit so it
// can never fire after disposal.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SetRepository swaps the product collection, rebuilding the index. Current
// filter selections survive the swap.
func (s *Session) SetRepository(repo *Repository) {
	s.commit(func() {
		s.repo = repo
		s.idx = BuildIndex(repo)
	})
}

// State returns the raw filter selections, including search text that has not
// debounced yet.
func (s *Session) State() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.State()
}

func (s *Session) SetGender(gender string) {
	s.commit(func() { s.store.SetGender(gender) })
}

func (s *Session) SetBrand(brand *string) {
	s.commit(func() { s.store.SetBrand(brand) })
}

func (s *Session) SetPriceRange(r PriceRange) {
	s.commit(func() { s.store.SetPriceRange(r) })
}

func (s *Session) SetSort(opt SortOption) {
	s.commit(func() { s.store.SetSort(opt) })
}

func (s *Session) ToggleType(t string) {
	s.commit(func() { s.store.ToggleType(t) })
}

func (s *Session) ToggleSize(size string) {
	s.commit(func() { s.store.ToggleSize(size) })
}

// SetSearch records the text immediately but only propagates it to the
// evaluator after the debounce window passes with no further keystrokes.
// Every call reschedules the pending commit (trailing edge).
func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.store.SetSearch(text)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.searchSeq++
	seq := s.searchSeq
	s.timer = time.AfterFunc(s.window, func() { s.commitSearch(text, seq) })
	s.mu.Unlock()
}

// ClearFilters resets everything to defaults, dropping any in-flight search
// commit along the way.
func (s *Session) ClearFilters() {
	s.commit(func() {
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.searchSeq++
		s.store.ClearFilters()
		s.debouncedSearch = ""
	})
}

// Results returns the filtered, sorted product list and the active filter
// count. The derivation is memoized on the session version, so repeated calls
// between changes are free. The returned slice is shared: treat it as
// read-only.
func (s *Session) Results() ([]models.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memoValid && s.memoVersion == s.version {
		return s.memoList, s.memoCount
	}

	state := s.store.State()
	state.Search = s.debouncedSearch

	s.memoList = Evaluate(s.repo, s.idx, state)
	s.memoCount = ActiveFilterCount(state)
	s.memoVersion = s.version
	s.memoValid = true

	return s.memoList, s.memoCount
}

// commitSearch lands debounced text. The sequence check discards commits
// that were already in flight when a newer keystroke or a clear superseded
// them.
func (s *Session) commitSearch(text string, seq uint64) {
	s.mu.Lock()
	if s.closed || seq != s.searchSeq {
		s.mu.Unlock()
		return
	}
	s.debouncedSearch = text
	s.version++
	hook := s.onUpdate
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// commit applies a mutation, bumps the session version so memoized results
// are invalidated, and fires the update hook outside the lock.
func (s *Session) commit(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	fn()
	s.version++
	hook := s.onUpdate
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}
