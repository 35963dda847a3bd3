package catalog

import (
	"sync"

	"github.com/example/aromique/internal/models"
)

// Engine holds the repository/index pair for the HTTP surface, where every
// request carries its own complete filter state. Reload swaps both
// atomically; requests already holding the old pair keep a consistent view.
type Engine struct {
	mu   sync.RWMutex
	repo *Repository
	idx  *Index
}

// NewEngine builds the engine and its initial search index.
func NewEngine(repo *Repository) *Engine {
	return &Engine{repo: repo, idx: BuildIndex(repo)}
}

// Reload replaces the repository and rebuilds the index.
func (e *Engine) Reload(repo *Repository) {
	idx := BuildIndex(repo)
	e.mu.Lock()
	e.repo = repo
	e.idx = idx
	e.mu.Unlock()
}

// Repository returns the current product collection.
func (e *Engine) Repository() *Repository {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.repo
}

// Evaluate derives the filtered+sorted list and active filter count for a
// one-shot filter state.
func (e *Engine) Evaluate(f FilterState) ([]models.Product, int) {
	e.mu.RLock()
	repo, idx := e.repo, e.idx
	e.mu.RUnlock()

	return Evaluate(repo, idx, f), ActiveFilterCount(f)
}
