package navigation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

var (
	ErrNilPage       = errors.New("page is nil")
	ErrDuplicatePage = errors.New("page already registered")
	ErrSealed        = errors.New("registry is sealed")
	ErrInvalidPageID = errors.New("invalid page id")
)

// Registry is the ordered stack of pages with exactly one active page.
// Indices are assigned at registration and never change.
type Registry struct {
	mu     sync.RWMutex
	pages  []Page
	byID   map[PageID]int
	active int
	sealed bool
	log    logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &Registry{
		byID: make(map[PageID]int),
		log:  log,
	}
}

// Register appends p and returns its index. The first page registered is the
// active one. Ids must be non-empty and carry no surrounding whitespace.
func (r *Registry) Register(p Page) (int, error) {
	if p == nil {
		return -1, ErrNilPage
	}
	id := p.ID()
	if id == "" || strings.TrimSpace(string(id)) != string(id) {
		return -1, fmt.Errorf("%w: %q", ErrInvalidPageID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return -1, ErrSealed
	}
	if _, ok := r.byID[id]; ok {
		return -1, fmt.Errorf("%w: %s", ErrDuplicatePage, id)
	}

	index := len(r.pages)
	r.pages = append(r.pages, p)
	r.byID[id] = index
	return index, nil
}

// Seal stops further registration.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

func (r *Registry) Index(id PageID) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index, ok := r.byID[id]
	return index, ok
}

func (r *Registry) Page(index int) (Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.pages) {
		return nil, false
	}
	return r.pages[index], true
}

// SwitchTo makes the page at index active. Out-of-range indices leave the
// active page unchanged and are reported as a warning.
func (r *Registry) SwitchTo(index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.pages) {
		r.log.Warning(fmt.Sprintf("navigation: ignoring switch to index %d (have %d pages)", index, len(r.pages)))
		return false
	}
	r.active = index
	return true
}

// SwitchToPage makes the page with the given id active. Unknown ids are a
// no-op with a warning.
func (r *Registry) SwitchToPage(id PageID) bool {
	index, ok := r.Index(id)
	if !ok {
		r.log.Warning(fmt.Sprintf("navigation: ignoring switch to unknown page %q", id))
		return false
	}
	return r.SwitchTo(index)
}

// Active returns the active index and page, or -1 and nil when empty.
func (r *Registry) Active() (int, Page) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.pages) == 0 {
		return -1, nil
	}
	return r.active, r.pages[r.active]
}

func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.pages))
	for i, p := range r.pages {
		out = append(out, describe(i, p))
	}
	return out
}
