package cart

import (
	"sync"

	"github.com/urbanstep/storefront-backend/internal/catalog"
)

// Repository owns cart state per session. All mutation goes through these
// operations; nothing else touches the stored lines.
type Repository interface {
	Add(sessionID string, product catalog.Product, size float64) ([]Item, error)
	UpdateQuantity(sessionID string, productID string, size float64, delta int) ([]Item, error)
	Remove(sessionID string, productID string, size float64) ([]Item, error)
	Items(sessionID string) ([]Item, error)
	Clear(sessionID string) error
}

// InMemoryRepository keeps carts for the lifetime of the process. Unknown
// sessions simply have an empty cart; carts are created lazily on first add.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Item)}
}

// Add merges into an existing line with the same (product id, size) key or
// appends a new line with quantity 1.
func (r *InMemoryRepository) Add(sessionID string, product catalog.Product, size float64) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	for i := range lines {
		if lines[i].ID == product.ID && lines[i].SelectedSize == size {
			lines[i].Quantity++
			r.carts[sessionID] = lines
			return copyItems(lines), nil
		}
	}
	lines = append(lines, Item{Product: product, SelectedSize: size, Quantity: 1})
	r.carts[sessionID] = lines
	return copyItems(lines), nil
}

// UpdateQuantity applies the delta with a floor of 1. Decrementing below 1 is
// a no-op; lines are only removed by Remove or Clear. A missing line is left
// untouched.
func (r *InMemoryRepository) UpdateQuantity(sessionID string, productID string, size float64, delta int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	for i := range lines {
		if lines[i].ID == productID && lines[i].SelectedSize == size {
			q := lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			lines[i].Quantity = q
			r.carts[sessionID] = lines
			break
		}
	}
	return copyItems(lines), nil
}

func (r *InMemoryRepository) Remove(sessionID string, productID string, size float64) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	out := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.ID == productID && l.SelectedSize == size {
			continue
		}
		out = append(out, l)
	}
	r.carts[sessionID] = out
	return copyItems(out), nil
}

func (r *InMemoryRepository) Items(sessionID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyItems(r.carts[sessionID]), nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

func copyItems(lines []Item) []Item {
	out := make([]Item, len(lines))
	copy(out, lines)
	return out
}
