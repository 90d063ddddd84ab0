package wishlist

import (
	"sync"

	"github.com/urbanstep/storefront-backend/internal/catalog"
)

// Repository owns the favorites set per session. Membership is inferred from
// presence in the set, not a flag on the product.
type Repository interface {
	Toggle(sessionID string, product catalog.Product) (added bool, items []catalog.Product, err error)
	Items(sessionID string) ([]catalog.Product, error)
	Contains(sessionID string, productID string) (bool, error)
}

// InMemoryRepository keeps wishlists for the lifetime of the process,
// preserving insertion order.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]catalog.Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string][]catalog.Product)}
}

// Toggle removes the product when present and appends it otherwise. Two
// toggles in a row leave the wishlist unchanged.
func (r *InMemoryRepository) Toggle(sessionID string, product catalog.Product) (bool, []catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[sessionID]
	for i, p := range list {
		if p.ID == product.ID {
			list = append(list[:i], list[i+1:]...)
			r.lists[sessionID] = list
			return false, copyProducts(list), nil
		}
	}
	list = append(list, product)
	r.lists[sessionID] = list
	return true, copyProducts(list), nil
}

func (r *InMemoryRepository) Items(sessionID string) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyProducts(r.lists[sessionID]), nil
}

func (r *InMemoryRepository) Contains(sessionID string, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.lists[sessionID] {
		if p.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func copyProducts(list []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, len(list))
	copy(out, list)
	return out
}
