package checkout

import (
	"errors"
	"sync"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Repository archives placed orders.
type Repository interface {
	Create(ord Order) (Order, error)
	ListBySession(sessionID string) ([]Order, error)
}

// InMemoryRepository keeps placed orders for the lifetime of the process.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListBySession(sessionID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}
