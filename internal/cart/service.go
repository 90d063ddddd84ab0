package cart

import "github.com/urbanstep/storefront-backend/internal/catalog"

// Service orchestrates cart operations. It resolves product ids against the
// catalog so the repository only ever stores full product snapshots.
type Service struct {
	repo     Repository
	products *catalog.Service
}

func NewService(repo Repository, products *catalog.Service) *Service {
	return &Service{repo: repo, products: products}
}

// Add puts one unit of the product in the given size into the cart. The size
// is not checked against product.Sizes; that is the caller's responsibility.
func (s *Service) Add(sessionID string, productID string, size float64) (Summary, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Summary{}, err
	}
	items, err := s.repo.Add(sessionID, p, size)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) UpdateQuantity(sessionID string, productID string, size float64, delta int) (Summary, error) {
	items, err := s.repo.UpdateQuantity(sessionID, productID, size, delta)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) Remove(sessionID string, productID string, size float64) (Summary, error) {
	items, err := s.repo.Remove(sessionID, productID, size)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) Get(sessionID string) (Summary, error) {
	items, err := s.repo.Items(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

// Clear empties the cart, typically after checkout completes.
func (s *Service) Clear(sessionID string) error {
	return s.repo.Clear(sessionID)
}
