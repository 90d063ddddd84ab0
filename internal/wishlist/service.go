package wishlist

import "github.com/urbanstep/storefront-backend/internal/catalog"

// List is the wishlist with its derived count.
type List struct {
	Items      []catalog.Product `json:"items"`
	TotalItems int               `json:"totalItems"`
}

// Service orchestrates wishlist operations.
type Service struct {
	repo     Repository
	products *catalog.Service
}

func NewService(repo Repository, products *catalog.Service) *Service {
	return &Service{repo: repo, products: products}
}

// Toggle flips membership of the product and reports whether it was added.
func (s *Service) Toggle(sessionID string, productID string) (bool, List, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return false, List{}, err
	}
	added, items, err := s.repo.Toggle(sessionID, p)
	if err != nil {
		return false, List{}, err
	}
	return added, makeList(items), nil
}

func (s *Service) Get(sessionID string) (List, error) {
	items, err := s.repo.Items(sessionID)
	if err != nil {
		return List{}, err
	}
	return makeList(items), nil
}

func (s *Service) Contains(sessionID string, productID string) (bool, error) {
	return s.repo.Contains(sessionID, productID)
}

func makeList(items []catalog.Product) List {
	if items == nil {
		items = []catalog.Product{}
	}
	return List{Items: items, TotalItems: len(items)}
}
