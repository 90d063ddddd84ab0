package catalog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog narrowed and ordered by the given params.
func (s *Service) List(p FilterParams) []Product {
	return Filter(s.repo.List(), p)
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// Related returns up to limit products sharing the category of the given
// product, excluding the product itself.
func (s *Service) Related(id string, limit int) ([]Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	out := make([]Product, 0, limit)
	for _, other := range s.repo.List() {
		if other.ID == p.ID || other.Category != p.Category {
			continue
		}
		out = append(out, other)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
