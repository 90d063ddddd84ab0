package checkout

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/urbanstep/storefront-backend/internal/cart"
)

// Service places simulated orders: it snapshots the session cart, archives
// the order and clears the cart. No payment gateway is called.
type Service struct {
	repo   Repository
	carts  *cart.Service
	logger *zap.Logger
}

func NewService(repo Repository, carts *cart.Service, logger *zap.Logger) *Service {
	return &Service{repo: repo, carts: carts, logger: logger}
}

// PlaceOrder validates nothing beyond cart contents; field validation is the
// handler's job. An empty cart is rejected.
func (s *Service) PlaceOrder(sessionID string, info Info) (Order, error) {
	summary, err := s.carts.Get(sessionID)
	if err != nil {
		return Order{}, err
	}
	if len(summary.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	ord := Order{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Items:      summary.Items,
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice,
		Shipping:   info,
		Status:     StatusConfirmed,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}

	if err := s.carts.Clear(sessionID); err != nil {
		s.logger.Warn("cart clear after checkout failed", zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("orderId", created.ID),
		zap.Int("totalItems", created.TotalItems),
		zap.String("totalPrice", created.TotalPrice.String()),
	)
	return created, nil
}

func (s *Service) ListOrders(sessionID string) ([]Order, error) {
	return s.repo.ListBySession(sessionID)
}
