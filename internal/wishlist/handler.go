package wishlist

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanstep/storefront-backend/internal/catalog"
	"github.com/urbanstep/storefront-backend/internal/session"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist/toggle", h.toggle)
	app.Get("/api/v1/wishlist/:id", h.contains)
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	added, list, err := h.service.Toggle(sessionID, payload.ProductID)
	if err != nil {
		switch err {
		case catalog.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{
		"added":      added,
		"items":      list.Items,
		"totalItems": list.TotalItems,
	})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	list, err := h.service.Get(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(list)
}

func (h *Handler) contains(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	in, err := h.service.Contains(sessionID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"inWishlist": in})
}
