package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanstep/storefront-backend/internal/catalog"
	"github.com/urbanstep/storefront-backend/internal/session"
)

// Handler delegates cart operations to the cart service. This keeps
// cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items", h.updateQuantity)
	app.Delete("/api/v1/cart/items", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type itemRequest struct {
	ProductID string  `json:"productId"`
	Size      float64 `json:"size"`
	Delta     int     `json:"delta,omitempty"`
}

func (req *itemRequest) validate() string {
	if req.ProductID == "" {
		return "productId is required"
	}
	if req.Size <= 0 {
		return "size is required"
	}
	return ""
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	summary, err := h.service.Add(sessionID, payload.ProductID, payload.Size)
	if err != nil {
		switch err {
		case catalog.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(summary)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	summary, err := h.service.UpdateQuantity(sessionID, payload.ProductID, payload.Size, payload.Delta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	summary, err := h.service.Remove(sessionID, payload.ProductID, payload.Size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	summary, err := h.service.Get(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
