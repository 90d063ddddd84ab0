package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/filters", h.getFilters)
	app.Get("/api/v1/product/:id", h.getProduct)
	app.Get("/api/v1/product/:id/related", h.getRelated)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	params := FilterParams{
		Gender:   c.Query("gender"),
		Category: c.Query("category"),
		SaleOnly: c.Query("sale") == "true",
		SortBy:   c.Query("sortBy"),
	}

	if raw := c.Query("maxPrice"); raw != "" {
		bound, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid maxPrice"})
		}
		if bound.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "maxPrice must be >= 0"})
		}
		params.MaxPrice = &bound
	}

	return c.JSON(h.service.List(params))
}

// getFilters exposes the filter vocabulary so clients do not hardcode it.
// The price bounds are the slider range of the shop view; the engine itself
// accepts any non-negative maxPrice.
func (h *Handler) getFilters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": Categories,
		"genders":    Genders,
		"sortKeys":   SortKeys,
		"priceBounds": fiber.Map{
			"min": 50,
			"max": 250,
		},
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getRelated(c *fiber.Ctx) error {
	limit := 4
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := h.service.Related(c.Params("id"), limit)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(items)
}
