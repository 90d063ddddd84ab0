package assist

import "github.com/gofiber/fiber/v2"

// User-facing fallback texts. Adapter failures must never surface as raw
// errors.
const (
	imageFallbackMessage = "AI was unable to process the image. Please try another one."
	chatFallbackMessage  = "My bad, hit a snag in the system. Try again?"
	disabledMessage      = "AI assist is currently unavailable."
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/assist/visual-search", h.visualSearch)
	app.Post("/api/v1/assist/vibe-check", h.vibeCheck)
	app.Post("/api/v1/assist/chat", h.chat)
}

type imageRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

type vibeCheckRequest struct {
	imageRequest
	ProductName     string `json:"productName"`
	ProductCategory string `json:"productCategory"`
}

type chatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
}

func (req *imageRequest) normalize() {
	if req.MimeType == "" {
		req.MimeType = "image/jpeg"
	}
}

func (h *Handler) visualSearch(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": disabledMessage})
	}
	payload := new(imageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "image is required"})
	}
	payload.normalize()

	match, err := h.service.VisualSearch(payload.Image, payload.MimeType)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": imageFallbackMessage})
	}
	return c.JSON(match)
}

func (h *Handler) vibeCheck(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": disabledMessage})
	}
	payload := new(vibeCheckRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "image is required"})
	}
	if payload.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productName is required"})
	}
	payload.normalize()

	check, err := h.service.VibeCheck(payload.Image, payload.MimeType, payload.ProductName, payload.ProductCategory)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": imageFallbackMessage})
	}
	return c.JSON(check)
}

func (h *Handler) chat(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": disabledMessage})
	}
	payload := new(chatRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "message is required"})
	}

	reply, err := h.service.Chat(payload.History, payload.Message)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": chatFallbackMessage})
	}
	return c.JSON(fiber.Map{"reply": reply})
}
