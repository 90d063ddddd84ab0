package session

import "github.com/gofiber/fiber/v2"

type Handler struct {
	manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.createSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	token, sessionID, err := h.manager.Issue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":     token,
		"sessionId": sessionID,
	})
}
