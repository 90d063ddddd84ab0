package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Manager issues and verifies anonymous guest-session tokens. A token carries
// no identity; it only names the cart and wishlist of one browsing session.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates a fresh session id and a signed token naming it.
func (m *Manager) Issue() (token string, sessionID string, err error) {
	sessionID = uuid.NewString()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

// Middleware rejects requests without a valid session token. The verified
// token ends up at Locals("user") for FromCtx.
func (m *Manager) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: m.secret,
	})
}

// FromCtx extracts the session id from a request that passed Middleware.
func FromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if raw, ok := claims["session_id"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			return s, nil
		}
	}
	return "", fiber.ErrUnauthorized
}
