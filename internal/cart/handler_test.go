package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/urbanstep/storefront-backend/internal/catalog"
)

// makeApp mounts the cart routes behind a fake session middleware that turns
// the X-Session-ID header into the token locals the real middleware would set.
func makeApp() *fiber.App {
	products := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	handler := NewHandler(NewService(NewInMemoryRepository(), products))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"session_id": v}})
		}
		return c.Next()
	})
	handler.RegisterProtectedRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "test-session")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func TestCartRoutesRegistered(t *testing.T) {
	app := makeApp()

	want := map[string]string{
		"GET /api/v1/cart":          "",
		"POST /api/v1/cart/items":   "",
		"PATCH /api/v1/cart/items":  "",
		"DELETE /api/v1/cart/items": "",
		"DELETE /api/v1/cart":       "",
	}
	for _, routes := range app.Stack() {
		for _, route := range routes {
			delete(want, route.Method+" "+route.Path)
		}
	}
	for missing := range want {
		t.Errorf("route not registered: %s", missing)
	}
}

func TestAddItemHandler(t *testing.T) {
	app := makeApp()

	status, body := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"1","size":9}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if !strings.Contains(body, `"totalItems":1`) {
		t.Fatalf("expected totalItems 1 in body: %s", body)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"1","size":9}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, `"quantity":2`) || !strings.Contains(body, `"totalItems":2`) {
		t.Fatalf("expected merged line with quantity 2: %s", body)
	}
	if !strings.Contains(body, `"totalPrice":258`) {
		t.Fatalf("expected totalPrice 258: %s", body)
	}
}

func TestAddItemValidation(t *testing.T) {
	app := makeApp()

	status, body := doJSON(t, app, "POST", "/api/v1/cart/items", `{"size":9}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing productId, got %d", status)
	}
	if !strings.Contains(body, "productId is required") {
		t.Fatalf("unexpected body: %s", body)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"1"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing size, got %d", status)
	}
	if !strings.Contains(body, "size is required") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	app := makeApp()

	status, body := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"999","size":9}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if !strings.Contains(body, "product not found") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUpdateQuantityHandler(t *testing.T) {
	app := makeApp()

	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"1","size":9}`)

	status, body := doJSON(t, app, "PATCH", "/api/v1/cart/items", `{"productId":"1","size":9,"delta":-100}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, `"quantity":1`) {
		t.Fatalf("expected quantity floored at 1: %s", body)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	app := makeApp()

	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"1","size":9}`)
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":"3","size":8}`)

	status, body := doJSON(t, app, "DELETE", "/api/v1/cart/items", `{"productId":"1","size":9}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, `"totalItems":1`) {
		t.Fatalf("expected one item left: %s", body)
	}

	status, _ = doJSON(t, app, "DELETE", "/api/v1/cart", "")
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, `"totalItems":0`) {
		t.Fatalf("expected empty cart: %s", body)
	}
}

func TestMissingSessionUnauthorized(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}
