package assist

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fakeGemini serves a canned generateContent reply and records the last
// request body it saw.
type fakeGemini struct {
	status   int
	reply    string
	lastBody generateRequest
	lastPath string
	gotKey   string
}

func (f *fakeGemini) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.lastPath = r.URL.Path
		f.gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)

		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": f.reply}},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestService(t *testing.T, fake *fakeGemini) *Service {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewService(NewClient("test-key", srv.URL, zap.NewNop()))
}

func TestVisualSearch_ParsesFencedJSON(t *testing.T) {
	fake := &fakeGemini{
		status: http.StatusOK,
		reply:  "```json\n{\"category\": \"Sneakers\", \"gender\": \"Men\"}\n```",
	}
	s := newTestService(t, fake)

	match, err := s.VisualSearch("data:image/png;base64,QUJD", "image/png")
	if err != nil {
		t.Fatalf("visual search failed: %v", err)
	}
	if match.Category != "Sneakers" || match.Gender != "Men" {
		t.Fatalf("unexpected match: %+v", match)
	}

	if !strings.Contains(fake.lastPath, "gemini-3-flash-preview:generateContent") {
		t.Fatalf("unexpected path: %s", fake.lastPath)
	}
	if fake.gotKey != "test-key" {
		t.Fatalf("api key not sent, got %q", fake.gotKey)
	}
	// the data URL prefix must be stripped before upload
	parts := fake.lastBody.Contents[0].Parts
	if len(parts) != 2 || parts[1].InlineData == nil {
		t.Fatalf("unexpected request parts: %+v", parts)
	}
	if parts[1].InlineData.Data != "QUJD" {
		t.Fatalf("expected bare base64 payload, got %q", parts[1].InlineData.Data)
	}
}

func TestVisualSearch_MalformedJSON(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, reply: "sorry, I can't tell"}
	s := newTestService(t, fake)

	_, err := s.VisualSearch("QUJD", "image/jpeg")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestVisualSearch_ServerError(t *testing.T) {
	fake := &fakeGemini{status: http.StatusInternalServerError}
	s := newTestService(t, fake)

	_, err := s.VisualSearch("QUJD", "image/jpeg")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestVibeCheck_ParsesScoreAndReview(t *testing.T) {
	fake := &fakeGemini{
		status: http.StatusOK,
		reply:  `{"score": 85, "review": "Great match with your denim."}`,
	}
	s := newTestService(t, fake)

	check, err := s.VibeCheck("QUJD", "image/jpeg", "Urban Glide X", "Sneakers")
	if err != nil {
		t.Fatalf("vibe check failed: %v", err)
	}
	if check.Score != 85 || check.Review != "Great match with your denim." {
		t.Fatalf("unexpected check: %+v", check)
	}

	prompt := fake.lastBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Urban Glide X") || !strings.Contains(prompt, "Sneakers") {
		t.Fatalf("product not interpolated into prompt: %s", prompt)
	}
}

func TestChat_SendsHistoryAndSystemPrompt(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, reply: "Go for the Urban Glide X 🔥"}
	s := newTestService(t, fake)

	history := []Message{
		{Role: "user", Text: "What goes with black jeans?"},
		{Role: "model", Text: "Sneakers, always."},
	}
	reply, err := s.Chat(history, "Which model exactly?")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if reply != "Go for the Urban Glide X 🔥" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if fake.lastBody.SystemInstruction == nil {
		t.Fatal("system instruction missing")
	}
	if got := len(fake.lastBody.Contents); got != 3 {
		t.Fatalf("expected history plus new message, got %d contents", got)
	}
	if fake.lastBody.Contents[1].Role != "model" {
		t.Fatalf("history roles not preserved: %+v", fake.lastBody.Contents)
	}
	last := fake.lastBody.Contents[2]
	if last.Role != "user" || last.Parts[0].Text != "Which model exactly?" {
		t.Fatalf("new message not appended last: %+v", last)
	}
}

func TestDisabledClient(t *testing.T) {
	s := NewService(NewClient("", "", zap.NewNop()))

	if s.Enabled() {
		t.Fatal("service without an api key must report disabled")
	}
	if _, err := s.Chat(nil, "hi"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
	}
	for in, want := range cases {
		if got := stripCodeFence(in); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func makeApp(fake *fakeGemini, t *testing.T) *fiber.App {
	app := fiber.New()
	NewHandler(newTestService(t, fake)).RegisterPublicRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
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

func TestVisualSearchHandler(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, reply: `{"category": "Casual", "gender": "Women"}`}
	app := makeApp(fake, t)

	status, body := doJSON(t, app, "/api/v1/assist/visual-search", `{"image":"QUJD"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if !strings.Contains(body, `"category":"Casual"`) {
		t.Fatalf("unexpected body: %s", body)
	}

	status, body = doJSON(t, app, "/api/v1/assist/visual-search", `{}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without image, got %d", status)
	}
	if !strings.Contains(body, "image is required") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestImageHandlersFallbackMessage(t *testing.T) {
	fake := &fakeGemini{status: http.StatusInternalServerError}
	app := makeApp(fake, t)

	status, body := doJSON(t, app, "/api/v1/assist/visual-search", `{"image":"QUJD"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if !strings.Contains(body, "AI was unable to process the image. Please try another one.") {
		t.Fatalf("expected image fallback message: %s", body)
	}

	status, body = doJSON(t, app, "/api/v1/assist/vibe-check", `{"image":"QUJD","productName":"Urban Glide X"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if !strings.Contains(body, "AI was unable to process the image. Please try another one.") {
		t.Fatalf("expected image fallback message: %s", body)
	}
}

func TestChatHandlerFallbackMessage(t *testing.T) {
	fake := &fakeGemini{status: http.StatusInternalServerError}
	app := makeApp(fake, t)

	status, body := doJSON(t, app, "/api/v1/assist/chat", `{"message":"hi"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if !strings.Contains(body, "My bad, hit a snag in the system. Try again?") {
		t.Fatalf("expected chat fallback message: %s", body)
	}
}

func TestHandlersDisabledWithoutKey(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewClient("", "", zap.NewNop()))).RegisterPublicRoutes(app)

	for _, target := range []string{
		"/api/v1/assist/visual-search",
		"/api/v1/assist/vibe-check",
		"/api/v1/assist/chat",
	} {
		status, body := doJSON(t, app, target, `{"image":"QUJD","message":"hi","productName":"x"}`)
		if status != fiber.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", target, status)
		}
		if !strings.Contains(body, "AI assist is currently unavailable.") {
			t.Errorf("%s: unexpected body: %s", target, body)
		}
	}
}

func TestVibeCheckHandlerValidation(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, reply: `{"score": 90, "review": "ok"}`}
	app := makeApp(fake, t)

	status, body := doJSON(t, app, "/api/v1/assist/vibe-check", `{"image":"QUJD"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without productName, got %d", status)
	}
	if !strings.Contains(body, "productName is required") {
		t.Fatalf("unexpected body: %s", body)
	}
}
