package assist

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

var (
	// ErrUnavailable covers network failures and non-200 replies from the
	// generative API. It never propagates past the assist boundary.
	ErrUnavailable = errors.New("assist service unavailable")
	// ErrBadResponse covers empty or malformed model output.
	ErrBadResponse = errors.New("assist returned a malformed response")
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	modelName      = "gemini-3-flash-preview"
	requestTimeout = 30 * time.Second
)

// Client is a thin wrapper around the Gemini generateContent endpoint.
// A client without an API key is disabled; callers must check Enabled.
type Client struct {
	apiKey  string
	baseURL string
	logger  *zap.Logger
}

// NewClient builds a client. baseURL may be empty to use the hosted API; it
// is overridable for tests.
func NewClient(apiKey string, baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, logger: logger}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends one request and returns the first candidate's text.
func (c *Client) generate(req generateRequest) (string, error) {
	if !c.Enabled() {
		return "", ErrUnavailable
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, modelName)

	var (
		resp generateResponse
		code int
	)
	err := gout.POST(url).
		SetTimeout(requestTimeout).
		SetHeader(gout.H{"x-goog-api-key": c.apiKey}).
		SetJSON(req).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		c.logger.Warn("assist request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if code != http.StatusOK {
		c.logger.Warn("assist request rejected", zap.Int("status", code))
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, code)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", ErrBadResponse)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
