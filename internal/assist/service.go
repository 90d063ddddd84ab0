package assist

import (
	"encoding/json"
	"fmt"
	"strings"
)

const stylistSystemPrompt = `You are the UrbanStep Senior Stylist and Support Agent.
UrbanStep is a premium footwear brand selling Sneakers, Sports, and Casual shoes.
Your tone is modern, helpful, urban, and confident.
You help customers with:
1. Finding the right shoe for their lifestyle.
2. Sizing advice (UrbanStep shoes usually run true to size).
3. Styling tips for urban outfits.
4. Brand information (Est 2018, NYC-based).
Keep responses concise and punchy. Use emojis occasionally (👟, ✨, 🔥).`

const visualSearchPrompt = `Analyze this shoe image and tell me the most likely category (Sneakers, Sports, or Casual) and if it looks more like a Men's or Women's shoe. Return only a JSON object like: {"category": "Sneakers", "gender": "Men"}`

const vibeCheckPromptFmt = `Analyze the uploaded outfit image and compare it with the %s shoe which is a %s shoe. Give me a style 'Vibe Check' score out of 100 and a short 2-sentence styling advice paragraph. Return only a JSON object like: {"score": 85, "review": "This is a perfect match! The casual vibe of your denim pairs excellently with the sleek lines of the Urban Glide X."}`

// VisualMatch is the parsed visual-search answer, used to pre-select shop
// filters.
type VisualMatch struct {
	Category string `json:"category"`
	Gender   string `json:"gender"`
}

// VibeCheck is the parsed outfit-compatibility answer.
type VibeCheck struct {
	Score  int    `json:"score"`
	Review string `json:"review"`
}

// Message is one turn of the stylist chat.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Service wraps the three assist call patterns. Every method returns either a
// parsed result or an error wrapping ErrUnavailable / ErrBadResponse.
type Service struct {
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Enabled reports whether assist features are configured.
func (s *Service) Enabled() bool {
	return s.client.Enabled()
}

// VisualSearch infers category and gender from a shoe photo.
func (s *Service) VisualSearch(imageData string, mimeType string) (VisualMatch, error) {
	text, err := s.client.generate(generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: visualSearchPrompt},
				{InlineData: &inlineData{MimeType: mimeType, Data: stripDataURL(imageData)}},
			},
		}},
	})
	if err != nil {
		return VisualMatch{}, err
	}

	var match VisualMatch
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &match); err != nil {
		return VisualMatch{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return match, nil
}

// VibeCheck scores an outfit photo against a product.
func (s *Service) VibeCheck(imageData string, mimeType string, productName string, productCategory string) (VibeCheck, error) {
	prompt := fmt.Sprintf(vibeCheckPromptFmt, productName, productCategory)
	text, err := s.client.generate(generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: prompt},
				{InlineData: &inlineData{MimeType: mimeType, Data: stripDataURL(imageData)}},
			},
		}},
	})
	if err != nil {
		return VibeCheck{}, err
	}

	var check VibeCheck
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &check); err != nil {
		return VibeCheck{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return check, nil
}

// Chat sends the conversation so far plus the new message and returns the
// stylist's freeform reply.
func (s *Service) Chat(history []Message, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return s.client.generate(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: stylistSystemPrompt}}},
		Contents:          contents,
	})
}

// stripCodeFence removes markdown fences the model tends to wrap JSON
// answers in.
func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// stripDataURL drops a "data:<mime>;base64," prefix when clients send the
// whole data URL instead of the raw base64 payload.
func stripDataURL(data string) string {
	if strings.HasPrefix(data, "data:") {
		if i := strings.IndexByte(data, ','); i >= 0 {
			return data[i+1:]
		}
	}
	return data
}
