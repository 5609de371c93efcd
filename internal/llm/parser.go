// Package llm turns free-text travel confirmations into domain.ParsedTravelData
// using a chat-completion model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// DefaultModel is a low-cost model that handles the extraction well.
const DefaultModel = openai.GPT4oMini

const (
	temperature = 0.1
	maxTokens   = 1000
)

// ChatCompleter is the slice of the OpenAI client the parser uses.
// *openai.Client satisfies it; tests pass a fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Parser extracts travel data from confirmation text.
type Parser struct {
	client ChatCompleter
	model  string
}

// NewParser builds a Parser backed by the OpenAI API. With an empty apiKey the
// Parser is still returned but every Parse fails with domain.ErrNotConfigured.
// baseURL may be empty to use the public endpoint.
func NewParser(apiKey, model, baseURL string, httpClient *http.Client) *Parser {
	if apiKey == "" {
		return &Parser{model: model}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return NewParserWithClient(openai.NewClientWithConfig(cfg), model)
}

// NewParserWithClient builds a Parser around any ChatCompleter.
func NewParserWithClient(client ChatCompleter, model string) *Parser {
	if model == "" {
		model = DefaultModel
	}
	return &Parser{client: client, model: model}
}

// Parse sends text to the model and returns the extracted fields.
// Null and empty-string values in the model output are dropped.
func (p *Parser) Parse(ctx context.Context, text string) (domain.ParsedTravelData, error) {
	if p.client == nil {
		return domain.ParsedTravelData{}, fmt.Errorf("llm.Parser.Parse: %w: OPENAI_API_KEY is not set", domain.ErrNotConfigured)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(text)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return domain.ParsedTravelData{}, extractionError(err.Error())
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return domain.ParsedTravelData{}, extractionError("No response from AI")
	}

	raw, err := ExtractJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.ParsedTravelData{}, extractionError(err.Error())
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.ParsedTravelData{}, extractionError(err.Error())
	}

	return FromFields(CleanFields(fields)), nil
}

func extractionError(reason string) error {
	return fmt.Errorf("llm.Parser.Parse: %w: Failed to parse confirmation: %s", domain.ErrExtraction, reason)
}

// ErrNoJSON is returned by ExtractJSONObject when s holds no complete object.
var ErrNoJSON = errors.New("No valid JSON found in AI response")

// ExtractJSONObject returns the first balanced top-level {...} in s.
// Braces inside JSON string literals are ignored.
func ExtractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSON
}

// CleanFields removes keys whose value is null or an empty string.
func CleanFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// FromFields coerces a decoded JSON object into ParsedTravelData.
// Strings accept numbers, booleans accept "true"/"false", and the guest count
// accepts numeric strings; anything else is ignored.
func FromFields(f map[string]any) domain.ParsedTravelData {
	return domain.ParsedTravelData{
		City:      str(f, "city"),
		Country:   str(f, "country"),
		StartDate: str(f, "startDate"),
		EndDate:   str(f, "endDate"),

		AccommodationName:       str(f, "accommodation_name"),
		AccommodationType:       str(f, "accommodation_type"),
		AccommodationAddress:    str(f, "accommodation_address"),
		AccommodationConfirmed:  boolean(f, "accommodation_confirmed"),
		AccommodationGuests:     integer(f, "accommodation_guests"),
		AccommodationBookingURL: str(f, "accommodation_bookingUrl"),

		TransportType:       str(f, "transport_type"),
		TransportFrom:       str(f, "transport_from"),
		TransportTo:         str(f, "transport_to"),
		TransportDate:       str(f, "transport_date"),
		TransportTime:       str(f, "transport_time"),
		TransportProvider:   str(f, "transport_provider"),
		TransportStatus:     str(f, "transport_status"),
		TransportBookingURL: str(f, "transport_bookingUrl"),

		ConfirmationNumber: str(f, "confirmationNumber"),
		Notes:              str(f, "notes"),
	}
}

func str(f map[string]any, key string) string {
	switch v := f[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func boolean(f map[string]any, key string) *bool {
	switch v := f[key].(type) {
	case bool:
		return &v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return &b
		}
	}
	return nil
}

func integer(f map[string]any, key string) *int {
	switch v := f[key].(type) {
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &n
		}
	}
	return nil
}
