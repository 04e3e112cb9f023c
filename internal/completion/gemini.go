package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// --- Gemini API Configuration ---
const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModelRole      = "model"
)

// --- Structs for Gemini API Request/Response ---

type GeminiPayload struct {
	Contents          []GeminiContent   `json:"contents"`
	SystemInstruction *GeminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text,omitempty"`
}

type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	FrequencyPenalty float64 `json:"frequencyPenalty"`
	PresencePenalty  float64 `json:"presencePenalty"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiClient calls the generateContent endpoint.
type GeminiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewGeminiClient returns a client for baseURL (default v1beta endpoint).
func NewGeminiClient(baseURL, apiKey string, httpClient *http.Client) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Complete maps system turns onto systemInstruction and the rest onto
// user/model contents, then returns the first candidate's text.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	model := params.Model
	if model == "" || strings.HasPrefix(model, "gpt-") {
		model = DefaultGeminiModel
	}

	payloadBytes, err := json.Marshal(buildGeminiPayload(messages, params))
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	reqCtx, cancel := withTimeout(ctx, params.Timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	zerolog.Ctx(ctx).Debug().Str("model", model).Int("turns", len(messages)).Msg("Calling Gemini API")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		var parsed geminiErrorBody
		if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Message: msg}
	}

	var geminiResp GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

func buildGeminiPayload(messages []Message, params Params) GeminiPayload {
	payload := GeminiPayload{
		GenerationConfig: &GenerationConfig{
			Temperature:      params.Temperature,
			TopP:             params.TopP,
			MaxOutputTokens:  params.MaxTokens,
			FrequencyPenalty: params.FrequencyPenalty,
			PresencePenalty:  params.PresencePenalty,
		},
	}

	var system []GeminiPart
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, GeminiPart{Text: m.Content})
		case RoleAssistant:
			payload.Contents = append(payload.Contents, GeminiContent{Role: geminiModelRole, Parts: []GeminiPart{{Text: m.Content}}})
		default:
			payload.Contents = append(payload.Contents, GeminiContent{Role: string(RoleUser), Parts: []GeminiPart{{Text: m.Content}}})
		}
	}
	if len(system) > 0 {
		payload.SystemInstruction = &GeminiContent{Parts: system}
	}
	return payload
}
