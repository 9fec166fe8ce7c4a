// Package genapi implements the text-generation provider on top of the
// gen-api.ru synchronous chat API.
package genapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.gen-api.ru/api/v1/networks/o1-mini"
	defaultModel   = "o1-mini-2024-09-12"
)

const enrichPromptFmt = `Переведи английское слово %[1]q на русский язык и дай 3 коротких примера использования этого слова на английском языке. Ответь ТОЛЬКО в формате JSON без дополнительного текста: {"translation": "краткий русский перевод", "examples": ["Example 1 with %[1]s", "Example 2 with %[1]s", "Example 3 with %[1]s"]}`

const generatePromptFmt = `На основе запроса пользователя: %q - подбери %d английских слов которые соответствуют этой теме. Для каждого слова дай русский перевод и 3 коротких примера использования на английском. Ответь ТОЛЬКО в формате JSON массива без дополнительного текста: [{"word": "english_word", "translation": "русский перевод", "examples": ["Example 1", "Example 2", "Example 3"]}]`

// Client calls the gen-api.ru chat endpoint. A client with an empty API
// key is disabled; callers are expected to check Enabled and fall back.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client with the default gen-api.ru endpoint.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return NewClientWithURL(apiKey, defaultBaseURL, defaultModel, logger)
}

// NewClientWithURL creates a Client with a custom endpoint and model
// (for testing and configuration overrides).
func NewClientWithURL(apiKey, baseURL, model string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("adapter", "genapi"),
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// EnrichWord asks the model for a translation and usage examples for a
// single English word. Returns a domain.ErrUpstream-wrapped error on any
// provider failure; callers degrade to placeholders.
func (c *Client) EnrichWord(ctx context.Context, word string) (domain.Enrichment, error) {
	if !c.Enabled() {
		return domain.Enrichment{}, fmt.Errorf("genapi: no api key: %w", domain.ErrUpstream)
	}

	prompt := fmt.Sprintf(enrichPromptFmt, word)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		c.log.WarnContext(ctx, "enrichment failed",
			slog.String("word", word), slog.String("error", err.Error()))
		return domain.Enrichment{}, err
	}

	var payload enrichmentPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &payload); err != nil {
		return domain.Enrichment{}, fmt.Errorf("genapi: decode enrichment: %v: %w", err, domain.ErrUpstream)
	}
	if payload.Translation == "" {
		return domain.Enrichment{}, fmt.Errorf("genapi: empty translation: %w", domain.ErrUpstream)
	}

	c.log.DebugContext(ctx, "word enriched",
		slog.String("word", word), slog.Int("examples", len(payload.Examples)))

	return domain.Enrichment{
		Translation: payload.Translation,
		Examples:    payload.Examples,
	}, nil
}

// GenerateWords asks the model for up to count topic words matching the
// user's prompt. There is no fallback; an empty or failed response is a
// domain.ErrUpstream-wrapped error.
func (c *Client) GenerateWords(ctx context.Context, prompt string, count int) ([]domain.GeneratedWord, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("genapi: no api key: %w", domain.ErrUpstream)
	}

	content, err := c.complete(ctx, fmt.Sprintf(generatePromptFmt, prompt, count))
	if err != nil {
		c.log.WarnContext(ctx, "generation failed",
			slog.String("prompt", prompt), slog.String("error", err.Error()))
		return nil, err
	}

	var items []generatedPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &items); err != nil {
		return nil, fmt.Errorf("genapi: decode generated words: %v: %w", err, domain.ErrUpstream)
	}

	if len(items) > count {
		items = items[:count]
	}

	out := make([]domain.GeneratedWord, 0, len(items))
	for _, it := range items {
		if it.Word == "" {
			continue
		}
		out = append(out, domain.GeneratedWord{
			Word:        it.Word,
			Translation: it.Translation,
			Examples:    it.Examples,
		})
	}

	c.log.DebugContext(ctx, "words generated",
		slog.String("prompt", prompt), slog.Int("count", len(out)))

	return out, nil
}

// complete performs one synchronous chat request and returns the model's
// message text.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(apiRequest{
		IsSync:      true,
		Messages:    []apiMessage{{Role: "user", Content: prompt}},
		Model:       c.model,
		Stream:      false,
		Temperature: 1,
	})
	if err != nil {
		return "", fmt.Errorf("genapi: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("genapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("genapi: request failed: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genapi: unexpected status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("genapi: read body: %v: %w", err, domain.ErrUpstream)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("genapi: decode response: %v: %w", err, domain.ErrUpstream)
	}

	content := parsed.content()
	if content == "" {
		return "", fmt.Errorf("genapi: empty completion: %w", domain.ErrUpstream)
	}
	return content, nil
}
