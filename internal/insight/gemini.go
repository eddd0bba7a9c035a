package insight

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel - модель по умолчанию, если в конфиге не задана
const DefaultModel = "gemini-3-flash-preview"

// ErrNotConfigured - ключ API не задан, анализ недоступен
var ErrNotConfigured = errors.New("insight service is not configured")

// GeminiGenerator вызывает Gemini API через официальный SDK
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator создает клиента; ключ API передается явно из конфига
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// DisabledGenerator используется, когда ключ API не задан: каждый запрос
// завершается ошибкой, и пользователь видит фиксированный текст.
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
