package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/yourusername/interviewprep-api/internal/config"
	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// OpenAIGenerator — адаптер внешнего генеративного сервиса.
// Переводит доменный запрос "новый вопрос, избегая этих заголовков и
// категорий" в chat completion и валидирует структурированный ответ.
// Список исключений — подсказка модели, а не гарантия: настоящая защита
// от повторов живёт в ExclusionResolver на следующем цикле.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIGenerator создает адаптер генерации вопросов.
// При пустом API-ключе клиент не создаётся: адаптер остаётся рабочим,
// но каждый вызов Generate возвращает ErrUpstreamUnavailable.
func NewOpenAIGenerator(cfg config.OpenAIConfig) *OpenAIGenerator {
	g := &OpenAIGenerator{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}
	if cfg.APIKey == "" {
		return g
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	g.client = openai.NewClientWithConfig(clientConfig)
	return g
}

// Generate запрашивает у сервиса один новый вопрос, избегающий переданных
// заголовков и категорий. Таймаут задаёт вызывающая сторона через ctx.
func (g *OpenAIGenerator) Generate(ctx context.Context, excludedTitles, excludedCategories []string) (*entity.QuestionDraft, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: API key is not configured", apperrors.ErrUpstreamUnavailable)
	}

	prompt := buildPrompt(excludedTitles, excludedCategories)

	log.Printf("[Generator] Requesting new question (model=%s, excluded_titles=%d, excluded_categories=%d)",
		g.model, len(excludedTitles), len(excludedCategories))

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
	})
	if err != nil {
		// Таймаут, транспортная ошибка или не-2xx статус API —
		// всё это недоступность внешнего сервиса. Ретраев здесь нет:
		// политика повтора принадлежит вызывающей стороне.
		log.Printf("[Generator] Request failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response contains no choices", apperrors.ErrMalformedResponse)
	}

	draft, err := parseDraft(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[Generator] Failed to parse response: %v", err)
		return nil, err
	}

	log.Printf("[Generator] Generated question %q (category=%s) in %s",
		draft.Question, draft.Category, time.Since(start).Round(time.Millisecond))
	return draft, nil
}

// parseDraft извлекает структурированный вопрос из свободного текста модели.
// Текст — недоверенный вход: сначала вырезаем сбалансированный JSON-объект,
// затем проверяем наличие всех обязательных полей.
func parseDraft(content string) (*entity.QuestionDraft, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	var draft entity.QuestionDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	if err := draft.Validate(); err != nil {
		if errors.Is(err, apperrors.ErrMalformedResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}
	return &draft, nil
}
