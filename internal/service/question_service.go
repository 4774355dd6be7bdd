package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	"github.com/yourusername/interviewprep-api/internal/domain/repository"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// Ключи счётчиков выдачи для страницы статистики
const (
	counterServedKey    = "stats:questions_served"
	counterGeneratedKey = "stats:questions_generated"
)

// QuestionGenerator определяет интерфейс адаптера генеративного сервиса,
// необходимый контроллеру выдачи вопросов.
type QuestionGenerator interface {
	Generate(ctx context.Context, excludedTitles, excludedCategories []string) (*entity.QuestionDraft, error)
}

// QuestionService — контроллер выдачи вопросов.
// На каждый запрос: попытка забрать непоказанный вопрос из хранилища,
// при исчерпании пула — генерация нового с учётом исключений и сохранение
// его сразу показанным. Вопрос никогда не отдаётся клиенту раньше, чем
// его shown-флаг (или вставка) зафиксированы в БД.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	resolver     *ExclusionResolver
	generator    QuestionGenerator
	cacheRepo    repository.CacheRepository
	genTimeout   time.Duration
}

// NewQuestionService создает новый контроллер выдачи вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	resolver *ExclusionResolver,
	generator QuestionGenerator,
	cacheRepo repository.CacheRepository,
	genTimeout time.Duration,
) *QuestionService {
	if genTimeout <= 0 {
		genTimeout = 45 * time.Second
	}
	return &QuestionService{
		questionRepo: questionRepo,
		resolver:     resolver,
		generator:    generator,
		cacheRepo:    cacheRepo,
		genTimeout:   genTimeout,
	}
}

// NextQuestion возвращает следующий вопрос для пользователя.
// Ошибки генерации (ErrUpstreamUnavailable, ErrMalformedResponse) отдаются
// вызывающей стороне как есть; автоматических ретраев нет — повтор это
// просто следующий запрос клиента.
func (s *QuestionService) NextQuestion(ctx context.Context, userID string) (*entity.Question, error) {
	// 1. Пытаемся атомарно забрать непоказанный вопрос из пула
	question, err := s.questionRepo.ClaimRandomUnshown()
	if err == nil {
		s.bumpCounter(ctx, counterServedKey)
		return question, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("claim unshown question: %w", err)
	}

	// 2. Пул исчерпан — собираем исключения и генерируем новый вопрос
	log.Printf("[QuestionService] Question pool exhausted for user %s, generating a new one", userID)

	exclusions, err := s.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve exclusions: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	draft, err := s.generator.Generate(genCtx, exclusions.Titles, exclusions.Categories)
	if err != nil {
		// Ничего не сохраняем: частичного состояния после неудачной
		// генерации быть не должно
		return nil, err
	}

	// 3. Сохраняем сгенерированный вопрос сразу показанным:
	// он немедленно уходит этому же клиенту
	generated := draft.ToQuestion(true)
	if err := s.questionRepo.Insert(generated); err != nil {
		return nil, fmt.Errorf("persist generated question: %w", err)
	}

	s.bumpCounter(ctx, counterServedKey)
	s.bumpCounter(ctx, counterGeneratedKey)
	return generated, nil
}

// bumpCounter инкрементирует счётчик статистики. Строго best-effort:
// недоступный Redis не должен ломать выдачу вопросов.
func (s *QuestionService) bumpCounter(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Increment(ctx, key); err != nil {
		log.Printf("[QuestionService] Failed to increment counter %s: %v", key, err)
	}
}
