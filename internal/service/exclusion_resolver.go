package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/interviewprep-api/internal/domain/repository"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// knownCategoriesTTL — время жизни кеша известных категорий пользователя.
// Кеш инвалидируется явно при записи нового факта, TTL — страховка.
const knownCategoriesTTL = 5 * time.Minute

// knownCategoriesKey формирует ключ кеша известных категорий пользователя
func knownCategoriesKey(userID string) string {
	return fmt.Sprintf("knowledge:%s:categories", userID)
}

// Exclusions — ограничения для генерации: уже существующие заголовки
// и категории, отмеченные пользователем как известные.
type Exclusions struct {
	Titles     []string
	Categories []string
}

// ExclusionResolver вычисляет ограничения генерации для пользователя.
// Чистая композиция заголовков из хранилища вопросов и категорий из журнала
// знаний; собственного состояния не имеет.
type ExclusionResolver struct {
	questionRepo  repository.QuestionRepository
	knowledgeRepo repository.KnowledgeRepository
	cacheRepo     repository.CacheRepository
}

// NewExclusionResolver создает новый резолвер исключений
func NewExclusionResolver(
	questionRepo repository.QuestionRepository,
	knowledgeRepo repository.KnowledgeRepository,
	cacheRepo repository.CacheRepository,
) *ExclusionResolver {
	return &ExclusionResolver{
		questionRepo:  questionRepo,
		knowledgeRepo: knowledgeRepo,
		cacheRepo:     cacheRepo,
	}
}

// Resolve возвращает ограничения генерации для пользователя.
// Заголовки всегда читаются из БД (они меняются при каждой генерации),
// известные категории идут через кеш с явной инвалидацией.
func (r *ExclusionResolver) Resolve(ctx context.Context, userID string) (*Exclusions, error) {
	titles, err := r.questionRepo.AllTitles()
	if err != nil {
		return nil, fmt.Errorf("load question titles: %w", err)
	}

	categories, err := r.knownCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load known categories: %w", err)
	}

	return &Exclusions{
		Titles:     titles,
		Categories: categories,
	}, nil
}

// knownCategories читает известные категории через кеш.
// Любая ошибка кеша не фатальна: проваливаемся в БД и логируем.
func (r *ExclusionResolver) knownCategories(ctx context.Context, userID string) ([]string, error) {
	key := knownCategoriesKey(userID)

	var cached []string
	err := r.cacheRepo.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[ExclusionResolver] Cache read failed for %s: %v. Falling back to database.", key, err)
	}

	categories, err := r.knowledgeRepo.KnownCategories(userID)
	if err != nil {
		return nil, err
	}

	if err := r.cacheRepo.SetJSON(ctx, key, categories, knownCategoriesTTL); err != nil {
		log.Printf("[ExclusionResolver] Cache write failed for %s: %v", key, err)
	}
	return categories, nil
}
