package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	"github.com/yourusername/interviewprep-api/internal/domain/repository"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// KnowledgeService управляет журналом известных категорий пользователя
type KnowledgeService struct {
	knowledgeRepo repository.KnowledgeRepository
	cacheRepo     repository.CacheRepository
}

// NewKnowledgeService создает новый сервис журнала знаний
func NewKnowledgeService(
	knowledgeRepo repository.KnowledgeRepository,
	cacheRepo repository.CacheRepository,
) *KnowledgeService {
	return &KnowledgeService{
		knowledgeRepo: knowledgeRepo,
		cacheRepo:     cacheRepo,
	}
}

// RecordKnown добавляет факт "пользователь знает категорию" и инвалидирует
// кеш исключений. Фильтрация вопросов здесь не выполняется — она происходит
// лениво в ExclusionResolver на следующем цикле генерации.
func (s *KnowledgeService) RecordKnown(ctx context.Context, userID, category string) (*entity.KnowledgeFact, error) {
	userID = strings.TrimSpace(userID)
	category = strings.ToLower(strings.TrimSpace(category))
	if userID == "" || category == "" {
		return nil, fmt.Errorf("%w: user_id and category are required", apperrors.ErrValidation)
	}

	fact := &entity.KnowledgeFact{
		UserID:   userID,
		Category: category,
	}
	if err := s.knowledgeRepo.Create(fact); err != nil {
		return nil, fmt.Errorf("record known category: %w", err)
	}

	// Кеш известных категорий устарел — сбрасываем
	if err := s.cacheRepo.Delete(ctx, knownCategoriesKey(userID)); err != nil {
		log.Printf("[KnowledgeService] Failed to invalidate category cache for %s: %v", userID, err)
	}

	return fact, nil
}
