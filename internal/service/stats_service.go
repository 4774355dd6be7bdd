package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/yourusername/interviewprep-api/internal/domain/repository"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// Stats — снимок показателей для страницы дашборда
type Stats struct {
	TotalQuestions int64 `json:"total_questions"`
	ShownQuestions int64 `json:"shown_questions"`
	KnownFacts     int64 `json:"known_facts"`
	ServedTotal    int64 `json:"served_total"`
	GeneratedTotal int64 `json:"generated_total"`
}

// StatsService собирает показатели из БД и счётчиков в кеше
type StatsService struct {
	questionRepo  repository.QuestionRepository
	knowledgeRepo repository.KnowledgeRepository
	cacheRepo     repository.CacheRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	questionRepo repository.QuestionRepository,
	knowledgeRepo repository.KnowledgeRepository,
	cacheRepo repository.CacheRepository,
) *StatsService {
	return &StatsService{
		questionRepo:  questionRepo,
		knowledgeRepo: knowledgeRepo,
		cacheRepo:     cacheRepo,
	}
}

// Snapshot возвращает текущие показатели. Ошибки БД фатальны для запроса,
// счётчики из кеша — best-effort (при недоступном Redis остаются нулями).
func (s *StatsService) Snapshot(ctx context.Context) (*Stats, error) {
	total, err := s.questionRepo.CountTotal()
	if err != nil {
		return nil, err
	}
	shown, err := s.questionRepo.CountShown()
	if err != nil {
		return nil, err
	}
	facts, err := s.knowledgeRepo.CountFacts()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalQuestions: total,
		ShownQuestions: shown,
		KnownFacts:     facts,
		ServedTotal:    s.readCounter(ctx, counterServedKey),
		GeneratedTotal: s.readCounter(ctx, counterGeneratedKey),
	}, nil
}

// readCounter читает счётчик из кеша; отсутствие ключа — это ноль
func (s *StatsService) readCounter(ctx context.Context, key string) int64 {
	raw, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[StatsService] Failed to read counter %s: %v", key, err)
		}
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("[StatsService] Counter %s has non-numeric value %q", key, raw)
		return 0
	}
	return value
}
