package repository

import (
	"github.com/yourusername/interviewprep-api/internal/domain/entity"
)

// KnowledgeRepository определяет методы для журнала знаний пользователя
type KnowledgeRepository interface {
	// Create добавляет факт "пользователь знает категорию".
	// Дубликаты допустимы и не считаются ошибкой.
	Create(fact *entity.KnowledgeFact) error

	// KnownCategories возвращает уникальные категории, когда-либо
	// отмеченные пользователем как известные.
	KnownCategories(userID string) ([]string, error)

	// CountFacts возвращает общее число фактов в журнале
	CountFacts() (int64, error)
}
