package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
)

// KnowledgeRepo реализует repository.KnowledgeRepository
type KnowledgeRepo struct {
	db *gorm.DB
}

// NewKnowledgeRepo создает новый репозиторий журнала знаний
func NewKnowledgeRepo(db *gorm.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// Create добавляет факт в журнал. Никакой проверки на дубликаты:
// журнал append-only, повторные пары (user_id, category) безвредны.
func (r *KnowledgeRepo) Create(fact *entity.KnowledgeFact) error {
	return r.db.Create(fact).Error
}

// KnownCategories возвращает уникальные категории, отмеченные пользователем
func (r *KnowledgeRepo) KnownCategories(userID string) ([]string, error) {
	var categories []string
	err := r.db.Model(&entity.KnowledgeFact{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CountFacts возвращает общее число фактов в журнале
func (r *KnowledgeRepo) CountFacts() (int64, error) {
	var count int64
	err := r.db.Model(&entity.KnowledgeFact{}).Count(&count).Error
	return count, err
}
