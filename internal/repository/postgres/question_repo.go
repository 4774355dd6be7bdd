package postgres

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// claimSQL атомарно выбирает случайную непоказанную строку и переводит её
// в shown=true одним оператором. SKIP LOCKED исключает выдачу одной строки
// двум параллельным запросам.
const claimSQL = `
	UPDATE questions
	SET shown = TRUE, updated_at = NOW()
	WHERE id = (
		SELECT id FROM questions
		WHERE shown = FALSE
		ORDER BY RANDOM()
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	)
	RETURNING *
`

// ClaimRandomUnshown атомарно "забирает" случайный непоказанный вопрос.
// Возвращает ErrNotFound, когда непоказанных вопросов не осталось.
func (r *QuestionRepo) ClaimRandomUnshown() (*entity.Question, error) {
	var question entity.Question
	res := r.db.Raw(claimSQL).Scan(&question)
	if res.Error == nil {
		if res.RowsAffected == 0 {
			return nil, apperrors.ErrNotFound
		}
		return &question, nil
	}

	// Fallback на двухшаговый вариант, если UPDATE...RETURNING не прошёл
	// (например, на урезанной СУБД в тестовом окружении). Одна повторная
	// попытка на случай гонки между выборкой и пометкой.
	log.Printf("[QuestionRepo] Atomic claim failed, falling back to fetch+mark: %v", res.Error)
	for attempt := 0; attempt < 2; attempt++ {
		question, err := r.GetRandomUnshown()
		if err != nil {
			return nil, err
		}
		if err := r.MarkShown(question.ID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue // Строку успели удалить — пробуем ещё раз
			}
			return nil, err
		}
		// Флаг уже переведён в БД — отражаем это и в возвращаемой записи,
		// как делает атомарный вариант
		question.Shown = true
		return question, nil
	}
	return nil, apperrors.ErrNotFound
}

// GetRandomUnshown возвращает случайный вопрос с shown=false.
// Выборка без побочных эффектов; равномерность обеспечивает ORDER BY RANDOM()
// (таблица маленькая, TABLESAMPLE здесь не оправдан).
func (r *QuestionRepo) GetRandomUnshown() (*entity.Question, error) {
	var question entity.Question
	err := r.db.Where("shown = ?", false).Order("RANDOM()").First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// MarkShown идемпотентно помечает вопрос показанным.
// Повторный вызов для уже показанного вопроса не является ошибкой.
func (r *QuestionRepo) MarkShown(id uint) error {
	res := r.db.Model(&entity.Question{}).
		Where("id = ?", id).
		Update("shown", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Insert сохраняет новый вопрос и присваивает ему id
func (r *QuestionRepo) Insert(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов (используется при посеве)
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// List возвращает все вопросы (для административного экспорта)
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// AllTitles возвращает заголовки всех сохранённых вопросов
func (r *QuestionRepo) AllTitles() ([]string, error) {
	var titles []string
	err := r.db.Model(&entity.Question{}).Order("id").Pluck("question", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// CountTotal возвращает общее число вопросов
func (r *QuestionRepo) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// CountShown возвращает число уже показанных вопросов
func (r *QuestionRepo) CountShown() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Where("shown = ?", true).Count(&count).Error
	return count, err
}
