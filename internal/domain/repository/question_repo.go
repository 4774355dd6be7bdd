package repository

import (
	"github.com/yourusername/interviewprep-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// ClaimRandomUnshown атомарно выбирает случайный непоказанный вопрос и
	// помечает его показанным одним условным UPDATE (закрывает гонку
	// fetch-then-mark). Возвращает ErrNotFound, когда непоказанных не осталось.
	ClaimRandomUnshown() (*entity.Question, error)

	// GetRandomUnshown возвращает случайный вопрос с shown=false без побочных
	// эффектов. ErrNotFound — когда подходящих строк нет.
	GetRandomUnshown() (*entity.Question, error)

	// MarkShown идемпотентно устанавливает shown=true.
	// ErrNotFound — если записи с таким id не существует.
	MarkShown(id uint) error

	// Insert сохраняет новый вопрос с заданным начальным значением shown
	// и присваивает ему свежий id.
	Insert(question *entity.Question) error

	CreateBatch(questions []entity.Question) error
	List() ([]entity.Question, error)

	// AllTitles возвращает заголовки всех сохранённых вопросов (для исключений)
	AllTitles() ([]string, error)

	// Счётчики для страницы статистики
	CountTotal() (int64, error)
	CountShown() (int64, error)
}
