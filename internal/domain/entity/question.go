package entity

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// Question представляет один практический вопрос для подготовки к интервью.
// Поле Shown — флаг "вопрос уже показан": после установки в true он никогда
// не сбрасывается обратно, что и даёт гарантию отсутствия повторов.
type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Question     string    `gorm:"size:255;not null" json:"question"` // Заголовок задачи, уникальность мягкая (см. ExclusionResolver)
	Description  string    `gorm:"type:text" json:"description"`
	Constraints  string    `gorm:"type:text" json:"constraints"`
	Hint         string    `gorm:"type:text" json:"hint"`
	Solution     string    `gorm:"type:text" json:"solution"`
	CodeSolution string    `gorm:"type:text" json:"code_solution"`
	Category     string    `gorm:"size:100;index" json:"category"`
	Trivia       string    `gorm:"type:text" json:"trivia"`
	Shown        bool      `gorm:"not null;default:false;index" json:"-"` // Скрыто от клиента
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// QuestionDraft — кандидат вопроса, полученный от генеративного сервиса.
// JSON-теги соответствуют полям, которые сервис обязан вернуть в ответе.
type QuestionDraft struct {
	Question     string `json:"question"`
	Description  string `json:"description"`
	Constraints  string `json:"constraints"`
	Hint         string `json:"hint"`
	Solution     string `json:"solution"`
	CodeSolution string `json:"code_solution"`
	Category     string `json:"category"`
	Trivia       string `json:"trivia"`
}

// requiredDraftFields — поля, без которых кандидат считается некорректным
var requiredDraftFields = []struct {
	name  string
	value func(*QuestionDraft) string
}{
	{"question", func(d *QuestionDraft) string { return d.Question }},
	{"description", func(d *QuestionDraft) string { return d.Description }},
	{"constraints", func(d *QuestionDraft) string { return d.Constraints }},
	{"hint", func(d *QuestionDraft) string { return d.Hint }},
	{"solution", func(d *QuestionDraft) string { return d.Solution }},
	{"code_solution", func(d *QuestionDraft) string { return d.CodeSolution }},
	{"category", func(d *QuestionDraft) string { return d.Category }},
	{"trivia", func(d *QuestionDraft) string { return d.Trivia }},
}

// Validate проверяет, что все обязательные поля кандидата заполнены.
// Возвращает ErrMalformedResponse с перечислением отсутствующих полей.
func (d *QuestionDraft) Validate() error {
	var missing []string
	for _, f := range requiredDraftFields {
		if strings.TrimSpace(f.value(d)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", apperrors.ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return nil
}

// ToQuestion преобразует кандидата в сущность с заданным начальным флагом shown
func (d *QuestionDraft) ToQuestion(shown bool) *Question {
	return &Question{
		Question:     strings.TrimSpace(d.Question),
		Description:  d.Description,
		Constraints:  d.Constraints,
		Hint:         d.Hint,
		Solution:     d.Solution,
		CodeSolution: d.CodeSolution,
		Category:     strings.ToLower(strings.TrimSpace(d.Category)),
		Trivia:       d.Trivia,
		Shown:        shown,
	}
}
