package dto

import (
	"github.com/yourusername/interviewprep-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Флаг shown наружу не отдаётся: клиент видит только содержимое задачи.
type QuestionResponse struct {
	ID           uint   `json:"id"`
	Question     string `json:"question"`
	Description  string `json:"description"`
	Constraints  string `json:"constraints"`
	Hint         string `json:"hint"`
	Solution     string `json:"solution"`
	CodeSolution string `json:"code_solution"`
	Category     string `json:"category"`
	Trivia       string `json:"trivia"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:           q.ID,
		Question:     q.Question,
		Description:  q.Description,
		Constraints:  q.Constraints,
		Hint:         q.Hint,
		Solution:     q.Solution,
		CodeSolution: q.CodeSolution,
		Category:     q.Category,
		Trivia:       q.Trivia,
	}
}
