package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/interviewprep-api/internal/handler/dto"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
	"github.com/yourusername/interviewprep-api/internal/service"
)

// DefaultUserID — идентификатор демо-пользователя.
// Аутентификации нет; клиент может переопределить его query-параметром.
const DefaultUserID = "user1"

// QuestionHandler обрабатывает запросы выдачи вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetQuestion возвращает следующий вопрос для пользователя.
// GET /question?user_id=...
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	userID := c.DefaultQuery("user_id", DefaultUserID)

	question, err := h.questionService.NextQuestion(c.Request.Context(), userID)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// handleQuestionError переводит ошибки контроллера выдачи в HTTP-ответы.
// Ошибки генерации схлопываются в общий ответ без деталей внешнего сервиса;
// ошибки хранилища отдаются как есть (доверенный однопользовательский контур).
func (h *QuestionHandler) handleQuestionError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrUpstreamUnavailable) || errors.Is(err, apperrors.ErrMalformedResponse) {
		log.Printf("[QuestionHandler] Generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not produce question"})
		return
	}

	log.Printf("[QuestionHandler] Store error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
