package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
	"github.com/yourusername/interviewprep-api/internal/service"
)

// KnowledgeHandler обрабатывает запросы журнала знаний
type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
}

// NewKnowledgeHandler создает новый обработчик журнала знаний
func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

// KnowCategoryRequest представляет запрос "я знаю эту категорию"
type KnowCategoryRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// KnowCategory отмечает категорию известной для пользователя.
// POST /know-category
func (h *KnowledgeHandler) KnowCategory(c *gin.Context) {
	var req KnowCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fact, err := h.knowledgeService.RecordKnown(c.Request.Context(), req.UserID, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[KnowledgeHandler] Store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fact.ID})
}
