package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
	"github.com/yourusername/interviewprep-api/internal/service"
)

// ============================================================================
// Моки репозиториев для HTTP-тестов
// ============================================================================

// MockQuestionRepoForHandler реализует repository.QuestionRepository
type MockQuestionRepoForHandler struct {
	mock.Mock
}

func (m *MockQuestionRepoForHandler) ClaimRandomUnshown() (*entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandler) GetRandomUnshown() (*entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandler) MarkShown(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepoForHandler) Insert(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepoForHandler) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepoForHandler) List() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandler) AllTitles() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestionRepoForHandler) CountTotal() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepoForHandler) CountShown() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockKnowledgeRepoForHandler реализует repository.KnowledgeRepository
type MockKnowledgeRepoForHandler struct {
	mock.Mock
}

func (m *MockKnowledgeRepoForHandler) Create(fact *entity.KnowledgeFact) error {
	args := m.Called(fact)
	return args.Error(0)
}

func (m *MockKnowledgeRepoForHandler) KnownCategories(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockKnowledgeRepoForHandler) CountFacts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCacheRepoForHandler реализует repository.CacheRepository
type MockCacheRepoForHandler struct {
	mock.Mock
}

func (m *MockCacheRepoForHandler) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepoForHandler) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepoForHandler) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepoForHandler) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepoForHandler) GetJSON(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

// MockGeneratorForHandler реализует service.QuestionGenerator
type MockGeneratorForHandler struct {
	mock.Mock
}

func (m *MockGeneratorForHandler) Generate(ctx context.Context, excludedTitles, excludedCategories []string) (*entity.QuestionDraft, error) {
	args := m.Called(ctx, excludedTitles, excludedCategories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuestionDraft), args.Error(1)
}

// ============================================================================
// Тесты GET /question
// ============================================================================

func setupQuestionRouter(
	questionRepo *MockQuestionRepoForHandler,
	knowledgeRepo *MockKnowledgeRepoForHandler,
	cacheRepo *MockCacheRepoForHandler,
	gen *MockGeneratorForHandler,
) *gin.Engine {
	gin.SetMode(gin.TestMode)

	resolver := service.NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)
	questionService := service.NewQuestionService(questionRepo, resolver, gen, cacheRepo, time.Second)
	questionHandler := NewQuestionHandler(questionService)

	router := gin.New()
	router.GET("/question", questionHandler.GetQuestion)
	return router
}

// TestGetQuestion_ReturnsStoredQuestion — успешный ответ содержит публичные
// поля вопроса и не содержит служебного флага shown.
func TestGetQuestion_ReturnsStoredQuestion(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	knowledgeRepo := new(MockKnowledgeRepoForHandler)
	cacheRepo := new(MockCacheRepoForHandler)
	gen := new(MockGeneratorForHandler)

	questionRepo.On("ClaimRandomUnshown").Return(&entity.Question{
		ID:           1,
		Question:     "Two Sum",
		Description:  "Find two numbers that add up to target.",
		Category:     "array",
		CodeSolution: "func twoSum() {}",
		Shown:        true,
	}, nil).Once()
	cacheRepo.On("Increment", mock.Anything, mock.Anything).Return(int64(1), nil).Maybe()

	router := setupQuestionRouter(questionRepo, knowledgeRepo, cacheRepo, gen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/question", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Two Sum", body["question"])
	assert.Equal(t, "array", body["category"])
	assert.NotContains(t, body, "shown")
}

// TestGetQuestion_GenerationFailureReturnsOpaque500 — детали отказа внешнего
// сервиса не утекают клиенту.
func TestGetQuestion_GenerationFailureReturnsOpaque500(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	knowledgeRepo := new(MockKnowledgeRepoForHandler)
	cacheRepo := new(MockCacheRepoForHandler)
	gen := new(MockGeneratorForHandler)

	questionRepo.On("ClaimRandomUnshown").Return(nil, apperrors.ErrNotFound).Once()
	questionRepo.On("AllTitles").Return([]string{}, nil).Once()
	cacheRepo.On("GetJSON", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrNotFound).Once()
	knowledgeRepo.On("KnownCategories", mock.Anything).Return([]string{}, nil).Once()
	cacheRepo.On("SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	router := setupQuestionRouter(questionRepo, knowledgeRepo, cacheRepo, gen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/question", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "could not produce question", body["message"])
	assert.NotContains(t, body, "error")
}

// TestGetQuestion_UserIDQueryOverridesDefault — user_id из query доходит
// до резолвера исключений.
func TestGetQuestion_UserIDQueryOverridesDefault(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	knowledgeRepo := new(MockKnowledgeRepoForHandler)
	cacheRepo := new(MockCacheRepoForHandler)
	gen := new(MockGeneratorForHandler)

	questionRepo.On("ClaimRandomUnshown").Return(nil, apperrors.ErrNotFound).Once()
	questionRepo.On("AllTitles").Return([]string{}, nil).Once()
	cacheRepo.On("GetJSON", mock.Anything, "knowledge:alice:categories", mock.Anything).
		Return(apperrors.ErrNotFound).Once()
	knowledgeRepo.On("KnownCategories", "alice").Return([]string{}, nil).Once()
	cacheRepo.On("SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	cacheRepo.On("Increment", mock.Anything, mock.Anything).Return(int64(1), nil).Maybe()

	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(&entity.QuestionDraft{
		Question:     "Course Schedule",
		Description:  "d",
		Constraints:  "c",
		Hint:         "h",
		Solution:     "s",
		CodeSolution: "code",
		Category:     "graph",
		Trivia:       "t",
	}, nil).Once()
	questionRepo.On("Insert", mock.Anything).Return(nil).Once()

	router := setupQuestionRouter(questionRepo, knowledgeRepo, cacheRepo, gen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/question?user_id=alice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	knowledgeRepo.AssertExpectations(t)
}
