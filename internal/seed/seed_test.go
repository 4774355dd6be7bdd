package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
)

// MockQuestionRepoForSeed реализует repository.QuestionRepository
type MockQuestionRepoForSeed struct {
	mock.Mock
}

func (m *MockQuestionRepoForSeed) ClaimRandomUnshown() (*entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForSeed) GetRandomUnshown() (*entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForSeed) MarkShown(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepoForSeed) Insert(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepoForSeed) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepoForSeed) List() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForSeed) AllTitles() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestionRepoForSeed) CountTotal() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepoForSeed) CountShown() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// TestRun_SeedsEmptyStore
func TestRun_SeedsEmptyStore(t *testing.T) {
	repo := new(MockQuestionRepoForSeed)
	repo.On("CountTotal").Return(int64(0), nil).Once()
	repo.On("CreateBatch", mock.MatchedBy(func(questions []entity.Question) bool {
		return len(questions) == len(BaselineQuestions())
	})).Return(nil).Once()

	err := Run(repo)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

// TestRun_SkipsNonEmptyStore — повторный запуск идемпотентен
func TestRun_SkipsNonEmptyStore(t *testing.T) {
	repo := new(MockQuestionRepoForSeed)
	repo.On("CountTotal").Return(int64(5), nil).Once()

	err := Run(repo)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

// TestRun_CountErrorPropagates
func TestRun_CountErrorPropagates(t *testing.T) {
	repo := new(MockQuestionRepoForSeed)
	repo.On("CountTotal").Return(int64(0), assert.AnError).Once()

	err := Run(repo)

	assert.ErrorIs(t, err, assert.AnError)
}

// TestBaselineQuestions_AreComplete — посев подчиняется тем же требованиям
// полноты, что и сгенерированные вопросы.
func TestBaselineQuestions_AreComplete(t *testing.T) {
	questions := BaselineQuestions()
	require.Len(t, questions, 5)

	titles := make(map[string]bool, len(questions))
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Description)
		assert.NotEmpty(t, q.Constraints)
		assert.NotEmpty(t, q.Hint)
		assert.NotEmpty(t, q.Solution)
		assert.NotEmpty(t, q.CodeSolution)
		assert.NotEmpty(t, q.Category)
		assert.NotEmpty(t, q.Trivia)
		assert.False(t, q.Shown, "Посеянные вопросы раздаются до генерации")

		assert.False(t, titles[q.Question], "Дубликат заголовка: %s", q.Question)
		titles[q.Question] = true
	}
}
