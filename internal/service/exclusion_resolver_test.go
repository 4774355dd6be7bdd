package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/interviewprep-api/internal/pkg/errors"
)

// TestResolve_CacheMissReadsDatabase — при промахе кеша категории читаются
// из БД и записываются в кеш.
func TestResolve_CacheMissReadsDatabase(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	knowledgeRepo := new(MockKnowledgeRepo)
	cacheRepo := new(MockCacheRepo)

	questionRepo.On("AllTitles").Return([]string{"Two Sum", "Climbing Stairs"}, nil).Once()
	cacheRepo.On("GetJSON", mock.Anything, knownCategoriesKey("user1"), mock.Anything).
		Return(apperrors.ErrNotFound).Once()
	knowledgeRepo.On("KnownCategories", "user1").Return([]string{"array", "string"}, nil).Once()
	cacheRepo.On("SetJSON", mock.Anything, knownCategoriesKey("user1"), []string{"array", "string"}, knownCategoriesTTL).
		Return(nil).Once()

	resolver := NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)

	exclusions, err := resolver.Resolve(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, []string{"Two Sum", "Climbing Stairs"}, exclusions.Titles)
	assert.Equal(t, []string{"array", "string"}, exclusions.Categories)
	knowledgeRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

// TestResolve_CacheHitSkipsDatabase — при попадании в кеш журнал знаний
// в БД не читается. Заголовки при этом всегда идут из БД.
func TestResolve_CacheHitSkipsDatabase(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	knowledgeRepo := new(MockKnowledgeRepo)
	cacheRepo := new(MockCacheRepo)

	questionRepo.On("AllTitles").Return([]string{"Two Sum"}, nil).Once()
	cacheRepo.On("GetJSON", mock.Anything, knownCategoriesKey("user1"), mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]string)
			require.NoError(t, json.Unmarshal([]byte(`["graph"]`), dest))
		}).Return(nil).Once()

	resolver := NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)

	exclusions, err := resolver.Resolve(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, []string{"graph"}, exclusions.Categories)
	knowledgeRepo.AssertNotCalled(t, "KnownCategories", mock.Anything)
}

// TestResolve_CacheErrorFallsBackToDatabase — ошибка кеша (не промах)
// не фатальна: категории читаются из БД.
func TestResolve_CacheErrorFallsBackToDatabase(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	knowledgeRepo := new(MockKnowledgeRepo)
	cacheRepo := new(MockCacheRepo)

	questionRepo.On("AllTitles").Return([]string{}, nil).Once()
	cacheRepo.On("GetJSON", mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()
	knowledgeRepo.On("KnownCategories", "user1").Return([]string{"array"}, nil).Once()
	cacheRepo.On("SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	resolver := NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)

	exclusions, err := resolver.Resolve(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, []string{"array"}, exclusions.Categories)
}

// TestResolve_TitlesErrorIsFatal — без списка заголовков генерировать нельзя:
// дубликаты стали бы неизбежны.
func TestResolve_TitlesErrorIsFatal(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	knowledgeRepo := new(MockKnowledgeRepo)
	cacheRepo := new(MockCacheRepo)

	questionRepo.On("AllTitles").Return(nil, assert.AnError).Once()

	resolver := NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)

	_, err := resolver.Resolve(context.Background(), "user1")

	assert.ErrorIs(t, err, assert.AnError)
	knowledgeRepo.AssertNotCalled(t, "KnownCategories", mock.Anything)
}
