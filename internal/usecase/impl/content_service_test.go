package impl

import (
	"context"
	"testing"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentServiceForTest(articleRepo *fakeArticleRepo, serviceRepo *fakeServiceRepo) usecase.ContentUsecase {
	return NewContentService(ContentServiceParams{
		ArticleRepo: articleRepo,
		ServiceRepo: serviceRepo,
		Logger:      discardLogger(),
	})
}

func TestContentService_GetArticle(t *testing.T) {
	articleRepo := newFakeArticleRepo(&entity.Article{ID: "a-1", Title: "Staying healthy in winter"})
	service := newContentServiceForTest(articleRepo, newFakeServiceRepo())

	article, err := service.GetArticle(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Staying healthy in winter", article.Title)

	_, err = service.GetArticle(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestContentService_CreateArticle(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	service := newContentServiceForTest(articleRepo, newFakeServiceRepo())

	article, err := service.CreateArticle(context.Background(), &usecase.CreateArticleInput{
		Title:   "New arrivals",
		Content: "Full text",
		Author:  "Store team",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, article.ID)

	articles, err := service.ListArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestContentService_ListServices(t *testing.T) {
	serviceRepo := newFakeServiceRepo(
		&entity.Service{ID: "s-1", Title: "Home care", Features: []string{"24/7 support"}},
		&entity.Service{ID: "s-2", Title: "Online pharmacy"},
	)
	service := newContentServiceForTest(newFakeArticleRepo(), serviceRepo)

	services, err := service.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 2)
}
