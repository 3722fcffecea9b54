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

func newReviewServiceForTest(reviewRepo *fakeReviewRepo, productRepo *fakeProductRepo) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	})
}

func TestReviewService_Create_CapturesAuthorName(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p-1", Name: "Aspirin", Category: "medicine"})
	service := newReviewServiceForTest(newFakeReviewRepo(), productRepo)

	author := &entity.User{ID: "u-1", Username: "alice", FullName: "Alice Lee"}
	review, err := service.Create(context.Background(), "p-1", author, &usecase.CreateReviewInput{
		Rating:  5,
		Comment: "Works great",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "u-1", review.UserID)
	assert.Equal(t, "p-1", review.ProductID)
	assert.Equal(t, "Alice Lee", review.UserName)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewService_Create_FallsBackToUsername(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p-1", Name: "Aspirin", Category: "medicine"})
	service := newReviewServiceForTest(newFakeReviewRepo(), productRepo)

	author := &entity.User{ID: "u-1", Username: "alice"}
	review, err := service.Create(context.Background(), "p-1", author, &usecase.CreateReviewInput{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, "alice", review.UserName)
}

func TestReviewService_Create_UnknownProduct(t *testing.T) {
	service := newReviewServiceForTest(newFakeReviewRepo(), newFakeProductRepo())

	author := &entity.User{ID: "u-1", Username: "alice"}
	_, err := service.Create(context.Background(), "ghost", author, &usecase.CreateReviewInput{Rating: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_ListByProduct_NewestFirst(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p-1", Name: "Aspirin", Category: "medicine"})
	service := newReviewServiceForTest(newFakeReviewRepo(), productRepo)

	author := &entity.User{ID: "u-1", Username: "alice"}
	first, err := service.Create(context.Background(), "p-1", author, &usecase.CreateReviewInput{Rating: 3, Comment: "okay"})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "p-1", author, &usecase.CreateReviewInput{Rating: 5, Comment: "better"})
	require.NoError(t, err)

	reviews, err := service.ListByProduct(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}
