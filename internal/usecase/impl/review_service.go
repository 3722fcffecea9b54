package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	now         func() time.Time
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByProduct returns a product's reviews, newest first.
func (srv *reviewService) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews", slog.String("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Create posts a review for a product on behalf of the given user.
func (srv *reviewService) Create(ctx context.Context, productID string, user *entity.User, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Rejected review for unknown product", slog.String("productID", productID))

			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to load product for review", slog.String("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product for review")
	}

	userName := user.FullName
	if userName == "" {
		userName = user.Username
	}

	review := &entity.Review{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ProductID: productID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserName:  userName,
		CreatedAt: srv.now(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to create review", slog.String("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.String("reviewID", review.ID), slog.String("productID", productID))

	return review, nil
}
