package impl

import (
	"context"
	"log/slog"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	articleRepo repository.ArticleRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ArticleRepo repository.ArticleRepository
	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		articleRepo: params.ArticleRepo,
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArticles returns every published article.
func (srv *contentService) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	articles, err := srv.articleRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list articles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

// GetArticle returns one article by id.
func (srv *contentService) GetArticle(ctx context.Context, id string) (*entity.Article, error) {
	article, err := srv.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}
		srv.log(ctx).Error("Failed to load article", slog.String("articleID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load article")
	}

	return article, nil
}

// CreateArticle publishes a new article.
func (srv *contentService) CreateArticle(ctx context.Context, input *usecase.CreateArticleInput) (*entity.Article, error) {
	article := &entity.Article{
		ID:      uuid.New().String(),
		Title:   input.Title,
		Content: input.Content,
		Image:   input.Image,
		Summary: input.Summary,
		Date:    input.Date,
		Author:  input.Author,
	}

	if err := srv.articleRepo.Create(ctx, article); err != nil {
		srv.log(ctx).Error("Failed to create article", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create article")
	}

	srv.log(ctx).Info("Article published", slog.String("articleID", article.ID))

	return article, nil
}

// ListServices returns every offered service.
func (srv *contentService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list services", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}
