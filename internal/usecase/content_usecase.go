package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// CreateArticleInput defines the data required to publish an article.
type CreateArticleInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

// ContentUsecase defines the interface for the editorial content of the
// store: magazine articles and the services page.
type ContentUsecase interface {
	// ListArticles returns every published article.
	ListArticles(ctx context.Context) ([]*entity.Article, error)

	// GetArticle returns one article or a not-found error.
	GetArticle(ctx context.Context, id string) (*entity.Article, error)

	// CreateArticle publishes a new article. Admin only; the delivery
	// layer enforces the role.
	CreateArticle(ctx context.Context, input *CreateArticleInput) (*entity.Article, error)

	// ListServices returns every offered service.
	ListServices(ctx context.Context) ([]*entity.Service, error)
}
