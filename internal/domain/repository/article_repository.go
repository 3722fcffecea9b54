package repository

import (
	"context"

	"medstore/internal/domain/entity"
	"medstore/internal/errors"
)

// ErrArticleNotFound is returned when an article id matches nothing.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository defines the operations for article persistence.
type ArticleRepository interface {
	// FindAll returns every published article.
	FindAll(ctx context.Context) ([]*entity.Article, error)

	// FindByID retrieves a single article, or ErrArticleNotFound.
	FindByID(ctx context.Context, id string) (*entity.Article, error)

	// Create persists a new article.
	Create(ctx context.Context, article *entity.Article) error

	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)
}
