package mongodb

import (
	"context"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// articleRepository implements repository.ArticleRepository on MongoDB.
type articleRepository struct {
	collection *mongo.Collection
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *mongo.Database) repository.ArticleRepository {
	return &articleRepository{collection: db.Collection(collectionArticles)}
}

// FindAll returns every published article.
func (repo *articleRepository) FindAll(ctx context.Context) ([]*entity.Article, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find articles")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.ArticleModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode articles")
	}

	articles := make([]*entity.Article, len(modelsM))
	for i, m := range modelsM {
		articles[i] = model.ToArticleDomain(m)
	}

	return articles, nil
}

// FindByID retrieves a single article, or repository.ErrArticleNotFound.
func (repo *articleRepository) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	var articleM model.ArticleModel
	if err := repo.collection.FindOne(ctx, bson.M{"id": id}).Decode(&articleM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return model.ToArticleDomain(&articleM), nil
}

// Create persists a new article document.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromArticleDomain(article)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	return nil
}

// Count returns the total number of articles.
func (repo *articleRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count articles")
	}

	return count, nil
}

// serviceRepository implements repository.ServiceRepository on MongoDB.
type serviceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *mongo.Database) repository.ServiceRepository {
	return &serviceRepository{collection: db.Collection(collectionServices)}
}

// FindAll returns every offered service.
func (repo *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find services")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.ServiceModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode services")
	}

	services := make([]*entity.Service, len(modelsM))
	for i, m := range modelsM {
		services[i] = model.ToServiceDomain(m)
	}

	return services, nil
}

// Create persists a new service document.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromServiceDomain(service)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	return nil
}

// Count returns the total number of services.
func (repo *serviceRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count services")
	}

	return count, nil
}
