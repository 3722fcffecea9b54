package mongodb

import (
	"context"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository implements repository.ReviewRepository on MongoDB.
type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{collection: db.Collection(collectionReviews)}
}

// FindByProduct returns a product's reviews, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := repo.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reviews")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.ReviewModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, len(modelsM))
	for i, m := range modelsM {
		reviews[i] = model.ToReviewDomain(m)
	}

	return reviews, nil
}

// Create persists a new review document.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromReviewDomain(review)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}
