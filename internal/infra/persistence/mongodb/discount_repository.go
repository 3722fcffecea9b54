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

// discountRepository implements repository.DiscountRepository on MongoDB.
type discountRepository struct {
	collection *mongo.Collection
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *mongo.Database) repository.DiscountRepository {
	return &discountRepository{collection: db.Collection(collectionDiscounts)}
}

// FindActiveByCode retrieves an active code by its case-sensitive value.
// Inactive codes are invisible here.
func (repo *discountRepository) FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	var discountM model.DiscountModel
	filter := bson.M{"code": code, "active": true}
	if err := repo.collection.FindOne(ctx, filter).Decode(&discountM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	return model.ToDiscountDomain(&discountM), nil
}

// FindActive returns every active code.
func (repo *discountRepository) FindActive(ctx context.Context) ([]*entity.DiscountCode, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find discounts")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.DiscountModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode discounts")
	}

	discounts := make([]*entity.DiscountCode, len(modelsM))
	for i, m := range modelsM {
		discounts[i] = model.ToDiscountDomain(m)
	}

	return discounts, nil
}

// Create persists a new code, refusing duplicates by code value.
func (repo *discountRepository) Create(ctx context.Context, discount *entity.DiscountCode) error {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"code": discount.Code})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check discount code")
	}
	if count > 0 {
		return repository.ErrDiscountCodeExists
	}

	if _, err := repo.collection.InsertOne(ctx, model.FromDiscountDomain(discount)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	return nil
}

// Count returns the total number of codes, active or not.
func (repo *discountRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count discounts")
	}

	return count, nil
}
