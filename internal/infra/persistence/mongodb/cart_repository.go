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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cartRepository implements repository.CartRepository on MongoDB.
//
// Item updates are single conditional update operators on the cart
// document, so concurrent AddItem calls for the same user cannot lose
// each other's writes.
type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{collection: db.Collection(collectionCart)}
}

// FindByUser returns the user's cart, or nil when the user has none.
func (repo *cartRepository) FindByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cartM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cart")
	}

	return model.ToCartDomain(&cartM), nil
}

// AddItem increments the quantity of an existing line, or appends a new
// line, creating the cart document when absent.
func (repo *cartRepository) AddItem(ctx context.Context, userID string, item entity.CartItem) error {
	// First try to bump an existing line for this product.
	filter := bson.M{"user_id": userID, "items.product_id": item.ProductID}
	update := bson.M{"$inc": bson.M{"items.$.quantity": item.Quantity}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// No line for this product yet: push one, upserting the cart itself.
	push := bson.M{"$push": bson.M{"items": model.FromCartItemDomain(item)}}
	_, err = repo.collection.UpdateOne(ctx, bson.M{"user_id": userID}, push, options.Update().SetUpsert(true))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return nil
}

// RemoveItem drops the line for the product. Missing carts or products
// are a no-op.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	update := bson.M{"$pull": bson.M{"items": bson.M{"product_id": productID}}}
	if _, err := repo.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return nil
}

// Clear deletes the user's cart entirely.
func (repo *cartRepository) Clear(ctx context.Context, userID string) error {
	if _, err := repo.collection.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
