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

// orderRepository implements repository.OrderRepository on MongoDB.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: db.Collection(collectionOrders)}
}

// Create persists a new order snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromOrderDomain(order)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByUser returns all orders placed by one user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return repo.findMany(ctx, bson.M{"user_id": userID})
}

// FindAll returns every order in the store, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.findMany(ctx, bson.M{})
}

func (repo *orderRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find orders")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.OrderModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, len(modelsM))
	for i, m := range modelsM {
		orders[i] = model.ToOrderDomain(m)
	}

	return orders, nil
}
