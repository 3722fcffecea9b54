// Package mongodb contains the concrete implementation of the persistence
// layer on top of the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"medstore/config"
	"medstore/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Collection names used by the store.
const (
	collectionUsers     = "users"
	collectionProducts  = "products"
	collectionArticles  = "articles"
	collectionServices  = "services"
	collectionCart      = "cart"
	collectionOrders    = "orders"
	collectionReviews   = "reviews"
	collectionDiscounts = "discounts"
)

// Params holds dependencies for the MongoDB connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the database handle. The client is
// disconnected through the Fx lifecycle on shutdown.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	params.Logger.Info("Connected to MongoDB",
		slog.String("database", params.Config.Mongo.Database))

	return client.Database(params.Config.Mongo.Database), nil
}
