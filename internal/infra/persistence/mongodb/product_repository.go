package mongodb

import (
	"context"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements repository.ProductRepository on MongoDB.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{collection: db.Collection(collectionProducts)}
}

// FindByID retrieves a single product, or repository.ErrProductNotFound.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.collection.FindOne(ctx, bson.M{"id": id}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&productM), nil
}

// Find returns one page of products matching the filter and the total
// match count before pagination.
func (repo *productRepository) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := buildProductQuery(filter)

	total, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSort(productSort(filter.SortBy)).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	products, err := repo.findMany(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Categories returns the distinct category values in the catalog.
func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := repo.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}

	return categories, nil
}

// FindDiscounted returns products carrying a per-product discount percentage.
func (repo *productRepository) FindDiscounted(ctx context.Context) ([]*entity.Product, error) {
	filter := bson.M{"discount_percentage": bson.M{"$exists": true, "$gt": 0}}

	return repo.findMany(ctx, filter, options.Find())
}

// FindFeatured returns products flagged as featured.
func (repo *productRepository) FindFeatured(ctx context.Context) ([]*entity.Product, error) {
	return repo.findMany(ctx, bson.M{"featured": true}, options.Find())
}

// Create persists a new product document.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromProductDomain(product)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Count returns the total number of products in the catalog.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Product, error) {
	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products")
	}
	defer cursor.Close(ctx)

	var modelsM []*model.ProductModel
	if err := cursor.All(ctx, &modelsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode products")
	}

	products := make([]*entity.Product, len(modelsM))
	for i, m := range modelsM {
		products[i] = model.ToProductDomain(m)
	}

	return products, nil
}

// buildProductQuery translates a ProductFilter into a MongoDB filter
// document. Search matches name or description case-insensitively.
func buildProductQuery(filter repository.ProductFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": regex}},
			bson.M{"description": bson.M{"$regex": regex}},
		}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

// productSort maps the public sort keys onto sort documents. Unknown keys
// fall back to sorting by name.
func productSort(sortBy string) bson.D {
	switch sortBy {
	case repository.ProductSortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case repository.ProductSortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	case repository.ProductSortNewest:
		return bson.D{{Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "name", Value: 1}}
	}
}
