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

// userRepository implements repository.UserRepository on MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(collectionUsers)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"id": id}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their login username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"username": username}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return model.ToUserDomain(&userM), nil
}

// ExistsByUsernameOrEmail reports whether a user already holds the given
// username or email.
func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user document.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromUserDomain(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// CountAdmins returns the number of administrator accounts.
func (repo *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"is_admin": true})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count admins")
	}

	return count, nil
}
