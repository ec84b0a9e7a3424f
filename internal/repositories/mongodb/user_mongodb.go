package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/cache"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

// UserMongo stores user records, with a short Redis read-through cache on
// email lookups since the role guards hit them on every guarded request.
type UserMongo struct {
	collection *mongo.Collection
	cache      *cache.CacheHelper
}

func NewUserMongo(collection *mongo.Collection, cacheHelper *cache.CacheHelper) *UserMongo {
	return &UserMongo{
		collection: collection,
		cache:      cacheHelper,
	}
}

func (r *UserMongo) Create(ctx context.Context, user *models.User) (string, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repositories.ErrDuplicate
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *UserMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var cached models.User
	if err := r.cache.Get(ctx, email, &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	// Best effort; a cache outage must not fail the lookup.
	_ = r.cache.Set(ctx, email, &user, cache.UserCacheTTL)

	return &user, nil
}

func (r *UserMongo) List(ctx context.Context, search string) ([]models.User, error) {
	filter := bson.M{}
	if search != "" {
		filter = caseInsensitiveSearch(search)
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserMongo) UpdateRole(ctx context.Context, id string, role models.UserRole) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	var before models.User
	// Fetch first so the cached record for the email can be dropped.
	if ferr := r.collection.FindOne(ctx, filter).Decode(&before); ferr == nil {
		_ = r.cache.Delete(ctx, before.Email)
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, fmt.Errorf("update user role: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *UserMongo) Delete(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	var before models.User
	if ferr := r.collection.FindOne(ctx, filter).Decode(&before); ferr == nil {
		_ = r.cache.Delete(ctx, before.Email)
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return result.DeletedCount, nil
}
