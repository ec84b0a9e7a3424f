package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
)

type ReviewMongo struct {
	collection *mongo.Collection
}

func NewReviewMongo(collection *mongo.Collection) *ReviewMongo {
	return &ReviewMongo{collection: collection}
}

func (r *ReviewMongo) Create(ctx context.Context, review *models.Review) (string, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *ReviewMongo) ListAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
