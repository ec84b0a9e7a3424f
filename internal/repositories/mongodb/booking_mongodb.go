package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type BookingMongo struct {
	collection *mongo.Collection
}

func NewBookingMongo(collection *mongo.Collection) *BookingMongo {
	return &BookingMongo{collection: collection}
}

func (r *BookingMongo) Create(ctx context.Context, booking *models.BookedSession) (string, error) {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repositories.ErrDuplicate
		}
		return "", fmt.Errorf("insert booking: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *BookingMongo) ListByEmail(ctx context.Context, email string) ([]models.BookedSession, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.BookedSession{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}
