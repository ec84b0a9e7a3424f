package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
)

type NoteMongo struct {
	collection *mongo.Collection
}

func NewNoteMongo(collection *mongo.Collection) *NoteMongo {
	return &NoteMongo{collection: collection}
}

func (r *NoteMongo) Create(ctx context.Context, note *models.Note) (string, error) {
	result, err := r.collection.InsertOne(ctx, note)
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *NoteMongo) ListByEmail(ctx context.Context, email string) ([]models.Note, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func (r *NoteMongo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var note models.Note
	err = r.collection.FindOne(ctx, filter).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &note, nil
}

func (r *NoteMongo) Update(ctx context.Context, id string, note *models.Note) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"email":       note.Email,
		"title":       note.Title,
		"description": note.Description,
	}})
	if err != nil {
		return 0, fmt.Errorf("update note: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *NoteMongo) Delete(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete note: %w", err)
	}
	return result.DeletedCount, nil
}
