package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type MaterialMongo struct {
	collection *mongo.Collection
}

func NewMaterialMongo(collection *mongo.Collection) *MaterialMongo {
	return &MaterialMongo{collection: collection}
}

func (r *MaterialMongo) Create(ctx context.Context, material *models.Material) (string, error) {
	result, err := r.collection.InsertOne(ctx, material)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repositories.ErrDuplicate
		}
		return "", fmt.Errorf("insert material: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *MaterialMongo) GetByID(ctx context.Context, id string) (*models.Material, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var material models.Material
	err = r.collection.FindOne(ctx, filter).Decode(&material)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find material: %w", err)
	}
	return &material, nil
}

func (r *MaterialMongo) GetBySessionID(ctx context.Context, sessionID string) (*models.Material, error) {
	var material models.Material
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&material)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find material by session: %w", err)
	}
	return &material, nil
}

func (r *MaterialMongo) ListByEmail(ctx context.Context, email string) ([]models.Material, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *MaterialMongo) ListAll(ctx context.Context) ([]models.Material, error) {
	return r.list(ctx, bson.M{})
}

func (r *MaterialMongo) list(ctx context.Context, filter bson.M) ([]models.Material, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer cursor.Close(ctx)

	materials := []models.Material{}
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, fmt.Errorf("decode materials: %w", err)
	}
	return materials, nil
}

func (r *MaterialMongo) UpdateContent(ctx context.Context, id, doc, image string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"doc":   doc,
		"image": image,
	}})
	if err != nil {
		return 0, fmt.Errorf("update material: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *MaterialMongo) Delete(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete material: %w", err)
	}
	return result.DeletedCount, nil
}
