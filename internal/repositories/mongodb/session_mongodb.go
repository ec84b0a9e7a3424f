package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type SessionMongo struct {
	collection *mongo.Collection
}

func NewSessionMongo(collection *mongo.Collection) *SessionMongo {
	return &SessionMongo{collection: collection}
}

func (r *SessionMongo) Create(ctx context.Context, session *models.Session) (string, error) {
	if session.Status == "" {
		session.Status = models.SessionPending
	}
	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *SessionMongo) List(ctx context.Context, filters repositories.SessionFilters) ([]models.Session, error) {
	cursor, err := r.collection.Find(ctx, buildSessionFilter(filters), buildSessionFindOptions(filters))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionMongo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var session models.Session
	err = r.collection.FindOne(ctx, filter).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

func (r *SessionMongo) ListByTutor(ctx context.Context, email string) ([]models.Session, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"tutorEmail": email})
	if err != nil {
		return nil, fmt.Errorf("list tutor sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode tutor sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionMongo) CountByStatus(ctx context.Context, status models.SessionStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func (r *SessionMongo) Update(ctx context.Context, id string, update repositories.SessionUpdate) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Feedback != nil {
		set["feedback"] = *update.Feedback
	}
	if len(set) == 0 {
		return 0, nil
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return 0, fmt.Errorf("update session: %w", err)
	}
	return result.ModifiedCount + result.UpsertedCount, nil
}
