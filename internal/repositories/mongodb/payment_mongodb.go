package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type PaymentMongo struct {
	collection *mongo.Collection
}

func NewPaymentMongo(collection *mongo.Collection) *PaymentMongo {
	return &PaymentMongo{collection: collection}
}

func (r *PaymentMongo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedIDHex(result), nil
}

func (r *PaymentMongo) ListAll(ctx context.Context) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentMongo) TotalRevenue(ctx context.Context) (float64, error) {
	cursor, err := r.collection.Aggregate(ctx, totalRevenuePipeline())
	if err != nil {
		return 0, fmt.Errorf("aggregate total revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode total revenue: %w", err)
	}
	// No payments yet yields an empty result set, not a zero row.
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *PaymentMongo) RevenueByMonth(ctx context.Context) ([]repositories.MonthlyRevenue, error) {
	cursor, err := r.collection.Aggregate(ctx, monthlyRevenuePipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly revenue: %w", err)
	}
	defer cursor.Close(ctx)

	revenue := []repositories.MonthlyRevenue{}
	if err := cursor.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("decode monthly revenue: %w", err)
	}
	return revenue, nil
}
