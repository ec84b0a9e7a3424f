package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

// insertedIDHex extracts the hex form of an insert's generated identifier.
func insertedIDHex(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", result.InsertedID)
}

// objectIDFromHex parses a store-native record identifier.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid record id %q: %w", id, err)
	}
	return oid, nil
}

// idFilter builds a find/update filter on _id.
func idFilter(id string) (bson.M, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}

// buildSessionFilter translates listing filters into a find document.
func buildSessionFilter(filters repositories.SessionFilters) bson.M {
	filter := bson.M{}
	if filters.Status != nil {
		filter["status"] = *filters.Status
	}
	return filter
}

// buildSessionFindOptions applies pagination and price sorting.
func buildSessionFindOptions(filters repositories.SessionFilters) *options.FindOptions {
	opts := options.Find()

	if filters.Skip > 0 {
		opts.SetSkip(filters.Skip)
	}
	if filters.Limit > 0 {
		opts.SetLimit(filters.Limit)
	}

	if filters.SortBy != "" {
		order := 1
		if filters.SortOrder == "desc" {
			order = -1
		}
		opts.SetSort(bson.D{{Key: filters.SortBy, Value: order}})
	}

	return opts
}

// caseInsensitiveSearch matches a substring in name or email.
func caseInsensitiveSearch(term string) bson.M {
	pattern := primitive.Regex{Pattern: term, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
	}}
}

// totalRevenuePipeline sums price across all payment records.
func totalRevenuePipeline() []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// monthlyRevenuePipeline groups payments by the calendar month of their
// date field and sorts chronologically ascending. The "%Y-%m" group key
// doubles as the sort key.
func monthlyRevenuePipeline() []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m"},
				{Key: "date", Value: "$date"},
			}}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
