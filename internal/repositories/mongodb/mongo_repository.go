package mongodb

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/cache"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

// Collection names.
const (
	usersCollection     = "users"
	sessionsCollection  = "sessions"
	materialsCollection = "materials"
	notesCollection     = "notes"
	paymentsCollection  = "payments"
	bookingsCollection  = "bookedSessions"
	reviewsCollection   = "reviews"
)

// MongoRepository implements the main Repository interface over a single
// shared Mongo client held for the process lifetime.
type MongoRepository struct {
	db          *mongo.Database
	redisClient *redis.Client

	user     repositories.UserRepository
	session  repositories.SessionRepository
	material repositories.MaterialRepository
	note     repositories.NoteRepository
	booking  repositories.BookingRepository
	review   repositories.ReviewRepository
	payment  repositories.PaymentRepository
}

// RepositoryConfig holds dependencies for repository initialization.
type RepositoryConfig struct {
	Client      *mongo.Client
	Database    string
	RedisClient *redis.Client
}

// NewMongoRepository creates the repository manager with all
// sub-repositories.
func NewMongoRepository(config RepositoryConfig) *MongoRepository {
	db := config.Client.Database(config.Database)

	repo := &MongoRepository{
		db:          db,
		redisClient: config.RedisClient,
	}

	userCache := cache.NewCacheHelper(config.RedisClient, "user:")

	repo.user = NewUserMongo(db.Collection(usersCollection), userCache)
	repo.session = NewSessionMongo(db.Collection(sessionsCollection))
	repo.material = NewMaterialMongo(db.Collection(materialsCollection))
	repo.note = NewNoteMongo(db.Collection(notesCollection))
	repo.booking = NewBookingMongo(db.Collection(bookingsCollection))
	repo.review = NewReviewMongo(db.Collection(reviewsCollection))
	repo.payment = NewPaymentMongo(db.Collection(paymentsCollection))

	return repo
}

// Initialize creates the unique indexes that make duplicate checks atomic:
// users by email, materials and bookings by (email, sessionId).
func (r *MongoRepository) Initialize(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		usersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		},
		materialsCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "sessionId", Value: 1}},
			Options: unique,
		},
		bookingsCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "sessionId", Value: 1}},
			Options: unique,
		},
	}

	for name, index := range indexes {
		if _, err := r.db.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}
	return nil
}

func (r *MongoRepository) User() repositories.UserRepository         { return r.user }
func (r *MongoRepository) Session() repositories.SessionRepository   { return r.session }
func (r *MongoRepository) Material() repositories.MaterialRepository { return r.material }
func (r *MongoRepository) Note() repositories.NoteRepository         { return r.note }
func (r *MongoRepository) Booking() repositories.BookingRepository   { return r.booking }
func (r *MongoRepository) Review() repositories.ReviewRepository     { return r.review }
func (r *MongoRepository) Payment() repositories.PaymentRepository   { return r.payment }
