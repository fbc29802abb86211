package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure NewsletterRepository implements the interface
var _ repositories.NewsletterRepository = (*NewsletterRepository)(nil)

// NewsletterRepository handles MongoDB operations for NewsletterSubscription
type NewsletterRepository struct {
	collection *mongo.Collection
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{
		collection: db.Collection("newsletter"),
	}
}

// Create inserts a new subscription
func (r *NewsletterRepository) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	sub.ID = primitive.NewObjectID()
	sub.SubscribedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

// FindByEmail finds a subscription by normalized email. Returns (nil, nil)
// when no record exists.
func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Update replaces an existing subscription record
func (r *NewsletterRepository) Update(ctx context.Context, sub *models.NewsletterSubscription) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": sub.ID}, bson.M{"$set": sub})
	return err
}

// FindAll retrieves subscriptions, optionally filtered by status, newest first.
func (r *NewsletterRepository) FindAll(ctx context.Context, status string) ([]*models.NewsletterSubscription, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"subscribedAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*models.NewsletterSubscription
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*models.NewsletterSubscription{}
	}
	return subs, nil
}

// Count returns the total number of subscriptions
func (r *NewsletterRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
