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

// Compile-time check to ensure PitchRepository implements the interface
var _ repositories.PitchRepository = (*PitchRepository)(nil)

// PitchRepository handles MongoDB operations for PitchSubmission
type PitchRepository struct {
	collection *mongo.Collection
}

// NewPitchRepository creates a new PitchRepository
func NewPitchRepository(db *mongo.Database) *PitchRepository {
	return &PitchRepository{
		collection: db.Collection("pitches"),
	}
}

// Create inserts a new pitch submission
func (r *PitchRepository) Create(ctx context.Context, pitch *models.PitchSubmission) error {
	pitch.ID = primitive.NewObjectID()
	pitch.CreatedAt = time.Now()
	pitch.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, pitch)
	return err
}

// FindByEmail finds a pitch by normalized email. Returns (nil, nil) when no
// record exists.
func (r *PitchRepository) FindByEmail(ctx context.Context, email string) (*models.PitchSubmission, error) {
	var pitch models.PitchSubmission
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&pitch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &pitch, nil
}

// FindByID finds a pitch by its submission id
func (r *PitchRepository) FindByID(ctx context.Context, submissionID string) (*models.PitchSubmission, error) {
	var pitch models.PitchSubmission
	err := r.collection.FindOne(ctx, bson.M{"submissionId": submissionID}).Decode(&pitch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &pitch, nil
}

// FindAll retrieves pitches, optionally filtered by status, newest first.
func (r *PitchRepository) FindAll(ctx context.Context, status string) ([]*models.PitchSubmission, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pitches []*models.PitchSubmission
	if err = cursor.All(ctx, &pitches); err != nil {
		return nil, err
	}
	if pitches == nil {
		pitches = []*models.PitchSubmission{}
	}
	return pitches, nil
}

// UpdateStatus sets the status of a pitch by submission id
func (r *PitchRepository) UpdateStatus(ctx context.Context, submissionID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"submissionId": submissionID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the total number of pitch submissions
func (r *PitchRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
