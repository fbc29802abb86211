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

// Compile-time check to ensure RegistrationRepository implements the interface
var _ repositories.RegistrationRepository = (*RegistrationRepository)(nil)

// RegistrationRepository handles MongoDB operations for Registration
type RegistrationRepository struct {
	collection *mongo.Collection
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{
		collection: db.Collection("registrations"),
	}
}

// Create inserts a new registration
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	reg.ID = primitive.NewObjectID()
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, reg)
	return err
}

// FindByEmail finds a registration by normalized email. Returns (nil, nil)
// when no record exists.
func (r *RegistrationRepository) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	var reg models.Registration
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// FindByTicketCode finds a registration by its ticket code
func (r *RegistrationRepository) FindByTicketCode(ctx context.Context, code string) (*models.Registration, error) {
	var reg models.Registration
	err := r.collection.FindOne(ctx, bson.M{"ticketCode": code}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// FindAll retrieves registrations, optionally filtered by status and category,
// newest first.
func (r *RegistrationRepository) FindAll(ctx context.Context, status, category string) ([]*models.Registration, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []*models.Registration
	if err = cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*models.Registration{}
	}
	return regs, nil
}

// Count returns the total number of registrations
func (r *RegistrationRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
