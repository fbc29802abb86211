package mongodb

import (
	"context"
	"errors"

	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure ContentRepository implements the interface
var _ repositories.ContentRepository = (*ContentRepository)(nil)

// ContentRepository stores each content type as a singleton document in the
// content collection, keyed by _id = content type.
type ContentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		collection: db.Collection("content"),
	}
}

// get decodes the singleton document for key into out. Absent documents are
// reported via (false, nil) so callers can supply their empty default shape.
func (r *ContentRepository) get(ctx context.Context, key string, out interface{}) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// save replaces the whole document for key, inserting it if absent.
func (r *ContentRepository) save(ctx context.Context, key string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

// GetSpeakers fetches the speakers document, or nil if unconfigured.
func (r *ContentRepository) GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error) {
	var doc models.SpeakersDocument
	found, err := r.get(ctx, models.ContentSpeakers, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

// SaveSpeakers replaces the speakers document
func (r *ContentRepository) SaveSpeakers(ctx context.Context, doc *models.SpeakersDocument) error {
	doc.ID = models.ContentSpeakers
	return r.save(ctx, models.ContentSpeakers, doc)
}

// GetSchedule fetches the schedule document, or nil if unconfigured.
func (r *ContentRepository) GetSchedule(ctx context.Context) (*models.ScheduleDocument, error) {
	var doc models.ScheduleDocument
	found, err := r.get(ctx, models.ContentSchedule, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

// SaveSchedule replaces the schedule document
func (r *ContentRepository) SaveSchedule(ctx context.Context, doc *models.ScheduleDocument) error {
	doc.ID = models.ContentSchedule
	return r.save(ctx, models.ContentSchedule, doc)
}

// GetSponsors fetches the sponsors document, or nil if unconfigured.
func (r *ContentRepository) GetSponsors(ctx context.Context) (*models.SponsorsDocument, error) {
	var doc models.SponsorsDocument
	found, err := r.get(ctx, models.ContentSponsors, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

// SaveSponsors replaces the sponsors document
func (r *ContentRepository) SaveSponsors(ctx context.Context, doc *models.SponsorsDocument) error {
	doc.ID = models.ContentSponsors
	return r.save(ctx, models.ContentSponsors, doc)
}

// GetPartners fetches the partners document, or nil if unconfigured.
func (r *ContentRepository) GetPartners(ctx context.Context) (*models.PartnersDocument, error) {
	var doc models.PartnersDocument
	found, err := r.get(ctx, models.ContentPartners, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

// SavePartners replaces the partners document
func (r *ContentRepository) SavePartners(ctx context.Context, doc *models.PartnersDocument) error {
	doc.ID = models.ContentPartners
	return r.save(ctx, models.ContentPartners, doc)
}
