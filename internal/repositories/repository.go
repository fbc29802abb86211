package repositories

import (
	"context"

	"github.com/techdayconf/techday-backend/internal/models"
)

// ContentRepository defines the interface for the singleton content documents.
// Reads of an absent document return (nil, nil); saves replace the whole
// document (last write wins at document granularity).
type ContentRepository interface {
	GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error)
	SaveSpeakers(ctx context.Context, doc *models.SpeakersDocument) error
	GetSchedule(ctx context.Context) (*models.ScheduleDocument, error)
	SaveSchedule(ctx context.Context, doc *models.ScheduleDocument) error
	GetSponsors(ctx context.Context) (*models.SponsorsDocument, error)
	SaveSponsors(ctx context.Context, doc *models.SponsorsDocument) error
	GetPartners(ctx context.Context) (*models.PartnersDocument, error)
	SavePartners(ctx context.Context, doc *models.PartnersDocument) error
}

// RegistrationRepository defines the interface for registration records
type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	FindByEmail(ctx context.Context, email string) (*models.Registration, error)
	FindByTicketCode(ctx context.Context, code string) (*models.Registration, error)
	FindAll(ctx context.Context, status, category string) ([]*models.Registration, error)
	Count(ctx context.Context) (int64, error)
}

// PitchRepository defines the interface for pitch submissions
type PitchRepository interface {
	Create(ctx context.Context, pitch *models.PitchSubmission) error
	FindByEmail(ctx context.Context, email string) (*models.PitchSubmission, error)
	FindByID(ctx context.Context, submissionID string) (*models.PitchSubmission, error)
	FindAll(ctx context.Context, status string) ([]*models.PitchSubmission, error)
	UpdateStatus(ctx context.Context, submissionID, status string) error
	Count(ctx context.Context) (int64, error)
}

// NewsletterRepository defines the interface for newsletter subscriptions
type NewsletterRepository interface {
	Create(ctx context.Context, sub *models.NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	Update(ctx context.Context, sub *models.NewsletterSubscription) error
	FindAll(ctx context.Context, status string) ([]*models.NewsletterSubscription, error)
	Count(ctx context.Context) (int64, error)
}
