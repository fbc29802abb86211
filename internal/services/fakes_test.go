package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/techdayconf/techday-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They mirror the mongodb implementations'
// contracts: FindByEmail returns (nil, nil) when absent, content reads of a
// never-written document return nil.

type fakeContentRepo struct {
	speakers *models.SpeakersDocument
	schedule *models.ScheduleDocument
	sponsors *models.SponsorsDocument
	partners *models.PartnersDocument
	failNext error
}

func (f *fakeContentRepo) fail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeContentRepo) GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.speakers, nil
}

func (f *fakeContentRepo) SaveSpeakers(ctx context.Context, doc *models.SpeakersDocument) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.speakers = doc
	return nil
}

func (f *fakeContentRepo) GetSchedule(ctx context.Context) (*models.ScheduleDocument, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.schedule, nil
}

func (f *fakeContentRepo) SaveSchedule(ctx context.Context, doc *models.ScheduleDocument) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.schedule = doc
	return nil
}

func (f *fakeContentRepo) GetSponsors(ctx context.Context) (*models.SponsorsDocument, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.sponsors, nil
}

func (f *fakeContentRepo) SaveSponsors(ctx context.Context, doc *models.SponsorsDocument) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.sponsors = doc
	return nil
}

func (f *fakeContentRepo) GetPartners(ctx context.Context) (*models.PartnersDocument, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.partners, nil
}

func (f *fakeContentRepo) SavePartners(ctx context.Context, doc *models.PartnersDocument) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.partners = doc
	return nil
}

type fakeRegistrationRepo struct {
	records []*models.Registration
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	reg.ID = primitive.NewObjectID()
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = time.Now()
	f.records = append(f.records, reg)
	return nil
}

func (f *fakeRegistrationRepo) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	for _, r := range f.records {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) FindByTicketCode(ctx context.Context, code string) (*models.Registration, error) {
	for _, r := range f.records {
		if r.TicketCode == code {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) FindAll(ctx context.Context, status, category string) ([]*models.Registration, error) {
	out := []*models.Registration{}
	for _, r := range f.records {
		if status != "" && r.Status != status {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRegistrationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

type fakePitchRepo struct {
	records []*models.PitchSubmission
}

func (f *fakePitchRepo) Create(ctx context.Context, pitch *models.PitchSubmission) error {
	pitch.ID = primitive.NewObjectID()
	pitch.CreatedAt = time.Now()
	pitch.UpdatedAt = time.Now()
	f.records = append(f.records, pitch)
	return nil
}

func (f *fakePitchRepo) FindByEmail(ctx context.Context, email string) (*models.PitchSubmission, error) {
	for _, p := range f.records {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePitchRepo) FindByID(ctx context.Context, submissionID string) (*models.PitchSubmission, error) {
	for _, p := range f.records {
		if p.SubmissionID == submissionID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePitchRepo) FindAll(ctx context.Context, status string) ([]*models.PitchSubmission, error) {
	out := []*models.PitchSubmission{}
	for _, p := range f.records {
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePitchRepo) UpdateStatus(ctx context.Context, submissionID, status string) error {
	for _, p := range f.records {
		if p.SubmissionID == submissionID {
			p.Status = status
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakePitchRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeNewsletterRepo struct {
	records []*models.NewsletterSubscription
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	sub.ID = primitive.NewObjectID()
	sub.SubscribedAt = time.Now()
	f.records = append(f.records, sub)
	return nil
}

func (f *fakeNewsletterRepo) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	for _, s := range f.records {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsletterRepo) Update(ctx context.Context, sub *models.NewsletterSubscription) error {
	for i, s := range f.records {
		if s.ID == sub.ID {
			f.records[i] = sub
			return nil
		}
	}
	return errors.New("subscription not found")
}

func (f *fakeNewsletterRepo) FindAll(ctx context.Context, status string) ([]*models.NewsletterSubscription, error) {
	out := []*models.NewsletterSubscription{}
	for _, s := range f.records {
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeNewsletterRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendRegistrationConfirmation(ctx context.Context, to, firstName, ticketCode string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, strings.Join([]string{to, ticketCode}, " "))
	return nil
}
