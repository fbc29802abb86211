package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// ContentService implements the shared content access pattern for the
// list-shaped content types (speakers, schedule, partners): read returns an
// empty default when unconfigured, every write replaces the whole document
// stamped with the acting admin and time. Sponsors live in SponsorService.
type ContentService interface {
	GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error)
	CreateSpeaker(ctx context.Context, actor string, speaker models.Speaker) (*models.Speaker, error)
	UpdateSpeaker(ctx context.Context, actor string, speaker models.Speaker) (*models.Speaker, error)
	DeleteSpeaker(ctx context.Context, actor, id string) error

	GetSchedule(ctx context.Context) (*models.ScheduleDocument, error)
	CreateSession(ctx context.Context, actor string, session models.ScheduleSession) (*models.ScheduleSession, error)
	UpdateSession(ctx context.Context, actor string, session models.ScheduleSession) (*models.ScheduleSession, error)
	DeleteSession(ctx context.Context, actor, id string) error

	GetPartners(ctx context.Context) (*models.PartnersDocument, error)
	CreatePartner(ctx context.Context, actor string, partner models.Partner) (*models.Partner, error)
	UpdatePartner(ctx context.Context, actor string, partner models.Partner) (*models.Partner, error)
	DeletePartner(ctx context.Context, actor, id string) error
}

type contentService struct {
	repo repositories.ContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(repo repositories.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

// GetSpeakers returns the speakers document, or an empty default when the
// document has never been written.
func (s *contentService) GetSpeakers(ctx context.Context) (*models.SpeakersDocument, error) {
	doc, err := s.repo.GetSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch speakers: %w", err)
	}
	if doc == nil {
		doc = &models.SpeakersDocument{ID: models.ContentSpeakers, Items: []models.Speaker{}}
	}
	if doc.Items == nil {
		doc.Items = []models.Speaker{}
	}
	return doc, nil
}

// CreateSpeaker validates and appends a speaker, assigning an id if absent.
func (s *contentService) CreateSpeaker(ctx context.Context, actor string, speaker models.Speaker) (*models.Speaker, error) {
	if strings.TrimSpace(speaker.Name) == "" {
		return nil, Validationf("Speaker name is required")
	}
	if strings.TrimSpace(speaker.Title) == "" {
		return nil, Validationf("Speaker title is required")
	}
	if speaker.ID == "" {
		speaker.ID = newItemID()
	}

	doc, err := s.GetSpeakers(ctx)
	if err != nil {
		return nil, err
	}
	doc.Items = append(doc.Items, speaker)
	if err := s.saveSpeakers(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &speaker, nil
}

// UpdateSpeaker replaces the speaker with the same id in place.
func (s *contentService) UpdateSpeaker(ctx context.Context, actor string, speaker models.Speaker) (*models.Speaker, error) {
	if speaker.ID == "" {
		return nil, Validationf("Speaker id is required")
	}
	doc, err := s.GetSpeakers(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range doc.Items {
		if doc.Items[i].ID == speaker.ID {
			doc.Items[i] = speaker
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, ErrNotFound
	}
	if err := s.saveSpeakers(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &speaker, nil
}

// DeleteSpeaker removes the speaker with the given id.
func (s *contentService) DeleteSpeaker(ctx context.Context, actor, id string) error {
	doc, err := s.GetSpeakers(ctx)
	if err != nil {
		return err
	}
	kept := doc.Items[:0:0]
	for _, item := range doc.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(doc.Items) {
		return ErrNotFound
	}
	doc.Items = kept
	return s.saveSpeakers(ctx, actor, doc)
}

func (s *contentService) saveSpeakers(ctx context.Context, actor string, doc *models.SpeakersDocument) error {
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = actor
	if err := s.repo.SaveSpeakers(ctx, doc); err != nil {
		return fmt.Errorf("failed to save speakers: %w", err)
	}
	slog.Info("Speakers updated", "by", actor, "count", len(doc.Items))
	return nil
}

// GetSchedule returns the schedule document, or an empty default.
func (s *contentService) GetSchedule(ctx context.Context) (*models.ScheduleDocument, error) {
	doc, err := s.repo.GetSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if doc == nil {
		doc = &models.ScheduleDocument{ID: models.ContentSchedule, Items: []models.ScheduleSession{}}
	}
	if doc.Items == nil {
		doc.Items = []models.ScheduleSession{}
	}
	return doc, nil
}

// CreateSession validates and inserts a schedule session, keeping the
// document sorted by time string.
func (s *contentService) CreateSession(ctx context.Context, actor string, session models.ScheduleSession) (*models.ScheduleSession, error) {
	if strings.TrimSpace(session.Title) == "" {
		return nil, Validationf("Session title is required")
	}
	if strings.TrimSpace(session.Time) == "" {
		return nil, Validationf("Session time is required")
	}
	if session.ID == "" {
		session.ID = newItemID()
	}

	doc, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	doc.Items = append(doc.Items, session)
	sortSessions(doc.Items)
	if err := s.saveSchedule(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession replaces a session in place and re-sorts by time.
func (s *contentService) UpdateSession(ctx context.Context, actor string, session models.ScheduleSession) (*models.ScheduleSession, error) {
	if session.ID == "" {
		return nil, Validationf("Session id is required")
	}
	doc, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range doc.Items {
		if doc.Items[i].ID == session.ID {
			doc.Items[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, ErrNotFound
	}
	sortSessions(doc.Items)
	if err := s.saveSchedule(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes the session with the given id.
func (s *contentService) DeleteSession(ctx context.Context, actor, id string) error {
	doc, err := s.GetSchedule(ctx)
	if err != nil {
		return err
	}
	kept := doc.Items[:0:0]
	for _, item := range doc.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(doc.Items) {
		return ErrNotFound
	}
	doc.Items = kept
	return s.saveSchedule(ctx, actor, doc)
}

func (s *contentService) saveSchedule(ctx context.Context, actor string, doc *models.ScheduleDocument) error {
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = actor
	if err := s.repo.SaveSchedule(ctx, doc); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	slog.Info("Schedule updated", "by", actor, "count", len(doc.Items))
	return nil
}

// sortSessions keeps sessions in non-decreasing time-string order. The sort
// is stable so same-time sessions keep their insertion order.
func sortSessions(items []models.ScheduleSession) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
}

// GetPartners returns the partners document, or an empty default.
func (s *contentService) GetPartners(ctx context.Context) (*models.PartnersDocument, error) {
	doc, err := s.repo.GetPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partners: %w", err)
	}
	if doc == nil {
		doc = &models.PartnersDocument{ID: models.ContentPartners, Items: []models.Partner{}}
	}
	if doc.Items == nil {
		doc.Items = []models.Partner{}
	}
	return doc, nil
}

// CreatePartner validates and appends a partner, assigning an id if absent.
func (s *contentService) CreatePartner(ctx context.Context, actor string, partner models.Partner) (*models.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return nil, Validationf("Partner name is required")
	}
	if partner.ID == "" {
		partner.ID = newItemID()
	}

	doc, err := s.GetPartners(ctx)
	if err != nil {
		return nil, err
	}
	doc.Items = append(doc.Items, partner)
	if err := s.savePartners(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &partner, nil
}

// UpdatePartner replaces the partner with the same id in place.
func (s *contentService) UpdatePartner(ctx context.Context, actor string, partner models.Partner) (*models.Partner, error) {
	if partner.ID == "" {
		return nil, Validationf("Partner id is required")
	}
	doc, err := s.GetPartners(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range doc.Items {
		if doc.Items[i].ID == partner.ID {
			doc.Items[i] = partner
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, ErrNotFound
	}
	if err := s.savePartners(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner removes the partner with the given id.
func (s *contentService) DeletePartner(ctx context.Context, actor, id string) error {
	doc, err := s.GetPartners(ctx)
	if err != nil {
		return err
	}
	kept := doc.Items[:0:0]
	for _, item := range doc.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(doc.Items) {
		return ErrNotFound
	}
	doc.Items = kept
	return s.savePartners(ctx, actor, doc)
}

func (s *contentService) savePartners(ctx context.Context, actor string, doc *models.PartnersDocument) error {
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = actor
	if err := s.repo.SavePartners(ctx, doc); err != nil {
		return fmt.Errorf("failed to save partners: %w", err)
	}
	slog.Info("Partners updated", "by", actor, "count", len(doc.Items))
	return nil
}
