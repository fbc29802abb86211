package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// SponsorService manages the tiered sponsors document. Each sponsor's tier
// field must match the tier array it is stored under; moving a sponsor
// between tiers removes it from the old array and appends to the new one.
type SponsorService interface {
	GetSponsors(ctx context.Context) (*models.SponsorsDocument, error)
	CreateSponsor(ctx context.Context, actor string, sponsor models.Sponsor) (*models.Sponsor, error)
	UpdateSponsor(ctx context.Context, actor string, sponsor models.Sponsor) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, actor, tier, id string) error
	ReorderTier(ctx context.Context, actor, tier string, sponsors []models.Sponsor) error
}

type sponsorService struct {
	repo repositories.ContentRepository
}

// NewSponsorService creates a new SponsorService
func NewSponsorService(repo repositories.ContentRepository) SponsorService {
	return &sponsorService{repo: repo}
}

// GetSponsors returns the sponsors document with every known tier present,
// empty when the document has never been written.
func (s *sponsorService) GetSponsors(ctx context.Context) (*models.SponsorsDocument, error) {
	doc, err := s.repo.GetSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sponsors: %w", err)
	}
	if doc == nil {
		doc = &models.SponsorsDocument{ID: models.ContentSponsors, Tiers: models.EmptySponsorTiers()}
	}
	if doc.Tiers == nil {
		doc.Tiers = models.EmptySponsorTiers()
	}
	for _, t := range models.SponsorTiers {
		if doc.Tiers[t] == nil {
			doc.Tiers[t] = []models.Sponsor{}
		}
	}
	return doc, nil
}

// CreateSponsor validates and appends a sponsor to its tier array.
func (s *sponsorService) CreateSponsor(ctx context.Context, actor string, sponsor models.Sponsor) (*models.Sponsor, error) {
	if strings.TrimSpace(sponsor.Name) == "" {
		return nil, Validationf("Sponsor name is required")
	}
	if !models.IsSponsorTier(sponsor.Tier) {
		return nil, Validationf("Unknown sponsor tier %q", sponsor.Tier)
	}
	if sponsor.ID == "" {
		sponsor.ID = newItemID()
	}

	doc, err := s.GetSponsors(ctx)
	if err != nil {
		return nil, err
	}
	doc.Tiers[sponsor.Tier] = append(doc.Tiers[sponsor.Tier], sponsor)
	if err := s.save(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// UpdateSponsor replaces a sponsor by id. When the tier changed, the sponsor
// is removed from its old tier array and appended to the new one.
func (s *sponsorService) UpdateSponsor(ctx context.Context, actor string, sponsor models.Sponsor) (*models.Sponsor, error) {
	if sponsor.ID == "" {
		return nil, Validationf("Sponsor id is required")
	}
	if !models.IsSponsorTier(sponsor.Tier) {
		return nil, Validationf("Unknown sponsor tier %q", sponsor.Tier)
	}

	doc, err := s.GetSponsors(ctx)
	if err != nil {
		return nil, err
	}

	fromTier := ""
	for tier, items := range doc.Tiers {
		for _, item := range items {
			if item.ID == sponsor.ID {
				fromTier = tier
				break
			}
		}
	}
	if fromTier == "" {
		return nil, ErrNotFound
	}

	if fromTier == sponsor.Tier {
		items := doc.Tiers[fromTier]
		for i := range items {
			if items[i].ID == sponsor.ID {
				items[i] = sponsor
				break
			}
		}
	} else {
		kept := doc.Tiers[fromTier][:0:0]
		for _, item := range doc.Tiers[fromTier] {
			if item.ID != sponsor.ID {
				kept = append(kept, item)
			}
		}
		doc.Tiers[fromTier] = kept
		doc.Tiers[sponsor.Tier] = append(doc.Tiers[sponsor.Tier], sponsor)
	}

	if err := s.save(ctx, actor, doc); err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// DeleteSponsor removes the sponsor with the given id from the given tier.
func (s *sponsorService) DeleteSponsor(ctx context.Context, actor, tier, id string) error {
	if !models.IsSponsorTier(tier) {
		return Validationf("Unknown sponsor tier %q", tier)
	}
	doc, err := s.GetSponsors(ctx)
	if err != nil {
		return err
	}
	kept := doc.Tiers[tier][:0:0]
	for _, item := range doc.Tiers[tier] {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(doc.Tiers[tier]) {
		return ErrNotFound
	}
	doc.Tiers[tier] = kept
	return s.save(ctx, actor, doc)
}

// ReorderTier replaces one tier's array wholesale, trusting the caller's
// ordering. Other tiers are never touched.
func (s *sponsorService) ReorderTier(ctx context.Context, actor, tier string, sponsors []models.Sponsor) error {
	if !models.IsSponsorTier(tier) {
		return Validationf("Unknown sponsor tier %q", tier)
	}
	doc, err := s.GetSponsors(ctx)
	if err != nil {
		return err
	}
	if sponsors == nil {
		sponsors = []models.Sponsor{}
	}
	for i := range sponsors {
		sponsors[i].Tier = tier
	}
	doc.Tiers[tier] = sponsors
	return s.save(ctx, actor, doc)
}

func (s *sponsorService) save(ctx context.Context, actor string, doc *models.SponsorsDocument) error {
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = actor
	if err := s.repo.SaveSponsors(ctx, doc); err != nil {
		return fmt.Errorf("failed to save sponsors: %w", err)
	}
	slog.Info("Sponsors updated", "by", actor)
	return nil
}
