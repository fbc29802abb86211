package services

import (
	"context"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"github.com/techdayconf/techday-backend/pkg/mailer"
	"golang.org/x/exp/slog"
)

const ticketAlphabet = "0123456789ABCDEF"

// RegistrationService handles ticket registration intake and admin listings.
type RegistrationService interface {
	Register(ctx context.Context, req *models.RegistrationRequest) (*models.Registration, error)
	Lookup(ctx context.Context, ticketCode, email string) (*models.PublicRegistration, error)
	List(ctx context.Context, status, category, search string) ([]*models.Registration, error)
	Count(ctx context.Context) (int64, error)
}

type registrationService struct {
	repo         repositories.RegistrationRepository
	mailer       mailer.Mailer
	ticketPrefix string
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(repo repositories.RegistrationRepository, m mailer.Mailer, ticketPrefix string) RegistrationService {
	return &registrationService{
		repo:         repo,
		mailer:       m,
		ticketPrefix: ticketPrefix,
	}
}

// Register validates the submission, rejects duplicate emails, writes the
// record, and triggers the confirmation email. A failed send is logged but
// never fails the request; the registration is already durable.
func (s *registrationService) Register(ctx context.Context, req *models.RegistrationRequest) (*models.Registration, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, Validationf("First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, Validationf("Last name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, Validationf("Category is required")
	}
	if !ValidEmail(req.Email) {
		return nil, Validationf("A valid email address is required")
	}
	email := NormalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	reg := &models.Registration{
		TicketCode: s.newTicketCode(),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      email,
		Company:    strings.TrimSpace(req.Company),
		JobTitle:   strings.TrimSpace(req.JobTitle),
		Category:   strings.TrimSpace(req.Category),
		Status:     models.RegistrationConfirmed,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	slog.Info("Registration created", "ticket", reg.TicketCode, "category", reg.Category)

	if err := s.mailer.SendRegistrationConfirmation(ctx, reg.Email, reg.FirstName, reg.TicketCode); err != nil {
		slog.Error("Failed to send confirmation email", "error", err, "ticket", reg.TicketCode)
	}
	return reg, nil
}

// Lookup finds a registration by ticket code or email and returns the
// reduced public view.
func (s *registrationService) Lookup(ctx context.Context, ticketCode, email string) (*models.PublicRegistration, error) {
	var reg *models.Registration
	var err error
	switch {
	case ticketCode != "":
		reg, err = s.repo.FindByTicketCode(ctx, strings.ToUpper(strings.TrimSpace(ticketCode)))
	case email != "":
		reg, err = s.repo.FindByEmail(ctx, NormalizeEmail(email))
	default:
		return nil, Validationf("A ticket code or email is required")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up registration: %w", err)
	}
	if reg == nil {
		return nil, ErrNotFound
	}
	return reg.Public(), nil
}

// List returns registrations with optional equality filters and a substring
// search over name, email, and company. The search runs in-process because
// the store has no full-text support.
func (s *registrationService) List(ctx context.Context, status, category, search string) ([]*models.Registration, error) {
	regs, err := s.repo.FindAll(ctx, status, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	if search == "" {
		return regs, nil
	}
	needle := strings.ToLower(search)
	matched := []*models.Registration{}
	for _, reg := range regs {
		haystack := strings.ToLower(reg.FirstName + " " + reg.LastName + " " + reg.Email + " " + reg.Company)
		if strings.Contains(haystack, needle) {
			matched = append(matched, reg)
		}
	}
	return matched, nil
}

// Count returns the total number of registrations
func (s *registrationService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// newTicketCode builds a human-facing ticket code: the event-year prefix
// plus six characters from the hex alphabet, e.g. TD26-3F0A9C.
func (s *registrationService) newTicketCode() string {
	suffix, err := gonanoid.Generate(ticketAlphabet, 6)
	if err != nil {
		suffix = "000000"
	}
	return s.ticketPrefix + "-" + suffix
}
