package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// MinPitchLength is the minimum pitch narrative length in characters.
const MinPitchLength = 50

// PitchService handles startup pitch intake and admin review.
type PitchService interface {
	Submit(ctx context.Context, req *models.PitchRequest) (*models.PitchSubmission, error)
	List(ctx context.Context, status, search string) ([]*models.PitchSubmission, error)
	UpdateStatus(ctx context.Context, submissionID, status string) (*models.PitchSubmission, error)
	Count(ctx context.Context) (int64, error)
}

type pitchService struct {
	repo repositories.PitchRepository
}

// NewPitchService creates a new PitchService
func NewPitchService(repo repositories.PitchRepository) PitchService {
	return &pitchService{repo: repo}
}

// Submit validates the pitch, rejects duplicate emails, and writes the
// record with status pending.
func (s *pitchService) Submit(ctx context.Context, req *models.PitchRequest) (*models.PitchSubmission, error) {
	if strings.TrimSpace(req.FounderName) == "" {
		return nil, Validationf("Founder name is required")
	}
	if strings.TrimSpace(req.StartupName) == "" {
		return nil, Validationf("Startup name is required")
	}
	if !ValidEmail(req.Email) {
		return nil, Validationf("A valid email address is required")
	}
	pitch := strings.TrimSpace(req.Pitch)
	if utf8.RuneCountInString(pitch) < MinPitchLength {
		return nil, Validationf("Pitch must be at least %d characters", MinPitchLength)
	}
	email := NormalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing pitch: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	submission := &models.PitchSubmission{
		SubmissionID: uuid.NewString(),
		FounderName:  strings.TrimSpace(req.FounderName),
		Email:        email,
		StartupName:  strings.TrimSpace(req.StartupName),
		Pitch:        pitch,
		Website:      strings.TrimSpace(req.Website),
		Stage:        strings.TrimSpace(req.Stage),
		Status:       models.PitchPending,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create pitch: %w", err)
	}
	slog.Info("Pitch submitted", "submissionId", submission.SubmissionID, "startup", submission.StartupName)
	return submission, nil
}

// List returns pitches with an optional status filter and a substring search
// over founder, startup, and email fields.
func (s *pitchService) List(ctx context.Context, status, search string) ([]*models.PitchSubmission, error) {
	if status != "" && !models.IsPitchStatus(status) {
		return nil, Validationf("Unknown pitch status %q", status)
	}
	pitches, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	if search == "" {
		return pitches, nil
	}
	needle := strings.ToLower(search)
	matched := []*models.PitchSubmission{}
	for _, p := range pitches {
		haystack := strings.ToLower(p.FounderName + " " + p.StartupName + " " + p.Email)
		if strings.Contains(haystack, needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// UpdateStatus moves a pitch through the review vocabulary.
func (s *pitchService) UpdateStatus(ctx context.Context, submissionID, status string) (*models.PitchSubmission, error) {
	if !models.IsPitchStatus(status) {
		return nil, Validationf("Unknown pitch status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, submissionID, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update pitch status: %w", err)
	}
	pitch, err := s.repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload pitch: %w", err)
	}
	if pitch == nil {
		return nil, ErrNotFound
	}
	slog.Info("Pitch status updated", "submissionId", submissionID, "status", status)
	return pitch, nil
}

// Count returns the total number of pitch submissions
func (s *pitchService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
