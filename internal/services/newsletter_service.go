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

// NewsletterService handles newsletter signups. Resubscribing a previously
// unsubscribed email reactivates the record instead of rejecting it.
type NewsletterService interface {
	Subscribe(ctx context.Context, req *models.NewsletterRequest) (*models.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, status, search string) ([]*models.NewsletterSubscription, error)
	Count(ctx context.Context) (int64, error)
}

type newsletterService struct {
	repo repositories.NewsletterRepository
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(repo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

// Subscribe creates or reactivates a subscription for the normalized email.
// An already-active subscription is a conflict.
func (s *newsletterService) Subscribe(ctx context.Context, req *models.NewsletterRequest) (*models.NewsletterSubscription, error) {
	if !ValidEmail(req.Email) {
		return nil, Validationf("A valid email address is required")
	}
	email := NormalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		if existing.Status == models.SubscriptionActive {
			return nil, ErrDuplicate
		}
		existing.Status = models.SubscriptionActive
		existing.SubscribedAt = time.Now()
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate subscription: %w", err)
		}
		slog.Info("Newsletter subscription reactivated", "email", email)
		return existing, nil
	}

	sub := &models.NewsletterSubscription{
		Email:  email,
		Status: models.SubscriptionActive,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	slog.Info("Newsletter subscription created", "email", email)
	return sub, nil
}

// Unsubscribe flips an active subscription to unsubscribed. Unknown emails
// and already-unsubscribed records are treated as done.
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	if !ValidEmail(email) {
		return Validationf("A valid email address is required")
	}
	sub, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil || sub.Status == models.SubscriptionUnsubscribed {
		return nil
	}
	sub.Status = models.SubscriptionUnsubscribed
	sub.UnsubscribedAt = time.Now()
	if err := s.repo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	slog.Info("Newsletter subscription cancelled", "email", sub.Email)
	return nil
}

// List returns subscriptions with an optional status filter and a substring
// search over the email field.
func (s *newsletterService) List(ctx context.Context, status, search string) ([]*models.NewsletterSubscription, error) {
	subs, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if search == "" {
		return subs, nil
	}
	needle := NormalizeEmail(search)
	matched := []*models.NewsletterSubscription{}
	for _, sub := range subs {
		if strings.Contains(sub.Email, needle) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

// Count returns the total number of subscriptions
func (s *newsletterService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
