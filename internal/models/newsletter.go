package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Newsletter subscription statuses.
const (
	SubscriptionActive       = "active"
	SubscriptionUnsubscribed = "unsubscribed"
)

// NewsletterSubscription represents a newsletter signup
type NewsletterSubscription struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Status         string             `bson:"status" json:"status"`
	SubscribedAt   time.Time          `bson:"subscribedAt" json:"subscribedAt"`
	UnsubscribedAt time.Time          `bson:"unsubscribedAt,omitempty" json:"unsubscribedAt,omitempty"`
}

// NewsletterRequest defines the structure for newsletter signups
type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}
