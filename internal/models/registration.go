package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration statuses.
const (
	RegistrationConfirmed = "confirmed"
	RegistrationPending   = "pending"
	RegistrationCheckedIn = "checked-in"
	RegistrationCancelled = "cancelled"
)

// Registration represents a ticket registration for the event
type Registration struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TicketCode string             `bson:"ticketCode" json:"ticketCode"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Email      string             `bson:"email" json:"email"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	JobTitle   string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Category   string             `bson:"category" json:"category"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegistrationRequest defines the structure for registration submissions
type RegistrationRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	Category  string `json:"category" binding:"required"`
}

// PublicRegistration is the reduced view returned by the ticket lookup.
type PublicRegistration struct {
	TicketCode string `json:"ticketCode"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Category   string `json:"category"`
	Status     string `json:"status"`
}

// Public returns the lookup view of a registration.
func (r *Registration) Public() *PublicRegistration {
	return &PublicRegistration{
		TicketCode: r.TicketCode,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Category:   r.Category,
		Status:     r.Status,
	}
}
