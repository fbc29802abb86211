package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pitch statuses.
const (
	PitchPending   = "pending"
	PitchReviewing = "reviewing"
	PitchAccepted  = "accepted"
	PitchRejected  = "rejected"
)

// IsPitchStatus reports whether s is in the pitch status vocabulary.
func IsPitchStatus(s string) bool {
	switch s {
	case PitchPending, PitchReviewing, PitchAccepted, PitchRejected:
		return true
	}
	return false
}

// PitchSubmission represents a startup pitch submission
type PitchSubmission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SubmissionID string             `bson:"submissionId" json:"submissionId"`
	FounderName  string             `bson:"founderName" json:"founderName"`
	Email        string             `bson:"email" json:"email"`
	StartupName  string             `bson:"startupName" json:"startupName"`
	Pitch        string             `bson:"pitch" json:"pitch"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	Stage        string             `bson:"stage,omitempty" json:"stage,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PitchRequest defines the structure for pitch submissions
type PitchRequest struct {
	FounderName string `json:"founderName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	StartupName string `json:"startupName" binding:"required"`
	Pitch       string `json:"pitch" binding:"required"`
	Website     string `json:"website"`
	Stage       string `json:"stage"`
}
