package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus governs a profile's visibility and trust.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid reports whether s is a reviewable target status. Pending is never a
// target: no transition back to pending exists.
func (s VerificationStatus) ValidReviewTarget() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// Profile represents a member's display profile. Keyed by the owning user id.
// Status transitions only pending→verified or pending→rejected, and only
// through an admin review.
type Profile struct {
	UserID             uuid.UUID          `json:"userId"`
	DisplayName        string             `json:"displayName"`
	Age                int                `json:"age"`
	Gender             string             `json:"gender"`
	City               string             `json:"city"`
	Country            string             `json:"country"`
	Religion           string             `json:"religion"`
	Sect               null.String        `json:"sect,omitempty"`
	Bio                null.String        `json:"bio,omitempty"`
	PhotoURL           null.String        `json:"photoUrl,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	RejectionReason    null.String        `json:"rejectionReason,omitempty"`
	VerifiedAt         null.Time          `json:"verifiedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	DeletedAt          null.Time          `json:"-"`
}

// UpdateProfileInput represents input for editing the caller's own profile.
// Edits never touch the verification status.
type UpdateProfileInput struct {
	DisplayName string `json:"displayName" binding:"required,min=2,max=100"`
	Age         int    `json:"age" binding:"required,min=18,max=120"`
	Gender      string `json:"gender" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Religion    string `json:"religion" binding:"required"`
	Sect        string `json:"sect,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// ReviewProfileInput represents an admin's verification decision.
type ReviewProfileInput struct {
	Status VerificationStatus `json:"status" binding:"required"`
	Reason string             `json:"reason,omitempty"`
}

// BrowseFilter narrows the verified-profile listing.
type BrowseFilter struct {
	Gender string `form:"gender"`
	MinAge int    `form:"minAge"`
	MaxAge int    `form:"maxAge"`
	City   string `form:"city"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
