package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AgreementStore defines persistence operations for agreements.
type AgreementStore interface {
	Create(ctx context.Context, agreement Agreement) (Agreement, error)
	Sign(ctx context.Context, id uuid.UUID, signature1, signature2 string, signedAt time.Time) (Agreement, error)
	GetByID(ctx context.Context, id uuid.UUID) (Agreement, error)
	GetByCode(ctx context.Context, code string) (Agreement, error)
	TouchVerifiedAt(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error
}

// Agreement represents a stored agreement between two parties.
type Agreement struct {
	ID               uuid.UUID
	Content          string
	Signature1       string
	Signature2       string
	CreatedAt        time.Time
	SignedAt         *time.Time
	Verification     VerificationRecord
	VerificationCode string
	LastVerifiedAt   *time.Time
}

// IsSigned reports whether both parties have signed.
func (a Agreement) IsSigned() bool {
	return a.SignedAt != nil
}

// RecordStatus enumerates verification record states.
type RecordStatus string

const (
	// RecordStatusCreated is set when the agreement is stored.
	RecordStatusCreated RecordStatus = "created"
	// RecordStatusSigned is set once both signatures are recorded.
	RecordStatusSigned RecordStatus = "signed"
)

// VerificationRecord is the evidence captured for an agreement's content.
// It is persisted as JSON inside the agreement row.
type VerificationRecord struct {
	AgreementID string       `json:"agreement_id"`
	ContentHash string       `json:"content_hash"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      RecordStatus `json:"status"`
	SignedAt    *time.Time   `json:"signed_at,omitempty"`
}

// IsZero reports whether the record carries no evidence.
func (r VerificationRecord) IsZero() bool {
	return r.AgreementID == "" && r.ContentHash == ""
}
