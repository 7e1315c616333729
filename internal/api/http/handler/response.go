package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/service"
	"github.com/dtroode/agreement-server/internal/verification"
)

type errorResponse struct {
	Error string `json:"error"`
}

type agreementResponse struct {
	ID               uuid.UUID                `json:"id"`
	Content          string                   `json:"content"`
	CreatedAt        time.Time                `json:"created_at"`
	Signed           bool                     `json:"signed"`
	SignedAt         *time.Time               `json:"signed_at,omitempty"`
	Signature1       string                   `json:"signature1,omitempty"`
	Signature2       string                   `json:"signature2,omitempty"`
	VerificationCode string                   `json:"verification_code"`
	VerificationData model.VerificationRecord `json:"verification_data"`
	LastVerifiedAt   *time.Time               `json:"last_verified_at,omitempty"`
}

type viewResponse struct {
	Agreement       agreementResponse   `json:"agreement"`
	Verification    verification.Report `json:"verification"`
	QRCode          string              `json:"qr_code,omitempty"`
	VerificationURL string              `json:"verification_url"`
	DownloadURL     string              `json:"download_url"`
}

type createdResponse struct {
	ID               uuid.UUID `json:"id"`
	VerificationCode string    `json:"verification_code"`
	Next             string    `json:"next"`
}

type signedResponse struct {
	ID       uuid.UUID  `json:"id"`
	SignedAt *time.Time `json:"signed_at"`
	Next     string     `json:"next"`
}

// verificationResponse is public; it never carries signature images.
type verificationResponse struct {
	AgreementID      uuid.UUID           `json:"agreement_id"`
	VerificationCode string              `json:"verification_code"`
	Content          string              `json:"content"`
	CreatedAt        time.Time           `json:"created_at"`
	SignedAt         *time.Time          `json:"signed_at,omitempty"`
	Valid            bool                `json:"valid"`
	Report           verification.Report `json:"report"`
	QRCode           string              `json:"qr_code,omitempty"`
	VerificationURL  string              `json:"verification_url"`
}

type challengeResponse struct {
	VerificationCode string    `json:"verification_code"`
	Challenge        string    `json:"challenge"`
	VerificationURL  string    `json:"verification_url"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

func toAgreementResponse(a model.Agreement) agreementResponse {
	return agreementResponse{
		ID:               a.ID,
		Content:          a.Content,
		CreatedAt:        a.CreatedAt,
		Signed:           a.IsSigned(),
		SignedAt:         a.SignedAt,
		Signature1:       a.Signature1,
		Signature2:       a.Signature2,
		VerificationCode: a.VerificationCode,
		VerificationData: a.Verification,
		LastVerifiedAt:   a.LastVerifiedAt,
	}
}

func toVerificationResponse(res service.VerificationResult) verificationResponse {
	return verificationResponse{
		AgreementID:      res.Agreement.ID,
		VerificationCode: res.Agreement.VerificationCode,
		Content:          res.Agreement.Content,
		CreatedAt:        res.Agreement.CreatedAt,
		SignedAt:         res.Agreement.SignedAt,
		Valid:            res.Valid,
		Report:           res.Report,
		QRCode:           res.QRCode,
		VerificationURL:  res.VerificationURL,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// redirect answers a form post with 303 and a JSON body describing the next step.
func redirect(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusSeeOther, v)
}
