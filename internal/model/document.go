package model

import "time"

// Document is the renderable form of an agreement.
type Document struct {
	Title            string
	Content          string
	CreatedAt        time.Time
	SignedAt         *time.Time
	Signature1       string
	Signature2       string
	VerificationCode string
	ContentHash      string
	QRCode           []byte
}
