package model

// QRCoder renders verification links as QR images and reads them back.
type QRCoder interface {
	// VerificationURL returns the link a QR code for code points to.
	VerificationURL(code, challenge string) string
	// PNG renders the verification link as a PNG image.
	PNG(code, challenge string) ([]byte, error)
	// DataURI renders the verification link as a base64 PNG data URI.
	DataURI(code, challenge string) (string, error)
	// Scan decodes a QR image and returns the verification code and challenge it carries.
	Scan(image []byte) (code string, challenge string, err error)
}

// DocumentRenderer produces a downloadable document.
type DocumentRenderer interface {
	Render(doc Document) ([]byte, error)
}
