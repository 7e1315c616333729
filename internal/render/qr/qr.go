// Package qr renders verification links as QR codes and decodes them back.
package qr

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dtroode/agreement-server/internal/model"
)

const (
	// DefaultSize is the edge length of generated images in pixels.
	DefaultSize = 256

	verifyPath    = "/verify/"
	dataURIPrefix = "data:image/png;base64,"
)

var _ model.QRCoder = (*Coder)(nil)

// Coder builds verification links below baseURL.
type Coder struct {
	baseURL string
	size    int
}

// NewCoder returns a Coder with links rooted at baseURL.
func NewCoder(baseURL string) *Coder {
	return &Coder{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    DefaultSize,
	}
}

// VerificationURL returns {base}/verify/{code}, with the challenge as a query parameter when set.
func (c *Coder) VerificationURL(code, challenge string) string {
	u := c.baseURL + verifyPath + url.PathEscape(code)
	if challenge != "" {
		u += "?" + url.Values{"challenge": {challenge}}.Encode()
	}
	return u
}

// PNG renders the verification link for code.
func (c *Coder) PNG(code, challenge string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: verification code is required", model.ErrInvalidInput)
	}
	png, err := qrcode.Encode(c.VerificationURL(code, challenge), qrcode.Medium, c.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

// DataURI renders the verification link for code as an inline image.
func (c *Coder) DataURI(code, challenge string) (string, error) {
	png, err := c.PNG(code, challenge)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// Scan decodes an uploaded QR image and extracts the verification code.
func (c *Coder) Scan(img []byte) (string, string, error) {
	text, err := Decode(img)
	if err != nil {
		return "", "", err
	}
	return CodeFromURL(text)
}

// Decode returns the text stored in a QR image (PNG, JPEG or GIF).
func Decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", model.ErrInvalidInput)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: unreadable image: %v", model.ErrValidation, err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: unreadable image: %v", model.ErrValidation, err)
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: no qr code found: %v", model.ErrValidation, err)
	}
	return result.GetText(), nil
}

// CodeFromURL extracts the verification code and optional challenge from a
// verification link. A bare code is accepted as well.
func CodeFromURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("%w: verification link is empty", model.ErrInvalidInput)
	}
	if !strings.Contains(raw, "/") {
		return raw, "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: malformed verification link: %v", model.ErrValidation, err)
	}
	i := strings.LastIndex(u.Path, verifyPath)
	if i < 0 {
		return "", "", errors.Join(model.ErrValidation, fmt.Errorf("not a verification link: %s", raw))
	}
	code := strings.Trim(u.Path[i+len(verifyPath):], "/")
	if code == "" || strings.Contains(code, "/") {
		return "", "", errors.Join(model.ErrValidation, fmt.Errorf("not a verification link: %s", raw))
	}
	return code, u.Query().Get("challenge"), nil
}
