// Package pdf renders agreements as downloadable PDF documents.
package pdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/verification"
)

const (
	pageMargin      = 20.0
	lineHeight      = 6.0
	signatureWidth  = 60.0
	signatureHeight = 25.0
	qrSize          = 35.0
	timeLayout      = "2006-01-02 15:04:05 MST"
	textFont        = "DejaVu"
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	obliqueFont []byte
)

var imageTypes = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

var _ model.DocumentRenderer = (*Renderer)(nil)

// Renderer lays out an agreement on A4 pages.
type Renderer struct {
	author string
}

// NewRenderer returns a Renderer that stamps author into document metadata.
func NewRenderer(author string) *Renderer {
	return &Renderer{author: author}
}

// Render produces the PDF bytes for doc.
func (r *Renderer) Render(doc model.Document) ([]byte, error) {
	pdf, err := r.layout(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// layout draws doc onto a new document without serializing it.
func (r *Renderer) layout(doc model.Document) (*fpdf.Fpdf, error) {
	if doc.Content == "" {
		return nil, fmt.Errorf("%w: document content is required", model.ErrInvalidInput)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddUTF8FontFromBytes(textFont, "", regularFont)
	pdf.AddUTF8FontFromBytes(textFont, "B", boldFont)
	pdf.AddUTF8FontFromBytes(textFont, "I", obliqueFont)
	if pdf.Err() {
		return nil, fmt.Errorf("failed to load fonts: %w", pdf.Error())
	}

	title := doc.Title
	if title == "" {
		title = "Agreement"
	}
	pdf.SetTitle(title, true)
	pdf.SetAuthor(r.author, true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}
	pdf.AddPage()

	pdf.SetFont(textFont, "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(textFont, "", 11)
	pdf.MultiCell(0, lineHeight, doc.Content, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont(textFont, "", 9)
	pdf.CellFormat(0, 5, "Created: "+formatTime(doc.CreatedAt), "", 1, "L", false, 0, "")
	if doc.SignedAt != nil {
		pdf.CellFormat(0, 5, "Signed: "+formatTime(*doc.SignedAt), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if doc.SignedAt != nil {
		r.signatures(pdf, doc)
	}
	r.verification(pdf, doc)

	if pdf.Err() {
		return nil, fmt.Errorf("failed to render pdf: %w", pdf.Error())
	}
	return pdf, nil
}

func (r *Renderer) signatures(pdf *fpdf.Fpdf, doc model.Document) {
	pdf.SetFont(textFont, "B", 11)
	y := pdf.GetY()
	pdf.Text(pageMargin, y, "Party 1")
	pdf.Text(pageMargin+signatureWidth+20, y, "Party 2")
	y += 2

	placeImage(pdf, "signature1", doc.Signature1, pageMargin, y, signatureWidth, signatureHeight)
	placeImage(pdf, "signature2", doc.Signature2, pageMargin+signatureWidth+20, y, signatureWidth, signatureHeight)
	pdf.SetY(y + signatureHeight + 6)
}

func (r *Renderer) verification(pdf *fpdf.Fpdf, doc model.Document) {
	if doc.VerificationCode == "" {
		return
	}
	pdf.SetFont(textFont, "B", 11)
	pdf.CellFormat(0, lineHeight, "Verification", "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 9)
	pdf.CellFormat(0, 5, "Code: "+doc.VerificationCode, "", 1, "L", false, 0, "")
	if doc.ContentHash != "" {
		pdf.CellFormat(0, 5, "SHA-256: "+doc.ContentHash, "", 1, "L", false, 0, "")
	}

	if len(doc.QRCode) > 0 {
		y := pdf.GetY() + 2
		if y+qrSize > 297-pageMargin {
			pdf.AddPage()
			y = pdf.GetY()
		}
		placeBytes(pdf, "qr", doc.QRCode, pageMargin, y, qrSize, qrSize)
		pdf.SetY(y + qrSize)
	}
}

// placeImage draws an image data URI, or a placeholder when it cannot be decoded.
func placeImage(pdf *fpdf.Fpdf, name, dataURI string, x, y, w, h float64) {
	_, data, err := verification.DecodeImageDataURI(dataURI)
	if err != nil {
		placeholder(pdf, x, y, w, h)
		return
	}
	placeBytes(pdf, name, data, x, y, w, h)
}

func placeBytes(pdf *fpdf.Fpdf, name string, data []byte, x, y, w, h float64) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	imageType, ok := imageTypes[format]
	if err != nil || !ok {
		placeholder(pdf, x, y, w, h)
		return
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		// fpdf rejects some valid images (interlaced PNG); keep the document.
		pdf.ClearError()
		placeholder(pdf, x, y, w, h)
		return
	}
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func placeholder(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetFont(textFont, "I", 9)
	pdf.Rect(x, y, w, h, "D")
	pdf.Text(x+3, y+h/2, "[image unavailable]")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}
