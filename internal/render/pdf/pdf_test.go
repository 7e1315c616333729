package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/agreement-server/internal/model"
)

func signaturePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderer_Render(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	signed := created.Add(time.Hour)

	t.Run("unsigned", func(t *testing.T) {
		out, err := NewRenderer("agreement-server").Render(model.Document{
			Title:            "Agreement 1",
			Content:          "Party A agrees to deliver goods to Party B.\nPayment is due in 30 days.",
			CreatedAt:        created,
			VerificationCode: "0123456789ab",
			ContentHash:      "deadbeef",
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("signed with images", func(t *testing.T) {
		sig := signaturePNG(t)
		_, qr, _ := bytes.Cut([]byte(sig), []byte(","))
		qrBytes, err := base64.StdEncoding.DecodeString(string(qr))
		require.NoError(t, err)

		out, err := NewRenderer("agreement-server").Render(model.Document{
			Title:            "Agreement 2",
			Content:          "Signed content",
			CreatedAt:        created,
			SignedAt:         &signed,
			Signature1:       sig,
			Signature2:       sig,
			VerificationCode: "0123456789ab",
			QRCode:           qrBytes,
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("corrupted signature falls back to placeholder", func(t *testing.T) {
		out, err := NewRenderer("").Render(model.Document{
			Content:    "Signed content",
			CreatedAt:  created,
			SignedAt:   &signed,
			Signature1: "data:image/png;base64,AAAA",
			Signature2: "not-a-data-uri",
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := NewRenderer("").Render(model.Document{})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

// utf16BE mirrors how text drawn in an embedded TrueType font lands in a page stream.
func utf16BE(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func TestRenderer_NonLatinContent(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := model.Document{
		Title:            "NDA",
		Content:          "Договор о неразглашении / Maxfiylik shartnomasi",
		CreatedAt:        created,
		VerificationCode: "0123456789ab",
	}

	pdf, err := NewRenderer("agreement-server").layout(doc)
	require.NoError(t, err)
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	assert.True(t, bytes.Contains(buf.Bytes(), utf16BE("Договор")), "cyrillic text must be kept")
	assert.True(t, bytes.Contains(buf.Bytes(), utf16BE("Maxfiylik")))

	out, err := NewRenderer("agreement-server").Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
