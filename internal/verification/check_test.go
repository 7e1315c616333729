package verification

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nsignature"))

func TestVerifySignatures(t *testing.T) {
	tests := []struct {
		name       string
		sig1, sig2 string
		wantStatus CheckStatus
		wantReason string
	}{
		{
			name:       "both valid",
			sig1:       pngSignature,
			sig2:       pngSignature,
			wantStatus: StatusPassed,
		},
		{
			name:       "first missing",
			sig1:       "",
			sig2:       "data:image/...",
			wantStatus: StatusFailed,
			wantReason: ReasonMissing,
		},
		{
			name:       "second missing",
			sig1:       pngSignature,
			sig2:       "",
			wantStatus: StatusFailed,
			wantReason: ReasonMissing,
		},
		{
			name:       "not a data uri",
			sig1:       "data:image/...",
			sig2:       "not-a-data-uri",
			wantStatus: StatusFailed,
			wantReason: ReasonInvalidFormat,
		},
		{
			name:       "non image data uri",
			sig1:       pngSignature,
			sig2:       "data:text/plain;base64,aGVsbG8=",
			wantStatus: StatusFailed,
			wantReason: ReasonInvalidFormat,
		},
		{
			name:       "broken base64",
			sig1:       pngSignature,
			sig2:       "data:image/png;base64,@@@not base64@@@",
			wantStatus: StatusFailed,
			wantReason: ReasonCorrupted,
		},
		{
			name:       "no payload separator",
			sig1:       "data:image/png;base64",
			sig2:       pngSignature,
			wantStatus: StatusFailed,
			wantReason: ReasonCorrupted,
		},
		{
			name:       "not base64 encoded",
			sig1:       "data:image/svg+xml,<svg/>",
			sig2:       pngSignature,
			wantStatus: StatusFailed,
			wantReason: ReasonCorrupted,
		},
		{
			name:       "empty payload",
			sig1:       "data:image/png;base64,",
			sig2:       pngSignature,
			wantStatus: StatusFailed,
			wantReason: ReasonCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifySignatures(tt.sig1, tt.sig2)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantStatus == StatusPassed, got.Valid())
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestDecodeImageDataURI(t *testing.T) {
	mediaType, data, err := DecodeImageDataURI(pngSignature)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\nsignature"), data)

	unpadded := "data:image/png;base64," + base64.RawStdEncoding.EncodeToString([]byte("ab"))
	_, data, err = DecodeImageDataURI(unpadded)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), data)
}

func TestVerifyIntegrity(t *testing.T) {
	stored, err := Hash("original terms")
	require.NoError(t, err)

	ok := VerifyIntegrity(stored, "original terms")
	assert.True(t, ok.Valid())

	tampered := VerifyIntegrity(stored, "original terms, amended")
	assert.False(t, tampered.Valid())
	assert.Contains(t, tampered.Reason, "tampered")

	assert.False(t, VerifyIntegrity("", "original terms").Valid())
	assert.False(t, VerifyIntegrity(stored, "").Valid())
}

func TestVerifyTimestamp(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		ts    time.Time
		valid bool
	}{
		{name: "now", ts: now, valid: true},
		{name: "four minutes ago", ts: now.Add(-4 * time.Minute), valid: true},
		{name: "exactly at the window", ts: now.Add(-5 * time.Minute), valid: true},
		{name: "just outside the window", ts: now.Add(-5*time.Minute - time.Second), valid: false},
		{name: "small future skew", ts: now.Add(2 * time.Minute), valid: true},
		{name: "far future", ts: now.Add(10 * time.Minute), valid: false},
		{name: "zero", ts: time.Time{}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyTimestamp(tt.ts, now, DefaultTimestampWindow)
			assert.Equal(t, tt.valid, got.Valid(), got.Reason)
		})
	}
}

func TestVerifyTimestamp_DefaultWindow(t *testing.T) {
	now := time.Now()
	assert.True(t, VerifyTimestamp(now.Add(-time.Minute), now, 0).Valid())
	assert.False(t, VerifyTimestamp(now.Add(-time.Hour), now, 0).Valid())
}
