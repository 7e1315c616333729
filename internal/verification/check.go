package verification

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// CheckStatus is the outcome of a single verification check.
type CheckStatus string

const (
	StatusPassed        CheckStatus = "passed"
	StatusFailed        CheckStatus = "failed"
	StatusNotApplicable CheckStatus = "not_applicable"
)

// Signature check failure reasons.
const (
	ReasonMissing       = "missing"
	ReasonInvalidFormat = "invalid format"
	ReasonCorrupted     = "corrupted data"
)

// ReasonNoChallenge marks a request-mode timestamp check made without a challenge.
const ReasonNoChallenge = "no verification challenge presented"

// DefaultTimestampWindow is the maximum allowed distance between a checked
// timestamp and the current time.
const DefaultTimestampWindow = 5 * time.Minute

const imageDataPrefix = "data:image"

// Check is a single sub-result of a verification report.
type Check struct {
	Status CheckStatus `json:"status"`
	Reason string      `json:"reason"`
}

// Valid reports whether the check passed.
func (c Check) Valid() bool {
	return c.Status == StatusPassed
}

func passed(reason string) Check {
	return Check{Status: StatusPassed, Reason: reason}
}

func failed(reason string) Check {
	return Check{Status: StatusFailed, Reason: reason}
}

// VerifySignatures checks that both signatures are present data-URI images
// with a decodable base64 payload.
func VerifySignatures(signature1, signature2 string) Check {
	if signature1 == "" || signature2 == "" {
		return failed(ReasonMissing)
	}
	if !strings.HasPrefix(signature1, imageDataPrefix) || !strings.HasPrefix(signature2, imageDataPrefix) {
		return failed(ReasonInvalidFormat)
	}
	for _, sig := range []string{signature1, signature2} {
		if _, _, err := DecodeImageDataURI(sig); err != nil {
			return failed(ReasonCorrupted)
		}
	}
	return passed("both signatures present and well-formed")
}

// DecodeImageDataURI splits a base64 image data URI into its media type and payload.
func DecodeImageDataURI(uri string) (string, []byte, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("data uri has no payload")
	}
	mediaType, isBase64 := strings.CutSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data uri is not base64 encoded")
	}
	if payload == "" {
		return "", nil, fmt.Errorf("data uri payload is empty")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("failed to decode data uri payload: %w", err)
		}
	}
	return mediaType, data, nil
}

// VerifyIntegrity recomputes the hash of currentContent and compares it to storedHash.
func VerifyIntegrity(storedHash string, currentContent string) Check {
	if storedHash == "" {
		return failed("stored content hash is missing")
	}
	currentHash, err := Hash(currentContent)
	if err != nil {
		return failed("agreement content is missing")
	}
	if currentHash != storedHash {
		return failed("content hash mismatch: document has been tampered with")
	}
	return passed("content hash matches")
}

// VerifyTimestamp passes when ts lies within window of now, in either direction.
func VerifyTimestamp(ts time.Time, now time.Time, window time.Duration) Check {
	if ts.IsZero() {
		return failed("timestamp is missing")
	}
	if window <= 0 {
		window = DefaultTimestampWindow
	}
	diff := now.Sub(ts)
	if diff < 0 {
		diff = -diff
	}
	if diff > window {
		return failed(fmt.Sprintf("timestamp outside the %s window", window))
	}
	return passed(fmt.Sprintf("timestamp within the %s window", window))
}
