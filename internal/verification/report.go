package verification

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/agreement-server/internal/model"
)

// TimestampMode selects which timestamp the freshness check applies to.
type TimestampMode string

const (
	// TimestampModeRequest checks the freshness of the verification request.
	TimestampModeRequest TimestampMode = "request"
	// TimestampModeDocument checks the age of the agreement's verification record.
	// Any agreement older than the window fails in this mode.
	TimestampModeDocument TimestampMode = "document"
)

// ParseTimestampMode maps a configuration value to a TimestampMode.
func ParseTimestampMode(s string) (TimestampMode, error) {
	switch TimestampMode(strings.ToLower(strings.TrimSpace(s))) {
	case TimestampModeRequest, "":
		return TimestampModeRequest, nil
	case TimestampModeDocument:
		return TimestampModeDocument, nil
	default:
		return "", fmt.Errorf("%w: unknown timestamp mode %q", model.ErrInvalidInput, s)
	}
}

// Request describes the verification request whose freshness is checked in
// request mode.
type Request struct {
	// IssuedAt is when the verification session was started.
	IssuedAt time.Time
	// Invalid is set when a presented challenge could not be validated.
	Invalid bool
}

// Params carries the time context of a verification run.
type Params struct {
	Now    time.Time
	Window time.Duration
	Mode   TimestampMode
	// Request is nil when the caller presented no challenge; the request
	// is then considered issued at Now.
	Request *Request
}

// Report is the structured outcome of VerifyAgreement.
type Report struct {
	ContentIntegrity Check         `json:"content_integrity"`
	Timestamp        Check         `json:"timestamp"`
	Signatures       Check         `json:"signatures"`
	Valid            bool          `json:"valid"`
	Message          string        `json:"message"`
	TimestampMode    TimestampMode `json:"timestamp_mode"`
	VerifiedAt       time.Time     `json:"verified_at"`
}

const (
	messageSuccess  = "Document verification successful"
	messageNotFound = "Agreement or verification record not found"
)

// VerifyAgreement runs every check against agreement and its stored record.
// Signatures are only checked once the agreement is signed; before that the
// signatures sub-result is not applicable and does not affect validity.
func VerifyAgreement(agreement model.Agreement, record model.VerificationRecord, p Params) (bool, Report) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	mode := p.Mode
	if mode == "" {
		mode = TimestampModeRequest
	}
	report := Report{TimestampMode: mode, VerifiedAt: now.UTC()}

	if agreement.Content == "" || record.IsZero() {
		report.ContentIntegrity = failed(messageNotFound)
		report.Timestamp = failed(messageNotFound)
		report.Signatures = failed(messageNotFound)
		report.Message = messageNotFound
		return false, report
	}

	if record.AgreementID != agreement.ID.String() {
		report.ContentIntegrity = failed("verification record belongs to another agreement")
	} else {
		report.ContentIntegrity = VerifyIntegrity(record.ContentHash, agreement.Content)
	}

	report.Timestamp = checkTimestamp(record, p, now, mode)

	if agreement.IsSigned() {
		report.Signatures = VerifySignatures(agreement.Signature1, agreement.Signature2)
	} else {
		report.Signatures = Check{Status: StatusNotApplicable, Reason: "not yet signed"}
	}

	report.Valid = report.ContentIntegrity.Valid() &&
		report.Timestamp.Valid() &&
		(!agreement.IsSigned() || report.Signatures.Valid())
	report.Message = summarize(report, agreement.IsSigned())

	return report.Valid, report
}

func checkTimestamp(record model.VerificationRecord, p Params, now time.Time, mode TimestampMode) Check {
	if mode == TimestampModeDocument {
		return VerifyTimestamp(record.Timestamp, now, p.Window)
	}
	if p.Request == nil {
		return passed(ReasonNoChallenge)
	}
	if p.Request.Invalid {
		return failed("invalid verification challenge")
	}
	return VerifyTimestamp(p.Request.IssuedAt, now, p.Window)
}

func summarize(report Report, signed bool) string {
	if report.Valid {
		if !signed {
			return messageSuccess + " (not yet signed)"
		}
		return messageSuccess
	}

	var problems []string
	if !report.ContentIntegrity.Valid() {
		problems = append(problems, "Document content has been modified")
	}
	if signed && !report.Signatures.Valid() {
		problems = append(problems, "Invalid signatures")
	}
	if !report.Timestamp.Valid() {
		problems = append(problems, "Verification timestamp outside the allowed window")
	}
	return strings.Join(problems, "; ")
}
