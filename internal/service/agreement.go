package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/metrics"
	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/verification"
)

const pdfContentType = "application/pdf"

// Settings tunes the verification workflow.
type Settings struct {
	TimestampMode verification.TimestampMode
	Window        time.Duration
	CodeAttempts  int
}

// AgreementView is an agreement together with its current verification state.
type AgreementView struct {
	Agreement       model.Agreement
	Report          verification.Report
	QRCode          string
	VerificationURL string
}

// VerificationResult is the outcome of verifying an agreement by code.
type VerificationResult struct {
	Agreement       model.Agreement
	Valid           bool
	Report          verification.Report
	QRCode          string
	VerificationURL string
}

// Challenge is a signed verification session started by a verifier.
type Challenge struct {
	Code            string
	Token           string
	VerificationURL string
	IssuedAt        time.Time
	ExpiresAt       time.Time
}

// File is a rendered document ready for download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Agreement struct {
	store      model.AgreementStore
	challenges model.ChallengeManager
	qr         model.QRCoder
	renderer   model.DocumentRenderer
	archive    model.Storage
	metrics    *metrics.Metrics
	logger     *logger.Logger
	settings   Settings
	now        func() time.Time
}

// NewAgreement wires the agreement workflow. archive and m may be nil.
func NewAgreement(
	store model.AgreementStore,
	challenges model.ChallengeManager,
	qr model.QRCoder,
	renderer model.DocumentRenderer,
	archive model.Storage,
	m *metrics.Metrics,
	logger *logger.Logger,
	settings Settings,
) *Agreement {
	if settings.Window <= 0 {
		settings.Window = verification.DefaultTimestampWindow
	}
	if settings.CodeAttempts < 1 {
		settings.CodeAttempts = 1
	}
	if settings.TimestampMode == "" {
		settings.TimestampMode = verification.TimestampModeRequest
	}

	return &Agreement{
		store:      store,
		challenges: challenges,
		qr:         qr,
		renderer:   renderer,
		archive:    archive,
		metrics:    m,
		logger:     logger,
		settings:   settings,
		now:        time.Now,
	}
}

// Create stores new agreement content with its verification record and code.
// A taken code is regenerated up to Settings.CodeAttempts times.
func (s *Agreement) Create(ctx context.Context, content string) (model.Agreement, error) {
	if strings.TrimSpace(content) == "" {
		return model.Agreement{}, fmt.Errorf("%w: agreement content is required", model.ErrInvalidInput)
	}

	id := uuid.New()
	for attempt := 0; attempt < s.settings.CodeAttempts; attempt++ {
		// Shift by the attempt so a coarse clock still yields a fresh code.
		now := s.now().UTC().Add(time.Duration(attempt))

		record, err := verification.NewRecord(id.String(), content, now)
		if err != nil {
			return model.Agreement{}, fmt.Errorf("failed to build verification record: %w", err)
		}
		code, err := verification.GenerateCode(id.String(), record.ContentHash, now)
		if err != nil {
			return model.Agreement{}, fmt.Errorf("failed to generate verification code: %w", err)
		}

		agreement, err := s.store.Create(ctx, model.Agreement{
			ID:               id,
			Content:          content,
			CreatedAt:        now,
			Verification:     record,
			VerificationCode: code,
		})
		if errors.Is(err, model.ErrDuplicateCode) {
			s.metrics.CodeCollision()
			s.logger.Warn("Agreement service: verification code collision, retrying", "id", id, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return model.Agreement{}, fmt.Errorf("failed to create agreement: %w", err)
		}

		s.metrics.AgreementCreated()
		s.logger.Info("Agreement service: agreement created", "id", agreement.ID, "code", agreement.VerificationCode)
		return agreement, nil
	}

	return model.Agreement{}, fmt.Errorf("%w: no unique verification code after %d attempts", model.ErrPersistence, s.settings.CodeAttempts)
}

// Sign records both party signatures. Signatures must be base64 image data URIs.
// An unknown or already signed agreement is reported before signature validation.
func (s *Agreement) Sign(ctx context.Context, id uuid.UUID, signature1, signature2 string) (model.Agreement, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Agreement{}, fmt.Errorf("failed to get agreement: %w", err)
	}
	if current.IsSigned() {
		return model.Agreement{}, fmt.Errorf("failed to sign agreement: %w", model.ErrAlreadySigned)
	}

	if check := verification.VerifySignatures(signature1, signature2); !check.Valid() {
		return model.Agreement{}, fmt.Errorf("%w: signatures %s", model.ErrValidation, check.Reason)
	}

	agreement, err := s.store.Sign(ctx, id, signature1, signature2, s.now().UTC())
	if err != nil {
		return model.Agreement{}, fmt.Errorf("failed to sign agreement: %w", err)
	}

	s.evictUnsigned(ctx, agreement)

	s.metrics.AgreementSigned()
	s.logger.Info("Agreement service: agreement signed", "id", id)
	return agreement, nil
}

// evictUnsigned drops the archived pre-signature render once an agreement is signed.
func (s *Agreement) evictUnsigned(ctx context.Context, agreement model.Agreement) {
	if s.archive == nil {
		return
	}
	unsigned := agreement
	unsigned.SignedAt = nil
	key := archiveKey(unsigned)

	exists, err := s.archive.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("Agreement service: failed to check archived document", "key", key, "error", err)
		return
	}
	if !exists {
		return
	}
	if err := s.archive.Delete(ctx, key); err != nil {
		s.logger.Warn("Agreement service: failed to evict archived document", "key", key, "error", err)
	}
}

// Get returns the agreement with its verification report as of now.
func (s *Agreement) Get(ctx context.Context, id uuid.UUID) (AgreementView, error) {
	agreement, err := s.store.GetByID(ctx, id)
	if err != nil {
		return AgreementView{}, fmt.Errorf("failed to get agreement: %w", err)
	}

	_, report := verification.VerifyAgreement(agreement, agreement.Verification, s.params(s.now(), nil))

	return AgreementView{
		Agreement:       agreement,
		Report:          report,
		QRCode:          s.qrDataURI(agreement.VerificationCode),
		VerificationURL: s.qr.VerificationURL(agreement.VerificationCode, ""),
	}, nil
}

// Verify runs the full verification of the agreement behind code. challenge
// is optional; when present it must have been issued for code.
func (s *Agreement) Verify(ctx context.Context, code, challenge string) (VerificationResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return VerificationResult{}, fmt.Errorf("%w: verification code is required", model.ErrInvalidInput)
	}

	now := s.now()
	agreement, err := s.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.metrics.Verification("not_found")
		}
		return VerificationResult{}, fmt.Errorf("failed to get agreement by code: %w", err)
	}

	valid, report := verification.VerifyAgreement(agreement, agreement.Verification, s.params(now, s.parseChallenge(code, challenge)))

	if err := s.store.TouchVerifiedAt(ctx, agreement.ID, now.UTC()); err != nil {
		s.logger.Warn("Agreement service: failed to record verification time", "id", agreement.ID, "error", err)
	}

	s.recordVerification(valid, report, agreement.IsSigned())
	s.logger.Info("Agreement service: agreement verified", "id", agreement.ID, "valid", valid, "mode", report.TimestampMode)

	return VerificationResult{
		Agreement:       agreement,
		Valid:           valid,
		Report:          report,
		QRCode:          s.qrDataURI(code),
		VerificationURL: s.qr.VerificationURL(code, ""),
	}, nil
}

// VerifyScan decodes a QR image and verifies the agreement it points to.
func (s *Agreement) VerifyScan(ctx context.Context, image []byte) (VerificationResult, error) {
	code, challenge, err := s.qr.Scan(image)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("failed to scan qr code: %w", err)
	}
	return s.Verify(ctx, code, challenge)
}

// IssueChallenge starts a verification session for code.
func (s *Agreement) IssueChallenge(ctx context.Context, code string) (Challenge, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Challenge{}, fmt.Errorf("%w: verification code is required", model.ErrInvalidInput)
	}
	if _, err := s.store.GetByCode(ctx, code); err != nil {
		return Challenge{}, fmt.Errorf("failed to get agreement by code: %w", err)
	}

	now := s.now().UTC()
	token, err := s.challenges.Issue(code, now)
	if err != nil {
		return Challenge{}, fmt.Errorf("failed to issue challenge: %w", err)
	}

	return Challenge{
		Code:            code,
		Token:           token,
		VerificationURL: s.qr.VerificationURL(code, token),
		IssuedAt:        now,
		ExpiresAt:       now.Add(s.settings.Window),
	}, nil
}

// Download renders the agreement as PDF. Rendered files are cached in the
// archive, keyed by content hash and status, when one is configured.
func (s *Agreement) Download(ctx context.Context, id uuid.UUID) (File, error) {
	agreement, err := s.store.GetByID(ctx, id)
	if err != nil {
		return File{}, fmt.Errorf("failed to get agreement: %w", err)
	}

	file := File{
		Name:        fmt.Sprintf("agreement_%s.pdf", agreement.ID),
		ContentType: pdfContentType,
	}
	key := archiveKey(agreement)

	if data, ok := s.fromArchive(ctx, key); ok {
		file.Data = data
		return file, nil
	}

	doc := model.Document{
		Title:            fmt.Sprintf("Agreement %s", agreement.ID),
		Content:          agreement.Content,
		CreatedAt:        agreement.CreatedAt,
		SignedAt:         agreement.SignedAt,
		Signature1:       agreement.Signature1,
		Signature2:       agreement.Signature2,
		VerificationCode: agreement.VerificationCode,
		ContentHash:      agreement.Verification.ContentHash,
	}
	if png, err := s.qr.PNG(agreement.VerificationCode, ""); err != nil {
		s.logger.Warn("Agreement service: failed to render qr code", "id", id, "error", err)
	} else {
		doc.QRCode = png
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		return File{}, fmt.Errorf("failed to render document: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Put(ctx, key, data, pdfContentType); err != nil {
			s.logger.Warn("Agreement service: failed to archive document", "key", key, "error", err)
		}
	}

	file.Data = data
	return file, nil
}

func (s *Agreement) fromArchive(ctx context.Context, key string) ([]byte, bool) {
	if s.archive == nil {
		return nil, false
	}
	data, err := s.archive.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.ArchiveLookup("hit")
		return data, true
	case errors.Is(err, model.ErrNotFound):
		s.metrics.ArchiveLookup("miss")
	default:
		s.metrics.ArchiveLookup("error")
		s.logger.Warn("Agreement service: archive lookup failed", "key", key, "error", err)
	}
	return nil, false
}

func (s *Agreement) params(now time.Time, req *verification.Request) verification.Params {
	return verification.Params{
		Now:     now,
		Window:  s.settings.Window,
		Mode:    s.settings.TimestampMode,
		Request: req,
	}
}

func (s *Agreement) parseChallenge(code, challenge string) *verification.Request {
	if challenge == "" {
		return nil
	}
	issuedAt, err := s.challenges.Parse(challenge, code)
	if err != nil {
		s.logger.Debug("Agreement service: rejected verification challenge", "code", code, "error", err)
		return &verification.Request{Invalid: true}
	}
	return &verification.Request{IssuedAt: issuedAt}
}

func (s *Agreement) qrDataURI(code string) string {
	uri, err := s.qr.DataURI(code, "")
	if err != nil {
		s.logger.Warn("Agreement service: failed to render qr code", "code", code, "error", err)
		return ""
	}
	return uri
}

func (s *Agreement) recordVerification(valid bool, report verification.Report, signed bool) {
	if valid {
		s.metrics.Verification("valid")
		return
	}
	var failed []string
	if !report.ContentIntegrity.Valid() {
		failed = append(failed, "content_integrity")
	}
	if !report.Timestamp.Valid() {
		failed = append(failed, "timestamp")
	}
	if signed && !report.Signatures.Valid() {
		failed = append(failed, "signatures")
	}
	s.metrics.Verification("invalid", failed...)
}

func archiveKey(a model.Agreement) string {
	status := model.RecordStatusCreated
	if a.IsSigned() {
		status = model.RecordStatusSigned
	}
	// Keyed by the current content so edited rows never hit a stale render.
	hash, err := verification.Hash(a.Content)
	if err != nil {
		hash = "empty"
	}
	return fmt.Sprintf("agreements/%s/%s-%s.pdf", a.ID, hash, status)
}
