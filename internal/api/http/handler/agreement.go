package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/model"
)

// Agreement serves the create, sign, view, download and verify pages.
type Agreement struct {
	service  AgreementService
	drafting DraftingService
	logger   *logger.Logger
	maxBody  int64
}

// NewAgreement creates an Agreement handler. maxBody caps request bodies in bytes.
func NewAgreement(service AgreementService, drafting DraftingService, logger *logger.Logger, maxBody int64) *Agreement {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	return &Agreement{
		service:  service,
		drafting: drafting,
		logger:   logger,
		maxBody:  maxBody,
	}
}

// CreateForm lists the templates a new agreement can start from.
func (h *Agreement) CreateForm(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": h.drafting.ListTemplates(),
		"fields":    []string{"content"},
	})
}

func (h *Agreement) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r, h.maxBody, "content")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if strings.TrimSpace(fields["content"]) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     "agreement content is required",
			"templates": h.drafting.ListTemplates(),
		})
		return
	}

	agreement, err := h.service.Create(r.Context(), fields["content"])
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	next := "/sign/" + agreement.ID.String()
	redirect(w, next, createdResponse{
		ID:               agreement.ID,
		VerificationCode: agreement.VerificationCode,
		Next:             next,
	})
}

// SignForm shows the agreement awaiting signatures.
func (h *Agreement) SignForm(w http.ResponseWriter, r *http.Request) {
	id, err := agreementID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"agreement": toAgreementResponse(view.Agreement),
		"fields":    []string{"signature1", "signature2"},
	})
}

func (h *Agreement) Sign(w http.ResponseWriter, r *http.Request) {
	id, err := agreementID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	fields, err := readFields(w, r, h.maxBody, "signature1", "signature2")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	agreement, err := h.service.Sign(r.Context(), id, fields["signature1"], fields["signature2"])
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	next := "/view/" + agreement.ID.String()
	redirect(w, next, signedResponse{
		ID:       agreement.ID,
		SignedAt: agreement.SignedAt,
		Next:     next,
	})
}

func (h *Agreement) View(w http.ResponseWriter, r *http.Request) {
	id, err := agreementID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{
		Agreement:       toAgreementResponse(view.Agreement),
		Verification:    view.Report,
		QRCode:          view.QRCode,
		VerificationURL: view.VerificationURL,
		DownloadURL:     "/download/" + view.Agreement.ID.String(),
	})
}

func (h *Agreement) Download(w http.ResponseWriter, r *http.Request) {
	id, err := agreementID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	file, err := h.service.Download(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		h.logger.Warn("HTTP: failed to write download", "id", id, "error", err)
	}
}

// Verify reports the verification outcome. Failed checks are part of a 200 response.
func (h *Agreement) Verify(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Verify(r.Context(), chi.URLParam(r, "code"), r.URL.Query().Get("challenge"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toVerificationResponse(res))
}

func (h *Agreement) IssueChallenge(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.IssueChallenge(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, challengeResponse{
		VerificationCode: c.Code,
		Challenge:        c.Token,
		VerificationURL:  c.VerificationURL,
		IssuedAt:         c.IssuedAt,
		ExpiresAt:        c.ExpiresAt,
	})
}

// Scan verifies the agreement behind an uploaded QR image.
func (h *Agreement) Scan(w http.ResponseWriter, r *http.Request) {
	image, err := readImage(w, r, h.maxBody, "image")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	if len(image) == 0 {
		handleError(w, r, h.logger, fmt.Errorf("%w: image is required", model.ErrInvalidInput))
		return
	}

	res, err := h.service.VerifyScan(r.Context(), image)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toVerificationResponse(res))
}
