package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/agreement-server/internal/logger"
)

// Template serves the landing page, the template catalog and assistant endpoints.
type Template struct {
	drafting DraftingService
	logger   *logger.Logger
	maxBody  int64
}

func NewTemplate(drafting DraftingService, logger *logger.Logger, maxBody int64) *Template {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	return &Template{
		drafting: drafting,
		logger:   logger,
		maxBody:  maxBody,
	}
}

func (h *Template) Index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name": "agreement-server",
		"links": map[string]string{
			"templates":        "/templates",
			"create":           "/create",
			"suggest_template": "/suggest-template",
			"analyze_text":     "/analyze-text",
			"verify":           "/verify/{code}",
			"scan":             "/verify/scan",
		},
	})
}

func (h *Template) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.drafting.ListTemplates())
}

func (h *Template) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.drafting.GetTemplate(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": t.Content})
}

func (h *Template) Suggest(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r, h.maxBody, "content")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	suggestion, err := h.drafting.SuggestTemplate(r.Context(), fields["content"])
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}

func (h *Template) Analyze(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r, h.maxBody, "content")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	analysis, err := h.drafting.AnalyzeText(r.Context(), fields["content"])
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
