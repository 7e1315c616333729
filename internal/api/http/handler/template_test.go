package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/testutil"
)

func templateRouter(drafting *MockDraftingService) http.Handler {
	h := NewTemplate(drafting, testutil.MakeNoopLogger(), 0)
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/templates", h.List)
	r.Get("/templates/{id}", h.Get)
	r.Post("/suggest-template", h.Suggest)
	r.Post("/analyze-text", h.Analyze)
	return r
}

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTemplate_Index(t *testing.T) {
	rec := httptest.NewRecorder()
	templateRouter(&MockDraftingService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "links")
}

func TestTemplate_List(t *testing.T) {
	drafting := &MockDraftingService{}
	drafting.On("ListTemplates").Return(templates)

	rec := httptest.NewRecorder()
	templateRouter(drafting).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"nda","name":"Non-Disclosure Agreement (NDA)"}]`, rec.Body.String())
}

func TestTemplate_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		template   model.Template
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "known template",
			id:         "nda",
			template:   model.Template{ID: "nda", Name: "NDA", Content: "This Non-Disclosure Agreement..."},
			wantStatus: http.StatusOK,
			wantBody:   `{"content":"This Non-Disclosure Agreement..."}`,
		},
		{
			name:       "unknown template",
			id:         "lease",
			err:        fmt.Errorf("template %q: %w", "lease", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafting := &MockDraftingService{}
			drafting.On("GetTemplate", tt.id).Return(tt.template, tt.err)

			rec := httptest.NewRecorder()
			templateRouter(drafting).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates/"+tt.id, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestTemplate_Suggest(t *testing.T) {
	t.Run("suggestion", func(t *testing.T) {
		drafting := &MockDraftingService{}
		drafting.On("SuggestTemplate", mock.Anything, "keep it secret").Return(model.Suggestion{
			TemplateID: "nda", BestMatch: "Non-Disclosure Agreement (NDA)", Confidence: 0.9,
		}, nil)

		rec := httptest.NewRecorder()
		templateRouter(drafting).ServeHTTP(rec, jsonRequest("/suggest-template", `{"content":"keep it secret"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "nda", decode(t, rec)["template_id"])
	})

	t.Run("assistant unavailable", func(t *testing.T) {
		drafting := &MockDraftingService{}
		drafting.On("SuggestTemplate", mock.Anything, "text").Return(model.Suggestion{}, fmt.Errorf("%w: no key", model.ErrIntegration))

		rec := httptest.NewRecorder()
		templateRouter(drafting).ServeHTTP(rec, jsonRequest("/suggest-template", `{"content":"text"}`))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "feature unavailable", decode(t, rec)["error"])
	})

	t.Run("empty text", func(t *testing.T) {
		drafting := &MockDraftingService{}
		drafting.On("SuggestTemplate", mock.Anything, "").Return(model.Suggestion{}, fmt.Errorf("%w: text is required", model.ErrInvalidInput))

		rec := httptest.NewRecorder()
		templateRouter(drafting).ServeHTTP(rec, jsonRequest("/suggest-template", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTemplate_Analyze(t *testing.T) {
	drafting := &MockDraftingService{}
	drafting.On("AnalyzeText", mock.Anything, "pay rent").Return(model.Analysis{
		Summary: "A rental payment", MissingFields: []string{"amount"},
	}, nil)

	rec := httptest.NewRecorder()
	templateRouter(drafting).ServeHTTP(rec, jsonRequest("/analyze-text", `{"content":"pay rent"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A rental payment", decode(t, rec)["summary"])
	drafting.AssertExpectations(t)
}
