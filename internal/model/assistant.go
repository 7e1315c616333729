package model

import "context"

// Suggestion is a template recommendation for free-text input.
type Suggestion struct {
	TemplateID  string   `json:"template_id"`
	BestMatch   string   `json:"best_match"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	KeyTerms    []string `json:"key_terms,omitempty"`
}

// Analysis is auxiliary structured feedback on agreement text.
type Analysis struct {
	Summary       string   `json:"summary"`
	KeyTerms      []string `json:"key_terms"`
	MissingFields []string `json:"missing_fields"`
	Risks         []string `json:"risks"`
}

// Assistant produces AI-backed drafting help. Failures wrap ErrIntegration.
type Assistant interface {
	SuggestTemplate(ctx context.Context, text string) (Suggestion, error)
	Analyze(ctx context.Context, text string) (Analysis, error)
}
