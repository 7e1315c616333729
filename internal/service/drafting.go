package service

import (
	"context"
	"fmt"

	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/metrics"
	"github.com/dtroode/agreement-server/internal/model"
)

// TemplateCatalog is the read side of the template catalog.
type TemplateCatalog interface {
	List() []model.TemplateSummary
	Get(id string) (model.Template, error)
}

// Drafting serves templates and AI drafting help.
type Drafting struct {
	catalog   TemplateCatalog
	assistant model.Assistant
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewDrafting(catalog TemplateCatalog, assistant model.Assistant, m *metrics.Metrics, logger *logger.Logger) *Drafting {
	return &Drafting{
		catalog:   catalog,
		assistant: assistant,
		metrics:   m,
		logger:    logger,
	}
}

func (s *Drafting) ListTemplates() []model.TemplateSummary {
	return s.catalog.List()
}

func (s *Drafting) GetTemplate(id string) (model.Template, error) {
	t, err := s.catalog.Get(id)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to get template: %w", err)
	}
	return t, nil
}

// SuggestTemplate asks the assistant which template fits text best.
func (s *Drafting) SuggestTemplate(ctx context.Context, text string) (model.Suggestion, error) {
	suggestion, err := s.assistant.SuggestTemplate(ctx, text)
	s.metrics.AssistantRequest("suggest", err)
	if err != nil {
		return model.Suggestion{}, fmt.Errorf("failed to suggest template: %w", err)
	}

	s.logger.Debug("Drafting service: template suggested", "template_id", suggestion.TemplateID, "confidence", suggestion.Confidence)
	return suggestion, nil
}

// AnalyzeText asks the assistant for feedback on agreement text.
func (s *Drafting) AnalyzeText(ctx context.Context, text string) (model.Analysis, error) {
	analysis, err := s.assistant.Analyze(ctx, text)
	s.metrics.AssistantRequest("analyze", err)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("failed to analyze text: %w", err)
	}
	return analysis, nil
}
