package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/service"
)

// AgreementService is the agreement workflow used by the handlers.
type AgreementService interface {
	Create(ctx context.Context, content string) (model.Agreement, error)
	Sign(ctx context.Context, id uuid.UUID, signature1, signature2 string) (model.Agreement, error)
	Get(ctx context.Context, id uuid.UUID) (service.AgreementView, error)
	Verify(ctx context.Context, code, challenge string) (service.VerificationResult, error)
	VerifyScan(ctx context.Context, image []byte) (service.VerificationResult, error)
	IssueChallenge(ctx context.Context, code string) (service.Challenge, error)
	Download(ctx context.Context, id uuid.UUID) (service.File, error)
}

// DraftingService serves templates and assistant help.
type DraftingService interface {
	ListTemplates() []model.TemplateSummary
	GetTemplate(id string) (model.Template, error)
	SuggestTemplate(ctx context.Context, text string) (model.Suggestion, error)
	AnalyzeText(ctx context.Context, text string) (model.Analysis, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
