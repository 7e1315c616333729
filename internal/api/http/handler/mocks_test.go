package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/service"
)

// MockAgreementService mocks the AgreementService interface
type MockAgreementService struct {
	mock.Mock
}

func (m *MockAgreementService) Create(ctx context.Context, content string) (model.Agreement, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(model.Agreement), args.Error(1)
}

func (m *MockAgreementService) Sign(ctx context.Context, id uuid.UUID, signature1, signature2 string) (model.Agreement, error) {
	args := m.Called(ctx, id, signature1, signature2)
	return args.Get(0).(model.Agreement), args.Error(1)
}

func (m *MockAgreementService) Get(ctx context.Context, id uuid.UUID) (service.AgreementView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.AgreementView), args.Error(1)
}

func (m *MockAgreementService) Verify(ctx context.Context, code, challenge string) (service.VerificationResult, error) {
	args := m.Called(ctx, code, challenge)
	return args.Get(0).(service.VerificationResult), args.Error(1)
}

func (m *MockAgreementService) VerifyScan(ctx context.Context, image []byte) (service.VerificationResult, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(service.VerificationResult), args.Error(1)
}

func (m *MockAgreementService) IssueChallenge(ctx context.Context, code string) (service.Challenge, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(service.Challenge), args.Error(1)
}

func (m *MockAgreementService) Download(ctx context.Context, id uuid.UUID) (service.File, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.File), args.Error(1)
}

// MockDraftingService mocks the DraftingService interface
type MockDraftingService struct {
	mock.Mock
}

func (m *MockDraftingService) ListTemplates() []model.TemplateSummary {
	args := m.Called()
	return args.Get(0).([]model.TemplateSummary)
}

func (m *MockDraftingService) GetTemplate(id string) (model.Template, error) {
	args := m.Called(id)
	return args.Get(0).(model.Template), args.Error(1)
}

func (m *MockDraftingService) SuggestTemplate(ctx context.Context, text string) (model.Suggestion, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Suggestion), args.Error(1)
}

func (m *MockDraftingService) AnalyzeText(ctx context.Context, text string) (model.Analysis, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Analysis), args.Error(1)
}

// MockPinger mocks the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
