package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/scoring"
)

type DiagnosticRepository interface {
	Insert(ctx context.Context, companyID string, scores scoring.Scores, answers scoring.AnswerSet) (string, error)
	// AttachNarrative overwrites the narrative of diagnosticID. A missing row is
	// reported through the outcome, not as an error.
	AttachNarrative(ctx context.Context, diagnosticID, narrative string) (models.AttachOutcome, error)
	FindLatestByCompanyID(ctx context.Context, companyID string) (*models.Diagnostic, error)
}

type DiagnosticUsecase interface {
	GetQuestionnaire(ctx context.Context) *responses.Questionnaire
	SubmitDiagnostic(ctx context.Context, session *models.Session, request *requests.SubmitDiagnostic) (*responses.Diagnostic, error)
	FindLatest(ctx context.Context, session *models.Session, companyID string) (*responses.Diagnostic, error)
	GenerateNarrative(ctx context.Context, session *models.Session, request *requests.GenerateNarrative) (*responses.Narrative, error)
}

// TextGenerationService produces text from a single user prompt.
type TextGenerationService interface {
	IsConfigured() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
}
