package diagnostics

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/scoring"
	"crooly-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	errIncompleteNarrativeInput = errors.New("diagnostic_id and the four scores are required")
	errTextGenerationDisabled   = errors.New("text generation service has no api key")
)

type diagnosticUsecase struct {
	DiagnosticRepository  contracts.DiagnosticRepository
	TextGenerationService contracts.TextGenerationService
	Log                   *zap.Logger
}

var (
	diagnosticUsecaseInstance contracts.DiagnosticUsecase
	onceDiagnosticUsecase     sync.Once
)

func NewDiagnosticUsecase(
	diagnosticRepository contracts.DiagnosticRepository,
	textGenerationService contracts.TextGenerationService,
	logger *zap.Logger,
) contracts.DiagnosticUsecase {
	onceDiagnosticUsecase.Do(func() {
		diagnosticUsecaseInstance = newDiagnosticUsecase(diagnosticRepository, textGenerationService, logger)
	})
	return diagnosticUsecaseInstance
}

func newDiagnosticUsecase(
	diagnosticRepository contracts.DiagnosticRepository,
	textGenerationService contracts.TextGenerationService,
	logger *zap.Logger,
) *diagnosticUsecase {
	return &diagnosticUsecase{
		DiagnosticRepository:  diagnosticRepository,
		TextGenerationService: textGenerationService,
		Log:                   logger,
	}
}

func (uc *diagnosticUsecase) GetQuestionnaire(ctx context.Context) *responses.Questionnaire {
	response := &responses.Questionnaire{
		Dimensions: scoring.Questionnaire(),
	}
	response.Scale.Min = scoring.MinAnswerValue
	response.Scale.Max = scoring.MaxAnswerValue
	return response
}

// SubmitDiagnostic validates, scores and stores one answer set. The narrative is
// requested separately through GenerateNarrative once the scores are shown.
func (uc *diagnosticUsecase) SubmitDiagnostic(ctx context.Context, session *models.Session, request *requests.SubmitDiagnostic) (*responses.Diagnostic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosticUsecase.SubmitDiagnostic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	if err := scoring.ValidateAnswerSet(request.Answers); err != nil {
		uc.Log.Error("diagnosticUsecase.SubmitDiagnostic rejected answer set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrIncompleteAnswerSet(err)
	}

	scores := scoring.ComputeScores(request.Answers)

	diagnosticID, err := uc.DiagnosticRepository.Insert(ctx, request.CompanyID, scores, request.Answers)
	if err != nil {
		uc.Log.Error("diagnosticUsecase.SubmitDiagnostic error inserting diagnostic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	diagnostic := &models.Diagnostic{
		ID:        diagnosticID,
		CompanyID: request.CompanyID,
		Scores:    scores,
		Answers:   request.Answers,
		CreatedAt: time.Now(),
	}

	response := utils.ConvertDiagnosticToResponse(diagnostic)

	uc.Log.Info("diagnosticUsecase.SubmitDiagnostic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
		zap.Float64(constvars.LoggingOverallScoreKey, response.Overall),
	)
	return response, nil
}

func (uc *diagnosticUsecase) FindLatest(ctx context.Context, session *models.Session, companyID string) (*responses.Diagnostic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosticUsecase.FindLatest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	if err := utils.AuthorizeCompanyAccess(session, companyID); err != nil {
		return nil, err
	}

	diagnostic, err := uc.DiagnosticRepository.FindLatestByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		uc.Log.Info("diagnosticUsecase.FindLatest company has no diagnostic yet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	uc.Log.Info("diagnosticUsecase.FindLatest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, diagnostic.ID),
	)
	return utils.ConvertDiagnosticToResponse(diagnostic), nil
}

func (uc *diagnosticUsecase) GenerateNarrative(ctx context.Context, session *models.Session, request *requests.GenerateNarrative) (*responses.Narrative, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosticUsecase.GenerateNarrative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, request.DiagnosticID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	if !uc.TextGenerationService.IsConfigured() {
		uc.Log.Error("diagnosticUsecase.GenerateNarrative text generation is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTextGenerationNotConfigured(errTextGenerationDisabled)
	}

	if !request.IsComplete() {
		return nil, exceptions.ErrIncompleteNarrativeInput(errIncompleteNarrativeInput)
	}

	narrative, err := uc.generateAndAttach(ctx, request.DiagnosticID, request.Scores())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("diagnosticUsecase.GenerateNarrative succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, request.DiagnosticID),
	)
	return &responses.Narrative{Narrative: narrative}, nil
}

// generateAndAttach returns the generated text even when storing it fails.
// The write is detached from ctx cancellation so an abandoned request still persists it.
func (uc *diagnosticUsecase) generateAndAttach(ctx context.Context, diagnosticID string, scores scoring.Scores) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.TextGenerationService.IsConfigured() {
		return "", exceptions.ErrTextGenerationNotConfigured(errTextGenerationDisabled)
	}

	prompt := BuildNarrativePrompt(scores)
	narrative, err := uc.TextGenerationService.GenerateText(ctx, prompt)
	if err != nil {
		uc.Log.Error("diagnosticUsecase.generateAndAttach error generating narrative",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
			zap.Error(err),
		)
		return "", exceptions.ErrTextGenerationFailed(err)
	}
	narrative = strings.TrimSpace(narrative)

	outcome, err := uc.DiagnosticRepository.AttachNarrative(context.WithoutCancel(ctx), diagnosticID, narrative)
	if err != nil {
		uc.Log.Warn("diagnosticUsecase.generateAndAttach error storing narrative",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
			zap.Error(err),
		)
	} else if outcome == models.AttachOutcomeMissing {
		uc.Log.Warn("diagnosticUsecase.generateAndAttach diagnostic not found, narrative not stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
			zap.String(constvars.LoggingAttachOutcomeKey, string(outcome)),
		)
	}

	return narrative, nil
}

// BuildNarrativePrompt renders every score with one decimal. The overall score
// is derived here and never taken from the caller.
func BuildNarrativePrompt(scores scoring.Scores) string {
	return fmt.Sprintf(constvars.NarrativePromptFormat,
		scores.Credibilidad,
		scores.CapacidadComercial,
		scores.Posicionamiento,
		scores.Operacion,
		scoring.ComputeOverallScore(scores),
	)
}
