package diagnostics

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/scoring"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDiagnosticRepository struct {
	mock.Mock
}

func (m *MockDiagnosticRepository) Insert(ctx context.Context, companyID string, scores scoring.Scores, answers scoring.AnswerSet) (string, error) {
	args := m.Called(ctx, companyID, scores, answers)
	return args.String(0), args.Error(1)
}

func (m *MockDiagnosticRepository) AttachNarrative(ctx context.Context, diagnosticID, narrative string) (models.AttachOutcome, error) {
	args := m.Called(ctx, diagnosticID, narrative)
	return args.Get(0).(models.AttachOutcome), args.Error(1)
}

func (m *MockDiagnosticRepository) FindLatestByCompanyID(ctx context.Context, companyID string) (*models.Diagnostic, error) {
	args := m.Called(ctx, companyID)
	diagnostic, _ := args.Get(0).(*models.Diagnostic)
	return diagnostic, args.Error(1)
}

type MockTextGenerationService struct {
	mock.Mock
}

func (m *MockTextGenerationService) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTextGenerationService) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

var consultantSession = &models.Session{
	SessionID: "session-1",
	UserID:    "user-1",
	Email:     "consultor@crooly.cl",
	Role:      constvars.CroolyRoleConsultant,
}

func completeAnswers() scoring.AnswerSet {
	return scoring.AnswerSet{
		"c1": 5, "c2": 5, "c3": 5,
		"cc1": 1, "cc2": 1, "cc3": 1,
		"p1": 3, "p2": 3, "p3": 3,
		"o1": 2, "o2": 2, "o3": 2,
	}
}

func float(value float64) *float64 {
	return &value
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func newTestUsecase() (*diagnosticUsecase, *MockDiagnosticRepository, *MockTextGenerationService) {
	repository := new(MockDiagnosticRepository)
	generator := new(MockTextGenerationService)
	return newDiagnosticUsecase(repository, generator, zap.NewNop()), repository, generator
}

func TestDiagnosticUsecase_SubmitDiagnostic(t *testing.T) {
	expectedScores := scoring.Scores{Credibilidad: 5.0, CapacidadComercial: 1.0, Posicionamiento: 3.0, Operacion: 2.0}

	t.Run("Incomplete Answers Never Reach Store Or Generator", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		answers := completeAnswers()
		delete(answers, "o3")

		response, err := usecase.SubmitDiagnostic(context.Background(), consultantSession, &requests.SubmitDiagnostic{
			CompanyID: "company-1",
			Answers:   answers,
		})

		assert.Nil(t, response)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
	})

	t.Run("Insert Failure Prevents Generation", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		repository.On("Insert", mock.Anything, "company-1", expectedScores, mock.Anything).
			Return("", exceptions.ErrPostgresDBInsertData(errors.New("connection refused")))

		response, err := usecase.SubmitDiagnostic(context.Background(), consultantSession, &requests.SubmitDiagnostic{
			CompanyID: "company-1",
			Answers:   completeAnswers(),
		})

		assert.Nil(t, response)
		assert.Equal(t, constvars.StatusInternalServerError, statusCodeOf(t, err))
		generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
		repository.AssertNotCalled(t, "AttachNarrative", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Scores Answers End To End Without Waiting For Narrative", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		repository.On("Insert", mock.Anything, "company-1", expectedScores, completeAnswers()).Return("diag-1", nil)

		response, err := usecase.SubmitDiagnostic(context.Background(), consultantSession, &requests.SubmitDiagnostic{
			CompanyID: "company-1",
			Answers:   completeAnswers(),
		})

		require.NoError(t, err)
		assert.Equal(t, "diag-1", response.ID)
		assert.Equal(t, expectedScores, response.Scores)
		assert.Equal(t, 2.8, response.Overall)
		assert.Nil(t, response.Narrative)
		assert.Len(t, response.Dimensions, 4)
		repository.AssertExpectations(t)
		generator.AssertNotCalled(t, "IsConfigured")
		generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
		repository.AssertNotCalled(t, "AttachNarrative", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Slow Generator Does Not Delay Scores", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		repository.On("Insert", mock.Anything, "company-1", expectedScores, mock.Anything).Return("diag-2", nil)
		generator.On("IsConfigured").Return(true).Maybe()
		generator.On("GenerateText", mock.Anything, mock.Anything).
			After(2*time.Second).Return("tarde", nil).Maybe()

		started := time.Now()
		response, err := usecase.SubmitDiagnostic(context.Background(), consultantSession, &requests.SubmitDiagnostic{
			CompanyID: "company-1",
			Answers:   completeAnswers(),
		})

		require.NoError(t, err)
		assert.Less(t, time.Since(started), time.Second)
		assert.Equal(t, 2.8, response.Overall)
		assert.Nil(t, response.Narrative)
	})

	t.Run("Client Session Is Rejected", func(t *testing.T) {
		usecase, repository, _ := newTestUsecase()
		client := &models.Session{Role: constvars.CroolyRoleClient, CompanyID: "company-1"}

		_, err := usecase.SubmitDiagnostic(context.Background(), client, &requests.SubmitDiagnostic{
			CompanyID: "company-1",
			Answers:   completeAnswers(),
		})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDiagnosticUsecase_GenerateNarrative(t *testing.T) {
	fullRequest := func() *requests.GenerateNarrative {
		return &requests.GenerateNarrative{
			DiagnosticID:       "diag-1",
			Credibilidad:       float(2.0),
			CapacidadComercial: float(3.0),
			Posicionamiento:    float(4.0),
			Operacion:          float(3.0),
		}
	}

	t.Run("Missing Configuration Fails Before Anything Else", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(false)

		_, err := usecase.GenerateNarrative(context.Background(), consultantSession, &requests.GenerateNarrative{})

		assert.Equal(t, constvars.StatusInternalServerError, statusCodeOf(t, err))
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientNarrativeNotConfigured, customErr.ClientMessage)
		generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
		repository.AssertNotCalled(t, "AttachNarrative", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Score Is Incomplete Input", func(t *testing.T) {
		usecase, _, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		request := fullRequest()
		request.Operacion = nil

		_, err := usecase.GenerateNarrative(context.Background(), consultantSession, request)

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
	})

	t.Run("Missing Diagnostic ID Is Incomplete Input", func(t *testing.T) {
		usecase, _, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		request := fullRequest()
		request.DiagnosticID = ""

		_, err := usecase.GenerateNarrative(context.Background(), consultantSession, request)

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("Prompt Carries Scores And Overall", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		var prompt string
		generator.On("GenerateText", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { prompt = args.String(1) }).
			Return("Texto", nil)
		repository.On("AttachNarrative", mock.Anything, "diag-1", "Texto").Return(models.AttachOutcomeApplied, nil)

		_, err := usecase.GenerateNarrative(context.Background(), consultantSession, fullRequest())

		require.NoError(t, err)
		assert.Contains(t, prompt, "Credibilidad documentada: 2.0")
		assert.Contains(t, prompt, "Capacidad Comercial: 3.0")
		assert.Contains(t, prompt, "Posicionamiento: 4.0")
		assert.Contains(t, prompt, "Operación y estructura: 3.0")
		assert.Contains(t, prompt, "Promedio general: 3.0")
		assert.Contains(t, prompt, "exactamente 3 párrafos")
	})

	t.Run("Trimmed Text Is Stored And Returned", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		generator.On("GenerateText", mock.Anything, mock.Anything).Return(" Text ", nil)
		repository.On("AttachNarrative", mock.Anything, "diag-1", "Text").Return(models.AttachOutcomeApplied, nil)

		response, err := usecase.GenerateNarrative(context.Background(), consultantSession, fullRequest())

		require.NoError(t, err)
		assert.Equal(t, "Text", response.Narrative)
		repository.AssertExpectations(t)
	})

	t.Run("Attach Failure Does Not Change Returned Text", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		generator.On("GenerateText", mock.Anything, mock.Anything).Return("Texto generado", nil)
		repository.On("AttachNarrative", mock.Anything, "diag-1", "Texto generado").
			Return(models.AttachOutcome(""), exceptions.ErrPostgresDBUpdateData(errors.New("connection reset")))

		response, err := usecase.GenerateNarrative(context.Background(), consultantSession, fullRequest())

		require.NoError(t, err)
		assert.Equal(t, "Texto generado", response.Narrative)
	})

	t.Run("Missing Diagnostic Row Does Not Change Returned Text", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		generator.On("GenerateText", mock.Anything, mock.Anything).Return("Texto", nil)
		repository.On("AttachNarrative", mock.Anything, "diag-1", "Texto").Return(models.AttachOutcomeMissing, nil)

		response, err := usecase.GenerateNarrative(context.Background(), consultantSession, fullRequest())

		require.NoError(t, err)
		assert.Equal(t, "Texto", response.Narrative)
	})

	t.Run("Generation Failure Maps To Bad Gateway", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		generator.On("IsConfigured").Return(true)
		generator.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

		response, err := usecase.GenerateNarrative(context.Background(), consultantSession, fullRequest())

		assert.Nil(t, response)
		assert.Equal(t, constvars.StatusBadGateway, statusCodeOf(t, err))
		repository.AssertNotCalled(t, "AttachNarrative", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Attach Survives Caller Cancellation", func(t *testing.T) {
		usecase, repository, generator := newTestUsecase()
		ctx, cancel := context.WithCancel(context.Background())
		generator.On("IsConfigured").Return(true)
		generator.On("GenerateText", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { cancel() }).
			Return("Texto", nil)
		var attachCtxErr error
		repository.On("AttachNarrative", mock.Anything, "diag-1", "Texto").
			Run(func(args mock.Arguments) { attachCtxErr = args.Get(0).(context.Context).Err() }).
			Return(models.AttachOutcomeApplied, nil)

		_, err := usecase.GenerateNarrative(ctx, consultantSession, fullRequest())

		require.NoError(t, err)
		assert.NoError(t, attachCtxErr)
	})
}

func TestBuildNarrativePrompt(t *testing.T) {
	prompt := BuildNarrativePrompt(scoring.Scores{Credibilidad: 3.3, CapacidadComercial: 2.7, Posicionamiento: 4.0, Operacion: 1.7})

	assert.Contains(t, prompt, "Crooly Traction Method")
	assert.Contains(t, prompt, "servicios mineros en Chile")
	assert.Contains(t, prompt, "Credibilidad documentada: 3.3")
	assert.Contains(t, prompt, "Capacidad Comercial: 2.7")
	assert.Contains(t, prompt, "Posicionamiento: 4.0")
	assert.Contains(t, prompt, "Operación y estructura: 1.7")
	assert.Contains(t, prompt, "Promedio general: 2.9")
	assert.Contains(t, prompt, "Máximo 200 palabras")
}
