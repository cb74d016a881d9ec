package portal

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	errNotClientSession = errors.New("portal requires a cliente session with a company")
	errCompanyNotFound  = errors.New("session company not found")
)

// portalUsecase serves the read side of the client portal. Every call is scoped
// to the company stored in the session, never to a caller supplied id.
type portalUsecase struct {
	CompanyRepository    contracts.CompanyRepository
	TaskRepository       contracts.TaskRepository
	DiagnosticRepository contracts.DiagnosticRepository
	Log                  *zap.Logger
}

var (
	portalUsecaseInstance contracts.PortalUsecase
	oncePortalUsecase     sync.Once
)

func NewPortalUsecase(
	companyRepository contracts.CompanyRepository,
	taskRepository contracts.TaskRepository,
	diagnosticRepository contracts.DiagnosticRepository,
	logger *zap.Logger,
) contracts.PortalUsecase {
	oncePortalUsecase.Do(func() {
		portalUsecaseInstance = &portalUsecase{
			CompanyRepository:    companyRepository,
			TaskRepository:       taskRepository,
			DiagnosticRepository: diagnosticRepository,
			Log:                  logger,
		}
	})
	return portalUsecaseInstance
}

func (uc *portalUsecase) GetOverview(ctx context.Context, session *models.Session) (*responses.PortalOverview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("portalUsecase.GetOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	companyID, err := clientCompanyID(session)
	if err != nil {
		return nil, err
	}

	company, err := uc.CompanyRepository.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrCompanyNotExist(errCompanyNotFound)
	}

	progress, err := uc.TaskRepository.CountProgressByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	latest, err := uc.findLatestDiagnostic(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := &responses.PortalOverview{
		Company:          utils.ConvertCompanyToResponse(company),
		Progress:         utils.ConvertProgressToResponse(progress),
		LatestDiagnostic: latest,
	}

	uc.Log.Info("portalUsecase.GetOverview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)
	return response, nil
}

func (uc *portalUsecase) GetDiagnostic(ctx context.Context, session *models.Session) (*responses.Diagnostic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("portalUsecase.GetDiagnostic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	companyID, err := clientCompanyID(session)
	if err != nil {
		return nil, err
	}
	return uc.findLatestDiagnostic(ctx, companyID)
}

func (uc *portalUsecase) findLatestDiagnostic(ctx context.Context, companyID string) (*responses.Diagnostic, error) {
	diagnostic, err := uc.DiagnosticRepository.FindLatestByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		return nil, nil
	}
	return utils.ConvertDiagnosticToResponse(diagnostic), nil
}

func clientCompanyID(session *models.Session) (string, error) {
	if session == nil {
		return "", exceptions.ErrTokenMissing(nil)
	}
	if !session.IsClient() || session.CompanyID == "" {
		return "", exceptions.ErrForbiddenRole(errNotClientSession, session.Role, "read", "the client portal")
	}
	return session.CompanyID, nil
}
