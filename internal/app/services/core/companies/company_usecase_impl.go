package companies

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type companyUsecase struct {
	CompanyRepository contracts.CompanyRepository
	Log               *zap.Logger
}

var (
	companyUsecaseInstance contracts.CompanyUsecase
	onceCompanyUsecase     sync.Once
)

func NewCompanyUsecase(companyRepository contracts.CompanyRepository, logger *zap.Logger) contracts.CompanyUsecase {
	onceCompanyUsecase.Do(func() {
		companyUsecaseInstance = &companyUsecase{
			CompanyRepository: companyRepository,
			Log:               logger,
		}
	})
	return companyUsecaseInstance
}

func (uc *companyUsecase) CreateCompany(ctx context.Context, session *models.Session, request *requests.CreateCompany) (*responses.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companyUsecase.CreateCompany called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	company, err := uc.CompanyRepository.Create(ctx, &models.Company{
		Name:         request.Name,
		RUT:          request.RUT,
		ContactName:  request.ContactName,
		ContactEmail: request.ContactEmail,
	})
	if err != nil {
		return nil, err
	}

	response := utils.ConvertCompanyToResponse(company)
	uc.Log.Info("companyUsecase.CreateCompany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, company.ID),
	)
	return &response, nil
}

func (uc *companyUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companyUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	companies, err := uc.CompanyRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Company, 0, len(companies))
	for i := range companies {
		response = append(response, utils.ConvertCompanyToResponse(&companies[i]))
	}

	uc.Log.Info("companyUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (uc *companyUsecase) FindByID(ctx context.Context, session *models.Session, companyID string) (*responses.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companyUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	if err := utils.AuthorizeCompanyAccess(session, companyID); err != nil {
		return nil, err
	}

	company, err := uc.CompanyRepository.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrCompanyNotExist(errors.New("company " + companyID + " not found"))
	}

	response := utils.ConvertCompanyToResponse(company)
	uc.Log.Info("companyUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}
