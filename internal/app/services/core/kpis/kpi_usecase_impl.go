package kpis

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

var errKPINotFound = errors.New("kpi not found")

type kpiUsecase struct {
	KPIRepository contracts.KPIRepository
	Log           *zap.Logger
}

var (
	kpiUsecaseInstance contracts.KPIUsecase
	onceKPIUsecase     sync.Once
)

func NewKPIUsecase(kpiRepository contracts.KPIRepository, logger *zap.Logger) contracts.KPIUsecase {
	onceKPIUsecase.Do(func() {
		kpiUsecaseInstance = &kpiUsecase{
			KPIRepository: kpiRepository,
			Log:           logger,
		}
	})
	return kpiUsecaseInstance
}

func (uc *kpiUsecase) FindByCompanyID(ctx context.Context, session *models.Session, companyID string) ([]responses.KPI, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kpiUsecase.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	if err := utils.AuthorizeCompanyAccess(session, companyID); err != nil {
		return nil, err
	}

	kpis, err := uc.KPIRepository.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.KPI, 0, len(kpis))
	for i := range kpis {
		response = append(response, utils.ConvertKPIToResponse(&kpis[i]))
	}
	return response, nil
}

func (uc *kpiUsecase) CreateKPI(ctx context.Context, session *models.Session, request *requests.CreateKPI) (*responses.KPI, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kpiUsecase.CreateKPI called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	weekDate, err := utils.ParseDate(request.WeekDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	kpi, err := uc.KPIRepository.Create(ctx, &models.KPI{
		CompanyID:        request.CompanyID,
		WeekDate:         weekDate,
		ActiveContacts:   request.ActiveContacts,
		MonitoredTenders: request.MonitoredTenders,
		ProposalsSent:    request.ProposalsSent,
		PipelineValue:    request.PipelineValue,
		Notes:            request.Notes,
	})
	if err != nil {
		return nil, err
	}

	response := utils.ConvertKPIToResponse(kpi)
	uc.Log.Info("kpiUsecase.CreateKPI succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKPIIDKey, kpi.ID),
	)
	return &response, nil
}

func (uc *kpiUsecase) DeleteKPI(ctx context.Context, session *models.Session, kpiID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kpiUsecase.DeleteKPI called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKPIIDKey, kpiID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return err
	}

	deleted, err := uc.KPIRepository.Delete(ctx, kpiID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNotFound(errKPINotFound, "kpi")
	}
	return nil
}
