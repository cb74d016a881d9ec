package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type KPIRepository interface {
	Create(ctx context.Context, kpi *models.KPI) (*models.KPI, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]models.KPI, error)
	Delete(ctx context.Context, kpiID string) (bool, error)
}

type KPIUsecase interface {
	FindByCompanyID(ctx context.Context, session *models.Session, companyID string) ([]responses.KPI, error)
	CreateKPI(ctx context.Context, session *models.Session, request *requests.CreateKPI) (*responses.KPI, error)
	DeleteKPI(ctx context.Context, session *models.Session, kpiID string) error
}
