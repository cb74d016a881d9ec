package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	FindByID(ctx context.Context, companyID string) (*models.Company, error)
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, session *models.Session, request *requests.CreateCompany) (*responses.Company, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.Company, error)
	FindByID(ctx context.Context, session *models.Session, companyID string) (*responses.Company, error)
}
