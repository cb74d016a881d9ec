package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/responses"
)

type PortalUsecase interface {
	GetOverview(ctx context.Context, session *models.Session) (*responses.PortalOverview, error)
	GetDiagnostic(ctx context.Context, session *models.Session) (*responses.Diagnostic, error)
}
