package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type PlaybookRepository interface {
	FindAll(ctx context.Context, category string) ([]models.Playbook, error)
	FindByID(ctx context.Context, playbookID string) (*models.Playbook, error)
	CreatePlaybook(ctx context.Context, playbook *models.Playbook) (string, error)
	UpdatePlaybook(ctx context.Context, playbook *models.Playbook) error
	DeletePlaybook(ctx context.Context, playbookID string) error
}

type PlaybookUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.FindPlaybooks) ([]responses.Playbook, error)
	CreatePlaybook(ctx context.Context, session *models.Session, request *requests.CreatePlaybook) (*responses.Playbook, error)
	UpdatePlaybook(ctx context.Context, session *models.Session, request *requests.UpdatePlaybook) (*responses.Playbook, error)
	DeletePlaybook(ctx context.Context, session *models.Session, playbookID string) error
}
