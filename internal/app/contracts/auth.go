package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
	SetupPassword(ctx context.Context, request *requests.SetupPassword) (*responses.Login, error)
}
