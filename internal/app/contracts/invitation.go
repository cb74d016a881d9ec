package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

type InvitationUsecase interface {
	Invite(ctx context.Context, session *models.Session, request *requests.CreateInvitation) (*responses.Invitation, error)
	CreateInviteLink(ctx context.Context, session *models.Session, request *requests.CreateInvitation) (*responses.InvitationLink, error)
}
