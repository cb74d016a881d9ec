package invitations

import (
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var errCompanyNotFound = errors.New("company not found")

type invitationUsecase struct {
	CompanyRepository contracts.CompanyRepository
	UserRepository    contracts.UserRepository
	RedisRepository   contracts.RedisRepository
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	invitationUsecaseInstance contracts.InvitationUsecase
	onceInvitationUsecase     sync.Once
)

func NewInvitationUsecase(
	companyRepository contracts.CompanyRepository,
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.InvitationUsecase {
	onceInvitationUsecase.Do(func() {
		invitationUsecaseInstance = &invitationUsecase{
			CompanyRepository: companyRepository,
			UserRepository:    userRepository,
			RedisRepository:   redisRepository,
			MailerService:     mailerService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return invitationUsecaseInstance
}

func (uc *invitationUsecase) Invite(ctx context.Context, session *models.Session, request *requests.CreateInvitation) (*responses.Invitation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invitationUsecase.Invite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	company, link, err := uc.prepareInvitation(ctx, session, request)
	if err != nil {
		return nil, err
	}

	emailPayload := utils.BuildInvitationEmailPayload(
		uc.InternalConfig.Mailer.EmailSender,
		request.Email,
		company.Name,
		link,
		uc.InternalConfig.Invitation.ExpiredTimeInHours,
	)
	err = uc.MailerService.SendEmail(ctx, emailPayload)
	if err != nil {
		uc.Log.Error("invitationUsecase.Invite error sending invitation email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("invitationUsecase.Invite succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, company.ID),
	)
	return &responses.Invitation{Email: request.Email}, nil
}

// CreateInviteLink returns the setup link for the consultant to share by hand; no email is sent.
func (uc *invitationUsecase) CreateInviteLink(ctx context.Context, session *models.Session, request *requests.CreateInvitation) (*responses.InvitationLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invitationUsecase.CreateInviteLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	_, link, err := uc.prepareInvitation(ctx, session, request)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("invitationUsecase.CreateInviteLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.InvitationLink{Link: link}, nil
}

func (uc *invitationUsecase) prepareInvitation(ctx context.Context, session *models.Session, request *requests.CreateInvitation) (*models.Company, string, error) {
	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, "", err
	}

	company, err := uc.CompanyRepository.FindByID(ctx, request.CompanyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", exceptions.ErrCompanyNotExist(errCompanyNotFound)
	}

	user, err := uc.UserRepository.UpsertClient(ctx, request.Email, company.ID)
	if err != nil {
		return nil, "", err
	}

	token := utils.GenerateInvitationToken()
	invitation := &models.Invitation{
		UserID:    user.ID,
		Email:     user.Email,
		CompanyID: company.ID,
	}
	ttl := time.Duration(uc.InternalConfig.Invitation.ExpiredTimeInHours) * time.Hour
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyInvitationPrefix+token, invitation, ttl)
	if err != nil {
		return nil, "", err
	}

	link := utils.BuildInvitationSetupLink(uc.InternalConfig.App.FrontendURL, uc.InternalConfig.Invitation.SetupPath, token)
	return company, link, nil
}
