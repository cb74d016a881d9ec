package auth

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	errUnknownEmail     = errors.New("no user registered with this email")
	errWrongPassword    = errors.New("password does not match")
	errPasswordNotSet   = errors.New("user has not completed the password setup")
	errInvitationUnused = errors.New("invitation token not found")
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(userRepository, redisRepository, sessionService, internalConfig, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *authUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Info("authUsecase.Login unknown email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(errUnknownEmail)
	}
	if !user.HasPassword() {
		return nil, exceptions.ErrInvalidEmailOrPassword(errPasswordNotSet)
	}
	if !utils.CheckPasswordHash(request.Password, *user.PasswordHash) {
		uc.Log.Info("authUsecase.Login wrong password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(errWrongPassword)
	}

	response, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session == nil {
		return exceptions.ErrTokenMissing(nil)
	}

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	if session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return &responses.Me{
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		CompanyID: session.CompanyID,
	}, nil
}

func (uc *authUsecase) SetupPassword(ctx context.Context, request *requests.SetupPassword) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SetupPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Consumed before anything else so a token can never be replayed.
	invitationData, err := uc.RedisRepository.GetDel(ctx, constvars.RedisKeyInvitationPrefix+request.Token)
	if err != nil {
		return nil, err
	}
	if invitationData == "" {
		uc.Log.Info("authUsecase.SetupPassword invitation token expired or used",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvitationExpired(errInvitationUnused)
	}

	var invitation models.Invitation
	err = json.Unmarshal([]byte(invitationData), &invitation)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, invitation.UserID, passwordHash)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, invitation.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	response, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.SetupPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

func (uc *authUsecase) startSession(ctx context.Context, user *models.User) (*responses.Login, error) {
	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	redirectTo := constvars.RedirectPathConsultant
	if user.Role == constvars.CroolyRoleClient {
		redirectTo = constvars.RedirectPathClient
	}

	return &responses.Login{
		Token:      token,
		Role:       user.Role,
		CompanyID:  session.CompanyID,
		RedirectTo: redirectTo,
	}, nil
}
