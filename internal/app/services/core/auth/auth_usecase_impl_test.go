package auth

import (
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpsertClient(ctx context.Context, email, companyID string) (*models.User, error) {
	args := m.Called(ctx, email, companyID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) GetDel(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "test-secret"

func newTestUsecase() (*authUsecase, *MockUserRepository, *MockRedisRepository, *MockSessionService) {
	userRepository := new(MockUserRepository)
	redisRepository := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}
	return newAuthUsecase(userRepository, redisRepository, sessionService, internalConfig, zap.NewNop()), userRepository, redisRepository, sessionService
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func userWithPassword(t *testing.T, role, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		ID:           "user-1",
		Email:        "ana@empresa.cl",
		PasswordHash: &hash,
		Role:         role,
	}
	if role == constvars.CroolyRoleClient {
		companyID := "company-1"
		user.CompanyID = &companyID
	}
	return user
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("consultant gets a token for the session and the dashboard redirect", func(t *testing.T) {
		uc, userRepository, _, sessionService := newTestUsecase()
		user := userWithPassword(t, constvars.CroolyRoleConsultant, "secreto1")
		userRepository.On("FindByEmail", ctx, "ana@empresa.cl").Return(user, nil)
		sessionService.On("CreateSession", ctx, user).Return(&models.Session{SessionID: "session-1", Role: user.Role}, nil)

		response, err := uc.Login(ctx, &requests.Login{Email: "ana@empresa.cl", Password: "secreto1"})

		require.NoError(t, err)
		assert.Equal(t, constvars.RedirectPathConsultant, response.RedirectTo)
		assert.Equal(t, constvars.CroolyRoleConsultant, response.Role)
		sessionID, err := utils.ParseJWT(response.Token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("client is sent to the portal with its company", func(t *testing.T) {
		uc, userRepository, _, sessionService := newTestUsecase()
		user := userWithPassword(t, constvars.CroolyRoleClient, "secreto1")
		userRepository.On("FindByEmail", ctx, "ana@empresa.cl").Return(user, nil)
		sessionService.On("CreateSession", ctx, user).Return(&models.Session{SessionID: "session-2", Role: user.Role, CompanyID: "company-1"}, nil)

		response, err := uc.Login(ctx, &requests.Login{Email: "ana@empresa.cl", Password: "secreto1"})

		require.NoError(t, err)
		assert.Equal(t, constvars.RedirectPathClient, response.RedirectTo)
		assert.Equal(t, "company-1", response.CompanyID)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		uc, userRepository, _, sessionService := newTestUsecase()
		userRepository.On("FindByEmail", ctx, "nadie@empresa.cl").Return(nil, nil)

		_, err := uc.Login(ctx, &requests.Login{Email: "nadie@empresa.cl", Password: "secreto1"})

		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
		sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		uc, userRepository, _, sessionService := newTestUsecase()
		user := userWithPassword(t, constvars.CroolyRoleConsultant, "secreto1")
		userRepository.On("FindByEmail", ctx, "ana@empresa.cl").Return(user, nil)

		_, err := uc.Login(ctx, &requests.Login{Email: "ana@empresa.cl", Password: "otra-clave"})

		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
		sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("invited user without a password cannot log in", func(t *testing.T) {
		uc, userRepository, _, _ := newTestUsecase()
		userRepository.On("FindByEmail", ctx, "ana@empresa.cl").Return(&models.User{ID: "user-1", Role: constvars.CroolyRoleClient}, nil)

		_, err := uc.Login(ctx, &requests.Login{Email: "ana@empresa.cl", Password: "secreto1"})

		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the redis session", func(t *testing.T) {
		uc, _, _, sessionService := newTestUsecase()
		sessionService.On("DeleteSession", ctx, "session-1").Return(nil)

		err := uc.Logout(ctx, &models.Session{SessionID: "session-1"})

		require.NoError(t, err)
		sessionService.AssertExpectations(t)
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()

		err := uc.Logout(ctx, nil)

		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		uc, _, _, sessionService := newTestUsecase()
		sessionService.On("DeleteSession", ctx, "session-1").Return(exceptions.ErrRedisDelete(errors.New("down")))

		err := uc.Logout(ctx, &models.Session{SessionID: "session-1"})

		assert.Error(t, err)
	})
}

func TestAuthUsecase_Me(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	response, err := uc.Me(context.Background(), &models.Session{
		UserID:    "user-1",
		Email:     "ana@empresa.cl",
		Role:      constvars.CroolyRoleClient,
		CompanyID: "company-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", response.UserID)
	assert.Equal(t, "company-1", response.CompanyID)
}

func TestAuthUsecase_SetupPassword(t *testing.T) {
	ctx := context.Background()
	request := &requests.SetupPassword{Token: "token-1", Password: "secreto1", ConfirmPassword: "secreto1"}

	t.Run("consumes the token, stores the hash and logs the client in", func(t *testing.T) {
		uc, userRepository, redisRepository, sessionService := newTestUsecase()
		companyID := "company-1"
		user := &models.User{ID: "user-7", Email: "ana@empresa.cl", Role: constvars.CroolyRoleClient, CompanyID: &companyID}

		redisRepository.On("GetDel", ctx, constvars.RedisKeyInvitationPrefix+"token-1").
			Return(`{"user_id":"user-7","email":"ana@empresa.cl","company_id":"company-1"}`, nil)
		userRepository.On("UpdatePassword", ctx, "user-7", mock.MatchedBy(func(hash string) bool {
			return utils.CheckPasswordHash("secreto1", hash)
		})).Return(nil)
		userRepository.On("FindByID", ctx, "user-7").Return(user, nil)
		sessionService.On("CreateSession", ctx, user).Return(&models.Session{SessionID: "session-7", CompanyID: companyID}, nil)

		response, err := uc.SetupPassword(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, constvars.RedirectPathClient, response.RedirectTo)
		assert.Equal(t, "company-1", response.CompanyID)
		userRepository.AssertExpectations(t)
	})

	t.Run("used or expired token is gone", func(t *testing.T) {
		uc, userRepository, redisRepository, _ := newTestUsecase()
		redisRepository.On("GetDel", ctx, constvars.RedisKeyInvitationPrefix+"token-1").Return("", nil)

		_, err := uc.SetupPassword(ctx, request)

		assert.Equal(t, constvars.StatusGone, statusCodeOf(t, err))
		userRepository.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("corrupt invitation payload is rejected", func(t *testing.T) {
		uc, _, redisRepository, _ := newTestUsecase()
		redisRepository.On("GetDel", ctx, constvars.RedisKeyInvitationPrefix+"token-1").Return("not-json", nil)

		_, err := uc.SetupPassword(ctx, request)

		assert.Error(t, err)
	})
}
