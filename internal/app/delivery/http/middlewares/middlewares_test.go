package middlewares

import (
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRBACModel = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act && keyMatch2(r.obj, p.obj)
`

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

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix:          "api",
			Version:                 "v1",
			RequestTimeoutInSeconds: 5,
		},
		JWT: config.AppJWT{
			Secret:        "middleware-test-secret",
			ExpTimeInHour: 1,
		},
	}
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(testRBACModel)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = enforcer.AddPolicy(constvars.CroolyRoleConsultant, http.MethodGet, "/companies/:company_id")
	require.NoError(t, err)
	return enforcer
}

func TestRequestIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestIDFromContext(r.Context())
	}))

	t.Run("Generates an id when the client sends none", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAuthenticate(t *testing.T) {
	internalConfig := newTestInternalConfig()
	sessionService := new(MockSessionService)
	m := NewMiddlewares(zap.NewNop(), sessionService, nil, internalConfig)

	var resolved *models.Session
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, _ = utils.GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	token := func(sessionID string) string {
		jwt, err := utils.GenerateSessionJWT(sessionID, internalConfig.JWT.Secret, 1)
		require.NoError(t, err)
		return constvars.AuthorizationBearerPrefix + jwt
	}

	t.Run("Missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		jwt, err := utils.GenerateSessionJWT("s-1", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+jwt)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, "s-1")
	})

	t.Run("Session expired in redis", func(t *testing.T) {
		sessionService.On("GetSessionData", mock.Anything, "gone").
			Return(nil, exceptions.ErrSessionNotFound(errors.New("no session"))).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, token("gone"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid session is put on the context", func(t *testing.T) {
		session := &models.Session{SessionID: "s-2", UserID: "u-1", Role: constvars.CroolyRoleConsultant}
		sessionService.On("GetSessionData", mock.Anything, "s-2").Return(session, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, token("s-2"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, session, resolved)
	})
}

func TestAuthorize(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, newTestEnforcer(t), newTestInternalConfig())

	called := false
	handler := m.Authorize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	withSession := func(r *http.Request, session *models.Session) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session))
	}

	t.Run("No session on the context", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/companies/abc", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("Allowed role and path", func(t *testing.T) {
		called = false
		req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/companies/abc", nil), &models.Session{Role: constvars.CroolyRoleConsultant})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.True(t, called)
	})

	t.Run("Role without policy", func(t *testing.T) {
		called = false
		req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/companies/abc", nil), &models.Session{Role: constvars.CroolyRoleClient})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, called)
	})

	t.Run("Method without policy", func(t *testing.T) {
		called = false
		req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/companies/abc", nil), &models.Session{Role: constvars.CroolyRoleConsultant})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, called)
	})
}
