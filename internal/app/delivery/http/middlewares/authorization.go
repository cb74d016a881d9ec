package middlewares

import (
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var errPolicyDenied = errors.New("no casbin policy allows this request")

// Authorize checks the session role against the casbin policy for the request
// method and the path without its api prefix. Must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
			return
		}

		path := utils.NormalizePath(r.URL.Path, m.InternalConfig.App.EndpointPrefix, m.InternalConfig.App.Version)
		allowed, err := m.Enforcer.Enforce(session.Role, r.Method, path)
		if err != nil {
			m.Log.Error("Middlewares.Authorize error enforcing policy",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRBACEnforce(err))
			return
		}
		if !allowed {
			m.Log.Warn("Middlewares.Authorize request denied",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoleKey, session.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbiddenRole(errPolicyDenied, session.Role, r.Method, path))
			return
		}

		next.ServeHTTP(w, r)
	})
}
