package controllers

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// sessionFromRequest returns the session stored by the Authenticate middleware.
func sessionFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
		return nil, false
	}
	return session, true
}

func urlParamID(log *zap.Logger, w http.ResponseWriter, value, paramName string) bool {
	err := utils.ValidateUrlParamID(value)
	if err != nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(err, paramName))
		return false
	}
	return true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
