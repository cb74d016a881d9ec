package controllers

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PortalController struct {
	Log           *zap.Logger
	PortalUsecase contracts.PortalUsecase
}

func NewPortalController(logger *zap.Logger, portalUsecase contracts.PortalUsecase) *PortalController {
	return &PortalController{
		Log:           logger,
		PortalUsecase: portalUsecase,
	}
}

func (ctrl *PortalController) GetOverview(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PortalUsecase.GetOverview(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPortalOverviewSuccessMessage, result)
}

func (ctrl *PortalController) GetDiagnostic(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PortalUsecase.GetDiagnostic(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPortalDiagnosticSuccessMessage, result)
}
