package controllers

import (
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DiagnosticController struct {
	Log               *zap.Logger
	DiagnosticUsecase contracts.DiagnosticUsecase
	InternalConfig    *config.InternalConfig
}

func NewDiagnosticController(logger *zap.Logger, diagnosticUsecase contracts.DiagnosticUsecase, internalConfig *config.InternalConfig) *DiagnosticController {
	return &DiagnosticController{
		Log:               logger,
		DiagnosticUsecase: diagnosticUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *DiagnosticController) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	result := ctrl.DiagnosticUsecase.GetQuestionnaire(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSuccessMessage, result)
}

// SubmitDiagnostic scores and stores the answers. Generation runs inline when requested,
// so the deadline is the narrative one rather than the default store timeout.
func (ctrl *DiagnosticController) SubmitDiagnostic(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	request := new(requests.SubmitDiagnostic)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CompanyID = companyID

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosticUsecase.SubmitDiagnostic(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitDiagnosticSuccessMessage, result)
}

func (ctrl *DiagnosticController) FindLatest(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosticUsecase.FindLatest(ctx, session, companyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLatestDiagnosticSuccessMessage, result)
}

// GenerateNarrative answers with a bare {"narrative"} or {"error"} body.
func (ctrl *DiagnosticController) GenerateNarrative(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.BuildNarrativeErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.GenerateNarrative)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildNarrativeErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.narrativeTimeout())
	defer cancel()

	result, err := ctrl.DiagnosticUsecase.GenerateNarrative(ctx, session, request)
	if err != nil {
		utils.BuildNarrativeErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *DiagnosticController) narrativeTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.NarrativeRequestTimeoutInSeconds) * time.Second
}
