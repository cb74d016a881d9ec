package controllers

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type KPIController struct {
	Log        *zap.Logger
	KPIUsecase contracts.KPIUsecase
}

func NewKPIController(logger *zap.Logger, kpiUsecase contracts.KPIUsecase) *KPIController {
	return &KPIController{
		Log:        logger,
		KPIUsecase: kpiUsecase,
	}
}

func (ctrl *KPIController) FindByCompanyID(w http.ResponseWriter, r *http.Request) {
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

	result, err := ctrl.KPIUsecase.FindByCompanyID(ctx, session, companyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetKPIsSuccessMessage, result)
}

func (ctrl *KPIController) CreateKPI(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	request := new(requests.CreateKPI)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CompanyID = companyID
	utils.SanitizeCreateKPIRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.KPIUsecase.CreateKPI(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateKPISuccessMessage, result)
}

func (ctrl *KPIController) DeleteKPI(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	kpiID := chi.URLParam(r, constvars.URLParamKPIID)
	if !urlParamID(ctrl.Log, w, kpiID, constvars.URLParamKPIID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.KPIUsecase.DeleteKPI(ctx, session, kpiID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteKPISuccessMessage, nil)
}
