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

type CompanyController struct {
	Log            *zap.Logger
	CompanyUsecase contracts.CompanyUsecase
}

func NewCompanyController(logger *zap.Logger, companyUsecase contracts.CompanyUsecase) *CompanyController {
	return &CompanyController{
		Log:            logger,
		CompanyUsecase: companyUsecase,
	}
}

func (ctrl *CompanyController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CompanyUsecase.FindAll(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompaniesSuccessMessage, result)
}

func (ctrl *CompanyController) CreateCompany(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCompany)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateCompanyRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CompanyUsecase.CreateCompany(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCompanySuccessMessage, result)
}

func (ctrl *CompanyController) FindByID(w http.ResponseWriter, r *http.Request) {
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

	result, err := ctrl.CompanyUsecase.FindByID(ctx, session, companyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanySuccessMessage, result)
}
