package controllers

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RoadmapController struct {
	Log            *zap.Logger
	RoadmapUsecase contracts.RoadmapUsecase
}

func NewRoadmapController(logger *zap.Logger, roadmapUsecase contracts.RoadmapUsecase) *RoadmapController {
	return &RoadmapController{
		Log:            logger,
		RoadmapUsecase: roadmapUsecase,
	}
}

func (ctrl *RoadmapController) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	ctrl.getRoadmap(w, r, session, companyID)
}

// GetPortalRoadmap serves the roadmap of the client's own company.
func (ctrl *RoadmapController) GetPortalRoadmap(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctrl.getRoadmap(w, r, session, session.CompanyID)
}

func (ctrl *RoadmapController) getRoadmap(w http.ResponseWriter, r *http.Request, session *models.Session, companyID string) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.GetRoadmap(ctx, session, companyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRoadmapSuccessMessage, result)
}

func (ctrl *RoadmapController) CreateRoadmapItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	request := new(requests.CreateRoadmapItem)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CompanyID = companyID
	utils.SanitizeCreateRoadmapItemRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.CreateRoadmapItem(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRoadmapItemSuccessMessage, result)
}

func (ctrl *RoadmapController) CycleRoadmapItemStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, constvars.URLParamRoadmapItemID)
	if !urlParamID(ctrl.Log, w, itemID, constvars.URLParamRoadmapItemID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.CycleRoadmapItemStatus(ctx, session, itemID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateRoadmapItemSuccessMessage, result)
}

func (ctrl *RoadmapController) DeleteRoadmapItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, constvars.URLParamRoadmapItemID)
	if !urlParamID(ctrl.Log, w, itemID, constvars.URLParamRoadmapItemID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.RoadmapUsecase.DeleteRoadmapItem(ctx, session, itemID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteRoadmapItemSuccessMessage, nil)
}

func (ctrl *RoadmapController) CreateTask(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, constvars.URLParamRoadmapItemID)
	if !urlParamID(ctrl.Log, w, itemID, constvars.URLParamRoadmapItemID) {
		return
	}

	request := new(requests.CreateTask)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.RoadmapItemID = itemID
	utils.SanitizeCreateTaskRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.CreateTask(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTaskSuccessMessage, result)
}

func (ctrl *RoadmapController) CycleTaskStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, constvars.URLParamTaskID)
	if !urlParamID(ctrl.Log, w, taskID, constvars.URLParamTaskID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.CycleTaskStatus(ctx, session, taskID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTaskStatusSuccessMessage, result)
}

func (ctrl *RoadmapController) UpdateTaskDescription(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, constvars.URLParamTaskID)
	if !urlParamID(ctrl.Log, w, taskID, constvars.URLParamTaskID) {
		return
	}

	request := new(requests.UpdateTaskDescription)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.TaskID = taskID
	utils.SanitizeUpdateTaskDescriptionRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.RoadmapUsecase.UpdateTaskDescription(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTaskDescriptionSuccessMessage, result)
}

func (ctrl *RoadmapController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, constvars.URLParamTaskID)
	if !urlParamID(ctrl.Log, w, taskID, constvars.URLParamTaskID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.RoadmapUsecase.DeleteTask(ctx, session, taskID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTaskSuccessMessage, nil)
}
