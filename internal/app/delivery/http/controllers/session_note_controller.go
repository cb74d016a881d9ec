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

type SessionNoteController struct {
	Log                *zap.Logger
	SessionNoteUsecase contracts.SessionNoteUsecase
}

func NewSessionNoteController(logger *zap.Logger, sessionNoteUsecase contracts.SessionNoteUsecase) *SessionNoteController {
	return &SessionNoteController{
		Log:                logger,
		SessionNoteUsecase: sessionNoteUsecase,
	}
}

func (ctrl *SessionNoteController) FindByCompanyID(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	ctrl.findByCompanyID(w, r, session, companyID)
}

func (ctrl *SessionNoteController) FindPortalSessionNotes(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctrl.findByCompanyID(w, r, session, session.CompanyID)
}

func (ctrl *SessionNoteController) findByCompanyID(w http.ResponseWriter, r *http.Request, session *models.Session, companyID string) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.FindByCompanyID(ctx, session, companyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionNotesSuccessMessage, result)
}

func (ctrl *SessionNoteController) CreateSessionNote(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	companyID := chi.URLParam(r, constvars.URLParamCompanyID)
	if !urlParamID(ctrl.Log, w, companyID, constvars.URLParamCompanyID) {
		return
	}

	request := new(requests.CreateSessionNote)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CompanyID = companyID
	utils.SanitizeCreateSessionNoteRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.CreateSessionNote(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionNoteSuccessMessage, result)
}

func (ctrl *SessionNoteController) UpdateSessionNote(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamSessionNoteID)
	if !urlParamID(ctrl.Log, w, noteID, constvars.URLParamSessionNoteID) {
		return
	}

	request := new(requests.UpdateSessionNote)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionNoteID = noteID
	utils.SanitizeUpdateSessionNoteRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.UpdateSessionNote(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSessionNoteSuccessMessage, result)
}

// UpdateSessionNoteNotes lets clients edit their own notes field, the summary stays consultant owned.
func (ctrl *SessionNoteController) UpdateSessionNoteNotes(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamSessionNoteID)
	if !urlParamID(ctrl.Log, w, noteID, constvars.URLParamSessionNoteID) {
		return
	}

	request := new(requests.UpdateSessionNoteNotes)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionNoteID = noteID
	utils.SanitizeUpdateSessionNoteNotesRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.UpdateSessionNoteNotes(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSessionNoteSuccessMessage, result)
}

func (ctrl *SessionNoteController) DeleteSessionNote(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamSessionNoteID)
	if !urlParamID(ctrl.Log, w, noteID, constvars.URLParamSessionNoteID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.SessionNoteUsecase.DeleteSessionNote(ctx, session, noteID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSessionNoteSuccessMessage, nil)
}
