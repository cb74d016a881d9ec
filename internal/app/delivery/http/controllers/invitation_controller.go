package controllers

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type InvitationController struct {
	Log               *zap.Logger
	InvitationUsecase contracts.InvitationUsecase
}

func NewInvitationController(logger *zap.Logger, invitationUsecase contracts.InvitationUsecase) *InvitationController {
	return &InvitationController{
		Log:               logger,
		InvitationUsecase: invitationUsecase,
	}
}

func (ctrl *InvitationController) bindRequest(w http.ResponseWriter, r *http.Request) (*requests.CreateInvitation, bool) {
	request := new(requests.CreateInvitation)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}
	utils.SanitizeCreateInvitationRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}

func (ctrl *InvitationController) Invite(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request, ok := ctrl.bindRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InvitationUsecase.Invite(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvitationSentSuccessMessage, result)
}

func (ctrl *InvitationController) CreateInviteLink(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request, ok := ctrl.bindRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InvitationUsecase.CreateInviteLink(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvitationLinkCreatedSuccessMessage, result)
}
