package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachInvitationRoutes(router chi.Router, middlewares *middlewares.Middlewares, invitationController *controllers.InvitationController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Post("/invitations", invitationController.Invite)
	authorized.Post("/invitations/link", invitationController.CreateInviteLink)
}
