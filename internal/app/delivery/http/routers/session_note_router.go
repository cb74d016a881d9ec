package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSessionNoteRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionNoteController *controllers.SessionNoteController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/companies/{company_id}/session-notes", sessionNoteController.FindByCompanyID)
	authorized.Post("/companies/{company_id}/session-notes", sessionNoteController.CreateSessionNote)
	authorized.Put("/session-notes/{note_id}", sessionNoteController.UpdateSessionNote)
	authorized.Delete("/session-notes/{note_id}", sessionNoteController.DeleteSessionNote)
}
