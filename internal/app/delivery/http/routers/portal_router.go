package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Portal routes resolve the company from the client session, never from the path.
func attachPortalRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	portalController *controllers.PortalController,
	roadmapController *controllers.RoadmapController,
	sessionNoteController *controllers.SessionNoteController,
) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/portal/overview", portalController.GetOverview)
	authorized.Get("/portal/diagnostic", portalController.GetDiagnostic)
	authorized.Get("/portal/roadmap", roadmapController.GetPortalRoadmap)
	authorized.Patch("/portal/tasks/{task_id}/status", roadmapController.CycleTaskStatus)
	authorized.Patch("/portal/tasks/{task_id}/description", roadmapController.UpdateTaskDescription)
	authorized.Get("/portal/session-notes", sessionNoteController.FindPortalSessionNotes)
	authorized.Patch("/portal/session-notes/{note_id}/notes", sessionNoteController.UpdateSessionNoteNotes)
}
