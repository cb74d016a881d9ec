package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosticRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosticController *controllers.DiagnosticController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/diagnostics/questionnaire", diagnosticController.GetQuestionnaire)
	authorized.Post("/companies/{company_id}/diagnostics", diagnosticController.SubmitDiagnostic)
	authorized.Get("/companies/{company_id}/diagnostics/latest", diagnosticController.FindLatest)
	authorized.Post("/narratives", diagnosticController.GenerateNarrative)
}
