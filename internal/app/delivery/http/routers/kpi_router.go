package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachKPIRoutes(router chi.Router, middlewares *middlewares.Middlewares, kpiController *controllers.KPIController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/companies/{company_id}/kpis", kpiController.FindByCompanyID)
	authorized.Post("/companies/{company_id}/kpis", kpiController.CreateKPI)
	authorized.Delete("/kpis/{kpi_id}", kpiController.DeleteKPI)
}
