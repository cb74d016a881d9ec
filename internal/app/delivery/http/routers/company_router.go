package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCompanyRoutes(router chi.Router, middlewares *middlewares.Middlewares, companyController *controllers.CompanyController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/companies", companyController.FindAll)
	authorized.Post("/companies", companyController.CreateCompany)
	authorized.Get("/companies/{company_id}", companyController.FindByID)
}
