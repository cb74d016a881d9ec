package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPlaybookRoutes(router chi.Router, middlewares *middlewares.Middlewares, playbookController *controllers.PlaybookController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/playbooks", playbookController.FindAll)
	authorized.Post("/playbooks", playbookController.CreatePlaybook)
	authorized.Put("/playbooks/{playbook_id}", playbookController.UpdatePlaybook)
	authorized.Delete("/playbooks/{playbook_id}", playbookController.DeletePlaybook)
}
