package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRoadmapRoutes(router chi.Router, middlewares *middlewares.Middlewares, roadmapController *controllers.RoadmapController) {
	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Get("/companies/{company_id}/roadmap-items", roadmapController.GetRoadmap)
	authorized.Post("/companies/{company_id}/roadmap-items", roadmapController.CreateRoadmapItem)
	authorized.Patch("/roadmap-items/{item_id}/status", roadmapController.CycleRoadmapItemStatus)
	authorized.Delete("/roadmap-items/{item_id}", roadmapController.DeleteRoadmapItem)
	authorized.Post("/roadmap-items/{item_id}/tasks", roadmapController.CreateTask)
	authorized.Patch("/tasks/{task_id}/status", roadmapController.CycleTaskStatus)
	authorized.Delete("/tasks/{task_id}", roadmapController.DeleteTask)
}
