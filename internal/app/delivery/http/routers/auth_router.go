package routers

import (
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/auth/login", authController.Login)
	router.Post("/auth/setup", authController.SetupPassword)

	authorized := router.With(middlewares.Authenticate, middlewares.Authorize)
	authorized.Post("/auth/logout", authController.Logout)
	authorized.Get("/auth/me", authController.Me)
}
