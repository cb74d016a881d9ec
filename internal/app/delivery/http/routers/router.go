package routers

import (
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"
	"crooly-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	companyController *controllers.CompanyController,
	diagnosticController *controllers.DiagnosticController,
	roadmapController *controllers.RoadmapController,
	sessionNoteController *controllers.SessionNoteController,
	kpiController *controllers.KPIController,
	playbookController *controllers.PlaybookController,
	invitationController *controllers.InvitationController,
	portalController *controllers.PortalController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
			attachCompanyRoutes(r, middlewares, companyController)
			attachDiagnosticRoutes(r, middlewares, diagnosticController)
			attachRoadmapRoutes(r, middlewares, roadmapController)
			attachSessionNoteRoutes(r, middlewares, sessionNoteController)
			attachKPIRoutes(r, middlewares, kpiController)
			attachPlaybookRoutes(r, middlewares, playbookController)
			attachInvitationRoutes(r, middlewares, invitationController)
			attachPortalRoutes(r, middlewares, portalController, roadmapController, sessionNoteController)
		})
	})
}
