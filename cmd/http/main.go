package main

import (
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/delivery/http/controllers"
	"crooly-service/internal/app/delivery/http/middlewares"
	"crooly-service/internal/app/delivery/http/routers"
	"crooly-service/internal/app/drivers/database"
	"crooly-service/internal/app/drivers/logger"
	"crooly-service/internal/app/drivers/messaging"
	"crooly-service/internal/app/drivers/rbac"
	"crooly-service/internal/app/services/core/auth"
	"crooly-service/internal/app/services/core/companies"
	"crooly-service/internal/app/services/core/diagnostics"
	"crooly-service/internal/app/services/core/invitations"
	"crooly-service/internal/app/services/core/kpis"
	"crooly-service/internal/app/services/core/playbooks"
	"crooly-service/internal/app/services/core/portal"
	"crooly-service/internal/app/services/core/roadmaps"
	"crooly-service/internal/app/services/core/session"
	"crooly-service/internal/app/services/core/sessionnotes"
	"crooly-service/internal/app/services/core/users"
	"crooly-service/internal/app/services/shared/mailer"
	"crooly-service/internal/app/services/shared/redis"
	"crooly-service/internal/app/services/shared/textgen"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     database.NewPostgresDB(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Enforcer:       rbac.NewCasbinEnforcer(internalConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	textGenerationService := textgen.NewOpenAIService(internalConfig.OpenAI, log)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, log)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, log)
	companyRepository := companies.NewCompanyPostgresRepository(bootstrap.PostgresDB, log)
	diagnosticRepository := diagnostics.NewDiagnosticPostgresRepository(bootstrap.PostgresDB, log)
	roadmapItemRepository := roadmaps.NewRoadmapItemPostgresRepository(bootstrap.PostgresDB, log)
	taskRepository := roadmaps.NewTaskPostgresRepository(bootstrap.PostgresDB, log)
	sessionNoteRepository := sessionnotes.NewSessionNotePostgresRepository(bootstrap.PostgresDB, log)
	kpiRepository := kpis.NewKPIPostgresRepository(bootstrap.PostgresDB, log)
	playbookRepository := playbooks.NewPlaybookMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.CroolyDBName, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, sessionService, internalConfig, log)
	companyUsecase := companies.NewCompanyUsecase(companyRepository, log)
	diagnosticUsecase := diagnostics.NewDiagnosticUsecase(diagnosticRepository, textGenerationService, log)
	roadmapUsecase := roadmaps.NewRoadmapUsecase(roadmapItemRepository, taskRepository, log)
	sessionNoteUsecase := sessionnotes.NewSessionNoteUsecase(sessionNoteRepository, log)
	kpiUsecase := kpis.NewKPIUsecase(kpiRepository, log)
	playbookUsecase := playbooks.NewPlaybookUsecase(playbookRepository, log)
	invitationUsecase := invitations.NewInvitationUsecase(companyRepository, userRepository, redisRepository, mailerService, internalConfig, log)
	portalUsecase := portal.NewPortalUsecase(companyRepository, taskRepository, diagnosticRepository, log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, sessionService, bootstrap.Enforcer, internalConfig)

	// Controllers
	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewCompanyController(log, companyUsecase),
		controllers.NewDiagnosticController(log, diagnosticUsecase, internalConfig),
		controllers.NewRoadmapController(log, roadmapUsecase),
		controllers.NewSessionNoteController(log, sessionNoteUsecase),
		controllers.NewKPIController(log, kpiUsecase),
		controllers.NewPlaybookController(log, playbookUsecase),
		controllers.NewInvitationController(log, invitationUsecase),
		controllers.NewPortalController(log, portalUsecase),
	)

	return nil
}
