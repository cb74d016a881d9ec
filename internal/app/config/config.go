package config

import (
	"crooly-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "crooly"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", "development"),
			Port:                             utils.GetEnvString("APP_PORT", ":8080"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                         utils.GetEnvString("APP_TIMEZONE", "America/Santiago"),
			EndpointPrefix:                   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendURL:                      utils.GetEnvString("APP_FRONTEND_URL", "https://crooly-platform.vercel.app"),
			CorsAllowedOrigins:               utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeoutInSeconds:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:          utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			NarrativeRequestTimeoutInSeconds: utils.GetEnvInt("APP_NARRATIVE_REQUEST_TIMEOUT_IN_SECONDS", 60),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 24),
		},
		Invitation: AppInvitation{
			ExpiredTimeInHours: utils.GetEnvInt("INVITATION_EXPIRED_TIME_IN_HOURS", 72),
			SetupPath:          utils.GetEnvString("INVITATION_SETUP_PATH", "/auth/setup"),
		},
		OpenAI: AppOpenAI{
			APIKey:               utils.GetEnvString("OPENAI_API_KEY", ""),
			BaseURL:              utils.GetEnvString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:                utils.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature:          utils.GetEnvFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:            utils.GetEnvInt("OPENAI_MAX_TOKENS", 400),
			HTTPTimeoutInSeconds: utils.GetEnvInt("OPENAI_HTTP_TIMEOUT_IN_SECONDS", 45),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@crooly.cl"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "crooly_mailer"),
		},
		MongoDB: AppMongoDB{
			CroolyDBName: utils.GetEnvString("MONGODB_CROOLY_DB_NAME", "crooly"),
		},
		RBAC: AppRBAC{
			ModelPath:  utils.GetEnvString("RBAC_MODEL_PATH", "resources/rbac_model.conf"),
			PolicyPath: utils.GetEnvString("RBAC_POLICY_PATH", "resources/rbac_policy.csv"),
		},
	}
}
