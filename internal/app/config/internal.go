package config

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Session    AppSession
	Invitation AppInvitation
	OpenAI     AppOpenAI
	Mailer     AppMailer
	RabbitMQ   AppRabbitMQ
	MongoDB    AppMongoDB
	RBAC       AppRBAC
}

type App struct {
	Env                              string
	Port                             string
	Version                          string
	Timezone                         string
	EndpointPrefix                   string
	FrontendURL                      string
	CorsAllowedOrigins               []string
	ShutdownTimeoutInSeconds         int
	RequestTimeoutInSeconds          int
	NarrativeRequestTimeoutInSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpiredTimeInHours int
}

type AppInvitation struct {
	ExpiredTimeInHours int
	SetupPath          string
}

// AppOpenAI configures the chat-completion client used for diagnostic narratives.
// An empty APIKey disables generation.
type AppOpenAI struct {
	APIKey               string
	BaseURL              string
	Model                string
	Temperature          float64
	MaxTokens            int
	HTTPTimeoutInSeconds int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppMongoDB struct {
	CroolyDBName string
}

type AppRBAC struct {
	ModelPath  string
	PolicyPath string
}
