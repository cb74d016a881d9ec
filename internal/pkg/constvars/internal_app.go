package constvars

type ContextKey string

const (
	ResourceAuth           = "auth"
	ResourceCompanies      = "companies"
	ResourceDiagnostics    = "diagnostics"
	ResourceNarratives     = "narratives"
	ResourceRoadmapItems   = "roadmap-items"
	ResourceTasks          = "tasks"
	ResourceSessionNotes   = "session-notes"
	ResourceKPIs           = "kpis"
	ResourcePlaybooks      = "playbooks"
	ResourceInvitations    = "invitations"
	ResourcePortal         = "portal"
	ResourceQuestionnaires = "questionnaire"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CROOLY_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	CroolyRoleConsultant = "consultor"
	CroolyRoleClient     = "cliente"
)

const (
	RoadmapStatusPending    = "pending"
	RoadmapStatusInProgress = "in_progress"
	RoadmapStatusCompleted  = "completed"
	RoadmapStatusAtRisk     = "at_risk"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

const (
	PlaybookCategoryDiagnostic     = "Diagnóstico"
	PlaybookCategoryPlanning       = "Planificación"
	PlaybookCategoryImplementation = "Implementación"
	PlaybookCategoryOther          = "Otro"
)

const (
	RedisKeySessionPrefix    = "session:"
	RedisKeyInvitationPrefix = "invitation:"
)

const (
	MongoDBCollectionPlaybooks = "playbooks"
)

const (
	PostgresForeignKeyViolationCode = "23503"
	PostgresUniqueViolationCode     = "23505"
)

const (
	RedirectPathConsultant = "/dashboard"
	RedirectPathClient     = "/cliente"
)
