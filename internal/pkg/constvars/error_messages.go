package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"eqfield":           "must match %s",
	"password":          "must be at least 6 characters long",
	"numeric":           "must be a number",
	"oneof":             "must be one of [%s]",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"uuid":              "must be a valid UUID",
	"datetime":          "must be a date in %s format",
	"role":              "must be either 'consultor' or 'cliente'",
	"playbook_category": "must be one of [Diagnóstico, Planificación, Implementación, Otro]",
	"required_with":     "is required when %s is present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"eqfield":       true,
	"gte":           true,
	"lte":           true,
	"oneof":         true,
	"datetime":      true,
	"required_with": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvitationExpired             = "your invitation already expired or was already used"
	ErrClientCompanyNotFound               = "company not found"
	ErrClientResourceNotFound              = "the requested data was not found"
	ErrClientIncompleteAnswers             = "all 12 diagnostic questions must be answered with a value between 1 and 5"
	ErrClientNarrativeNotConfigured        = "OPENAI_API_KEY no configurada"
	ErrClientNarrativeIncompleteInput      = "Datos incompletos"
	ErrClientNarrativeGenerationFailed     = "no se pudo generar el análisis"
	ErrClientEmailAlreadyConsultant        = "email already belongs to a consultant account"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate             = "cannot parse the requested date"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed  = "URL param %s validation failed"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevServerProcess               = "server failed to process the request"
	ErrDevInvalidCredentials          = "invalid credentials"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevAuthTokenMissing            = "authorization token missing"
	ErrDevAuthTokenInvalid            = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired   = "authorization token invalid or expired"
	ErrDevAuthSigningMethod           = "unexpected signing method"
	ErrDevAuthGenerateToken           = "failed to generate token"
	ErrDevSessionNotFound             = "session not found in redis"
	ErrDevRoleForbidden               = "role %s is not allowed to %s %s"
	ErrDevCompanyScopeViolation       = "session company does not own the requested resource"
	ErrDevInvitationTokenNotFound     = "invitation token not found in redis"
	ErrDevUserNotExists               = "user not exists"
	ErrDevCompanyNotExists            = "company not exists"
	ErrDevResourceNotExists           = "%s not exists"
	ErrDevIncompleteAnswerSet         = "answer set is incomplete or invalid"
	ErrDevTextGenerationNotConfigured = "text generation API key is not configured"
	ErrDevIncompleteNarrativeInput    = "diagnostic_id and all four dimension scores are required"
	ErrDevTextGenerationFailed        = "text generation service call failed"
	ErrDevEmailAlreadyConsultant      = "email is registered with the consultant role"
	ErrDevRBACEnforce                 = "failed to evaluate RBAC policy"
	ErrDevMissingRequestID            = "request id not found in context"
	ErrDevMissingSessionData          = "session data not found in context"
	ErrDevDBFailedToFindData          = "failed to find data in database"
	ErrDevDBFailedToInsertData        = "failed to insert data into database"
	ErrDevDBFailedToUpdateData        = "failed to update data in database"
	ErrDevDBFailedToDeleteData        = "failed to delete data from database"
	ErrDevDBFailedToIterateDataset    = "failed to iterate dataset"
	ErrDevDBFailedToFindDocument      = "failed to find document in database"
	ErrDevDBFailedToInsertDocument    = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument    = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents"
	ErrDevDBStringNotObjectID         = "string is not a valid object id"
	ErrDevRedisGetNoData              = "failed to get data from redis with key %s"
	ErrDevRedisSetData                = "failed to set data to redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue %s"
)
