package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"

	LoggingUserIDKey        = "user_id"
	LoggingEmailKey         = "email"
	LoggingRoleKey          = "role"
	LoggingCompanyIDKey     = "company_id"
	LoggingDiagnosticIDKey  = "diagnostic_id"
	LoggingRoadmapItemIDKey = "roadmap_item_id"
	LoggingTaskIDKey        = "task_id"
	LoggingSessionNoteIDKey = "session_note_id"
	LoggingKPIIDKey         = "kpi_id"
	LoggingPlaybookIDKey    = "playbook_id"
	LoggingStatusKey        = "status"
	LoggingOverallScoreKey  = "overall_score"
	LoggingAttachOutcomeKey = "attach_outcome"
	LoggingModelKey         = "model"
	LoggingQueueKey         = "queue"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
