package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccessMessage         = "successfully login"
	LogoutSuccessMessage        = "successfully logout"
	SetupPasswordSuccessMessage = "password successfully set"
	GetProfileSuccessMessage    = "get profile successfully"

	// Company messages
	CreateCompanySuccessMessage = "company created successfully"
	GetCompaniesSuccessMessage  = "get companies successfully"
	GetCompanySuccessMessage    = "get company successfully"

	// Diagnostic messages
	SubmitDiagnosticSuccessMessage    = "diagnostic saved successfully"
	GetLatestDiagnosticSuccessMessage = "get latest diagnostic successfully"
	GetQuestionnaireSuccessMessage    = "get diagnostic questionnaire successfully"

	// Roadmap messages
	GetRoadmapSuccessMessage            = "get roadmap successfully"
	CreateRoadmapItemSuccessMessage     = "roadmap item created successfully"
	UpdateRoadmapItemSuccessMessage     = "roadmap item status updated successfully"
	DeleteRoadmapItemSuccessMessage     = "roadmap item deleted successfully"
	CreateTaskSuccessMessage            = "task created successfully"
	UpdateTaskStatusSuccessMessage      = "task status updated successfully"
	UpdateTaskDescriptionSuccessMessage = "task description updated successfully"
	DeleteTaskSuccessMessage            = "task deleted successfully"

	// Session note messages
	GetSessionNotesSuccessMessage   = "get session notes successfully"
	CreateSessionNoteSuccessMessage = "session note created successfully"
	UpdateSessionNoteSuccessMessage = "session note updated successfully"
	DeleteSessionNoteSuccessMessage = "session note deleted successfully"

	// KPI messages
	GetKPIsSuccessMessage   = "get kpis successfully"
	CreateKPISuccessMessage = "kpi created successfully"
	DeleteKPISuccessMessage = "kpi deleted successfully"

	// Playbook messages
	GetPlaybooksSuccessMessage   = "get playbooks successfully"
	CreatePlaybookSuccessMessage = "playbook created successfully"
	UpdatePlaybookSuccessMessage = "playbook updated successfully"
	DeletePlaybookSuccessMessage = "playbook deleted successfully"

	// Invitation messages
	InvitationSentSuccessMessage        = "invitation sent successfully"
	InvitationLinkCreatedSuccessMessage = "invitation link created successfully"

	// Portal messages
	GetPortalOverviewSuccessMessage   = "get portal overview successfully"
	GetPortalDiagnosticSuccessMessage = "get portal diagnostic successfully"
)
