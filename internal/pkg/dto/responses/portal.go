package responses

type PortalOverview struct {
	Company          Company     `json:"company"`
	Progress         Progress    `json:"progress"`
	LatestDiagnostic *Diagnostic `json:"latest_diagnostic"`
}
