package models

import "time"

// KPI is one weekly commercial snapshot of a company.
type KPI struct {
	ID               string
	CompanyID        string
	WeekDate         time.Time
	ActiveContacts   *int
	MonitoredTenders *int
	ProposalsSent    *int
	PipelineValue    *int64
	Notes            *string
	CreatedAt        time.Time
}
