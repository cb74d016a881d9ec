package responses

import "time"

type KPI struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	WeekDate         string    `json:"week_date"`
	ActiveContacts   *int      `json:"active_contacts"`
	MonitoredTenders *int      `json:"monitored_tenders"`
	ProposalsSent    *int      `json:"proposals_sent"`
	PipelineValue    *int64    `json:"pipeline_value"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}
