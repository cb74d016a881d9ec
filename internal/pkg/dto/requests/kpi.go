package requests

type CreateKPI struct {
	CompanyID        string  `json:"-"`
	WeekDate         string  `json:"week_date" validate:"required,datetime=2006-01-02"`
	ActiveContacts   *int    `json:"active_contacts" validate:"omitempty,gte=0"`
	MonitoredTenders *int    `json:"monitored_tenders" validate:"omitempty,gte=0"`
	ProposalsSent    *int    `json:"proposals_sent" validate:"omitempty,gte=0"`
	PipelineValue    *int64  `json:"pipeline_value" validate:"omitempty,gte=0"`
	Notes            *string `json:"notes"`
}
