package responses

import "time"

type SessionNote struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	SessionDate string    `json:"session_date"`
	Notes       *string   `json:"notes"`
	Summary     *string   `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}
