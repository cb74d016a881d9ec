package models

import "time"

type SessionNote struct {
	ID          string
	CompanyID   string
	SessionDate time.Time
	Notes       *string
	Summary     *string
	CreatedAt   time.Time
}
