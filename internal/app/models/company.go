package models

import "time"

type Company struct {
	ID           string
	Name         string
	RUT          *string
	ContactName  *string
	ContactEmail string
	CreatedAt    time.Time
}
