package responses

import "time"

type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RUT          *string   `json:"rut"`
	ContactName  *string   `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}
