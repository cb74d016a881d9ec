package requests

type CreateCompany struct {
	Name         string  `json:"name" validate:"required"`
	RUT          *string `json:"rut"`
	ContactName  *string `json:"contact_name"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
}
