package requests

type CreateInvitation struct {
	Email     string `json:"email" validate:"required,email"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}
