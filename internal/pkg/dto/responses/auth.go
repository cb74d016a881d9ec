package responses

type Login struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	CompanyID  string `json:"company_id,omitempty"`
	RedirectTo string `json:"redirect_to"`
}

type Me struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}
