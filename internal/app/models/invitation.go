package models

// Invitation is the single-use payload stored behind an invitation token.
type Invitation struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
}
