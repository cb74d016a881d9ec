package responses

type Invitation struct {
	Email string `json:"email"`
}

type InvitationLink struct {
	Link string `json:"link"`
}
