package requests

type CreateSessionNote struct {
	CompanyID   string  `json:"-"`
	SessionDate string  `json:"session_date" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes"`
	Summary     *string `json:"summary"`
}

type UpdateSessionNote struct {
	SessionNoteID string  `json:"-"`
	Notes         *string `json:"notes"`
	Summary       *string `json:"summary"`
}

type UpdateSessionNoteNotes struct {
	SessionNoteID string  `json:"-"`
	Notes         *string `json:"notes"`
}
