package requests

type PlaybookStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreatePlaybook struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" validate:"required,playbook_category"`
	Steps       []PlaybookStep `json:"steps"`
}

type UpdatePlaybook struct {
	PlaybookID  string         `json:"-"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" validate:"required,playbook_category"`
	Steps       []PlaybookStep `json:"steps"`
}

type FindPlaybooks struct {
	Category string `validate:"omitempty,playbook_category"`
}
