package responses

import "time"

type Playbook struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category"`
	Steps       []PlaybookStep `json:"steps"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PlaybookStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
