package responses

import "time"

type RoadmapItem struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	Tasks       []Task    `json:"tasks"`
}

type Task struct {
	ID            string     `json:"id"`
	RoadmapItemID string     `json:"roadmap_item_id"`
	CompanyID     string     `json:"company_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Progress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

type Roadmap struct {
	Items    []RoadmapItem `json:"items"`
	Progress Progress      `json:"progress"`
}

type RoadmapItemStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
