package requests

type CreateRoadmapItem struct {
	CompanyID   string  `json:"-"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateTask struct {
	RoadmapItemID string  `json:"-"`
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
}

type UpdateTaskDescription struct {
	TaskID      string  `json:"-"`
	Description *string `json:"description"`
}
