package queries

const (
	CreateRoadmapItemQuery = `
		INSERT INTO roadmap_items (company_id, title, description, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	FindRoadmapItemsByCompanyIDQuery = `
		SELECT id, company_id, title, description, status, due_date, created_at
		FROM roadmap_items
		WHERE company_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at ASC
	`

	FindRoadmapItemByIDQuery = `
		SELECT id, company_id, title, description, status, due_date, created_at
		FROM roadmap_items
		WHERE id = $1
	`

	UpdateRoadmapItemStatusQuery = `
		UPDATE roadmap_items
		SET status = $1
		WHERE id = $2
	`

	DeleteRoadmapItemQuery = `
		DELETE FROM roadmap_items
		WHERE id = $1
	`
)

const (
	CreateTaskQuery = `
		INSERT INTO tasks (roadmap_item_id, company_id, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	FindTasksByCompanyIDQuery = `
		SELECT id, roadmap_item_id, company_id, title, description, status, completed_at, created_at
		FROM tasks
		WHERE company_id = $1
		ORDER BY created_at ASC
	`

	FindTaskByIDQuery = `
		SELECT id, roadmap_item_id, company_id, title, description, status, completed_at, created_at
		FROM tasks
		WHERE id = $1
	`

	UpdateTaskStatusQuery = `
		UPDATE tasks
		SET status = $1, completed_at = $2
		WHERE id = $3
	`

	UpdateTaskDescriptionQuery = `
		UPDATE tasks
		SET description = $1
		WHERE id = $2
	`

	DeleteTaskQuery = `
		DELETE FROM tasks
		WHERE id = $1
	`

	CountTaskProgressByCompanyIDQuery = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'completed')
		FROM tasks
		WHERE company_id = $1
	`
)
