package queries

const (
	CreateKPIQuery = `
		INSERT INTO kpis (
			company_id, week_date, active_contacts, monitored_tenders,
			proposals_sent, pipeline_value, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	FindKPIsByCompanyIDQuery = `
		SELECT id, company_id, week_date, active_contacts, monitored_tenders,
			proposals_sent, pipeline_value, notes, created_at
		FROM kpis
		WHERE company_id = $1
		ORDER BY week_date ASC
	`

	DeleteKPIQuery = `
		DELETE FROM kpis
		WHERE id = $1
	`
)
