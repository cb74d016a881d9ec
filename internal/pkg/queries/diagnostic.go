package queries

const (
	InsertDiagnosticQuery = `
		INSERT INTO diagnostics (
			company_id, score_credibilidad, score_capacidad_comercial,
			score_posicionamiento, score_operacion, answers, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	AttachDiagnosticNarrativeQuery = `
		UPDATE diagnostics
		SET narrative = $1
		WHERE id = $2
	`

	FindLatestDiagnosticByCompanyIDQuery = `
		SELECT id, company_id, score_credibilidad, score_capacidad_comercial,
			score_posicionamiento, score_operacion, answers, narrative, created_at
		FROM diagnostics
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
)
