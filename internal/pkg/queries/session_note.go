package queries

const (
	CreateSessionNoteQuery = `
		INSERT INTO session_notes (company_id, session_date, notes, summary, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	FindSessionNotesByCompanyIDQuery = `
		SELECT id, company_id, session_date, notes, summary, created_at
		FROM session_notes
		WHERE company_id = $1
		ORDER BY session_date DESC, created_at DESC
	`

	FindSessionNoteByIDQuery = `
		SELECT id, company_id, session_date, notes, summary, created_at
		FROM session_notes
		WHERE id = $1
	`

	UpdateSessionNoteQuery = `
		UPDATE session_notes
		SET notes = $1, summary = $2
		WHERE id = $3
	`

	DeleteSessionNoteQuery = `
		DELETE FROM session_notes
		WHERE id = $1
	`
)
