package queries

const (
	FindUserByFieldQueryTemplate = `
		SELECT id, email, password_hash, role, company_id, created_at, updated_at
		FROM users
		WHERE %s = $1
	`

	// A consultant email is never downgraded to cliente.
	UpsertClientUserQuery = `
		INSERT INTO users (email, role, company_id, created_at, updated_at)
		VALUES ($1, 'cliente', $2, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET company_id = EXCLUDED.company_id, updated_at = NOW()
		WHERE users.role = 'cliente'
		RETURNING id, email, password_hash, role, company_id, created_at, updated_at
	`

	UpdateUserPasswordQuery = `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`
)
