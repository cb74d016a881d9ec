package queries

const (
	CreateCompanyQuery = `
		INSERT INTO companies (name, rut, contact_name, contact_email, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	FindAllCompaniesQuery = `
		SELECT id, name, rut, contact_name, contact_email, created_at
		FROM companies
		ORDER BY created_at DESC
	`

	FindCompanyByIDQuery = `
		SELECT id, name, rut, contact_name, contact_email, created_at
		FROM companies
		WHERE id = $1
	`
)
