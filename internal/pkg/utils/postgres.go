package utils

import (
	"crooly-service/internal/pkg/exceptions"
	"database/sql"
)

// RequireRowsAffected turns a write that matched no row into a 404 for resource.
func RequireRowsAffected(result sql.Result, resource string, wrap func(error) *exceptions.CustomError) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrap(err)
	}
	if rowsAffected == 0 {
		return exceptions.ErrNotFound(sql.ErrNoRows, resource)
	}
	return nil
}
