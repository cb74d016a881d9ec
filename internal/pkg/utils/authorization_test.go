package utils

import (
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestAuthorizeCompanyAccess(t *testing.T) {
	consultant := &models.Session{UserID: "u-1", Role: constvars.CroolyRoleConsultant}
	client := &models.Session{UserID: "u-2", Role: constvars.CroolyRoleClient, CompanyID: "company-a"}

	t.Run("Consultant Reaches Any Company", func(t *testing.T) {
		assert.NoError(t, AuthorizeCompanyAccess(consultant, "company-a"))
		assert.NoError(t, AuthorizeCompanyAccess(consultant, "company-b"))
	})

	t.Run("Client Limited To Own Company", func(t *testing.T) {
		assert.NoError(t, AuthorizeCompanyAccess(client, "company-a"))
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, AuthorizeCompanyAccess(client, "company-b")))
	})

	t.Run("Missing Session", func(t *testing.T) {
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, AuthorizeCompanyAccess(nil, "company-a")))
	})
}

func TestAuthorizeConsultant(t *testing.T) {
	assert.NoError(t, AuthorizeConsultant(&models.Session{Role: constvars.CroolyRoleConsultant}))
	assert.Equal(t, constvars.StatusForbidden, statusOf(t, AuthorizeConsultant(&models.Session{Role: constvars.CroolyRoleClient, CompanyID: "company-a"})))
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, AuthorizeConsultant(nil)))
}
