package utils

import (
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/exceptions"
	"errors"
)

var (
	errNoSession           = errors.New("no session in request")
	errNotConsultant       = errors.New("session role is not consultor")
	errOutsideCompanyScope = errors.New("session cannot access company")
)

func AuthorizeConsultant(session *models.Session) error {
	if session == nil {
		return exceptions.ErrTokenMissing(errNoSession)
	}
	if !session.IsConsultant() {
		return exceptions.ErrForbiddenRole(errNotConsultant, session.Role, "call", "consultant operations")
	}
	return nil
}

func AuthorizeCompanyAccess(session *models.Session, companyID string) error {
	if session == nil {
		return exceptions.ErrTokenMissing(errNoSession)
	}
	if !session.CanAccessCompany(companyID) {
		return exceptions.ErrCompanyScopeViolation(errOutsideCompanyScope)
	}
	return nil
}
