package models

import (
	"crooly-service/internal/pkg/constvars"
	"time"
)

// Session is the authenticated identity stored in redis and carried on every
// request context. Usecases authorize from it, never from package state.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsConsultant() bool {
	return s != nil && s.Role == constvars.CroolyRoleConsultant
}

func (s *Session) IsClient() bool {
	return s != nil && s.Role == constvars.CroolyRoleClient
}

// CanAccessCompany reports whether the session may read or change data of companyID.
// Consultants manage every company; clients only their own.
func (s *Session) CanAccessCompany(companyID string) bool {
	if s == nil || companyID == "" {
		return false
	}
	if s.IsConsultant() {
		return true
	}
	return s.IsClient() && s.CompanyID == companyID
}
