package models

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         string
	CompanyID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

func (u *User) CompanyIDValue() string {
	if u.CompanyID == nil {
		return ""
	}
	return *u.CompanyID
}
