package utils

import (
	"crooly-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("playbook_category", validatePlaybookCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) >= minPasswordLength
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.CroolyRoleConsultant, constvars.CroolyRoleClient:
		return true
	}
	return false
}

func validatePlaybookCategory(fl validator.FieldLevel) bool {
	return IsPlaybookCategory(fl.Field().String())
}

func IsPlaybookCategory(category string) bool {
	switch category {
	case constvars.PlaybookCategoryDiagnostic,
		constvars.PlaybookCategoryPlanning,
		constvars.PlaybookCategoryImplementation,
		constvars.PlaybookCategoryOther:
		return true
	}
	return false
}
