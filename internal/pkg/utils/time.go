package utils

import (
	"crooly-service/internal/app/models"
	"time"
)

func ParseDate(value string) (time.Time, error) {
	return time.Parse(models.DateLayout, value)
}

func FormatDate(value time.Time) string {
	return value.Format(models.DateLayout)
}

func FormatOptionalDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := FormatDate(*value)
	return &formatted
}
