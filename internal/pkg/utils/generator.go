package utils

import (
	"crooly-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateInvitationToken returns an opaque single-use token for the password setup link.
func GenerateInvitationToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
