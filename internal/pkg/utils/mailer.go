package utils

import (
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"encoding/base64"
	"fmt"
	"strings"
)

func BuildInvitationEmailPayload(fromEmail, toEmail, companyName, setupLink string, expiryTimeInHours int) *requests.EmailPayload {
	to := []string{toEmail}
	htmlCode := fmt.Sprintf(constvars.EmailInvitationHTMLFormat, companyName, setupLink, setupLink, expiryTimeInHours)
	encoded := base64.StdEncoding.EncodeToString([]byte(htmlCode))

	return &requests.EmailPayload{
		Subject:  constvars.EmailInvitationSubjectMessage,
		From:     fromEmail,
		To:       to,
		Cc:       []string{},
		Bcc:      []string{},
		HTMLCode: encoded,
		Encoded:  true,
	}
}

func BuildInvitationSetupLink(frontendURL, setupPath, token string) string {
	return fmt.Sprintf(constvars.InvitationSetupPathFormat, strings.TrimRight(frontendURL, "/"), setupPath, token)
}
