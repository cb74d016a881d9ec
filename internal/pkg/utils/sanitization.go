package utils

import (
	"crooly-service/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// sanitizeOptionalString trims value and turns blank text into nil so it is stored as NULL.
func sanitizeOptionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func sanitizePlaybookSteps(steps []requests.PlaybookStep) []requests.PlaybookStep {
	sanitized := make([]requests.PlaybookStep, 0, len(steps))
	for _, step := range steps {
		step.Title = strings.TrimSpace(step.Title)
		step.Content = strings.TrimSpace(step.Content)
		if step.Title == "" && step.Content == "" {
			continue
		}
		sanitized = append(sanitized, step)
	}
	return sanitized
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeSetupPasswordRequest(input *requests.SetupPassword) {
	input.Token = strings.TrimSpace(input.Token)
}

func SanitizeCreateCompanyRequest(input *requests.CreateCompany) {
	input.Name = strings.TrimSpace(input.Name)
	input.ContactEmail = sanitizeEmail(input.ContactEmail)
	input.RUT = sanitizeOptionalString(input.RUT)
	input.ContactName = sanitizeOptionalString(input.ContactName)
}

func SanitizeCreateInvitationRequest(input *requests.CreateInvitation) {
	input.Email = sanitizeEmail(input.Email)
	input.CompanyID = strings.TrimSpace(input.CompanyID)
}

func SanitizeCreateRoadmapItemRequest(input *requests.CreateRoadmapItem) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = sanitizeOptionalString(input.Description)
	input.DueDate = sanitizeOptionalString(input.DueDate)
}

func SanitizeCreateTaskRequest(input *requests.CreateTask) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = sanitizeOptionalString(input.Description)
}

func SanitizeUpdateTaskDescriptionRequest(input *requests.UpdateTaskDescription) {
	input.Description = sanitizeOptionalString(input.Description)
}

func SanitizeCreateSessionNoteRequest(input *requests.CreateSessionNote) {
	input.SessionDate = strings.TrimSpace(input.SessionDate)
	input.Notes = sanitizeOptionalString(input.Notes)
	input.Summary = sanitizeOptionalString(input.Summary)
}

func SanitizeUpdateSessionNoteRequest(input *requests.UpdateSessionNote) {
	input.Notes = sanitizeOptionalString(input.Notes)
	input.Summary = sanitizeOptionalString(input.Summary)
}

func SanitizeUpdateSessionNoteNotesRequest(input *requests.UpdateSessionNoteNotes) {
	input.Notes = sanitizeOptionalString(input.Notes)
}

func SanitizeCreateKPIRequest(input *requests.CreateKPI) {
	input.WeekDate = strings.TrimSpace(input.WeekDate)
	input.Notes = sanitizeOptionalString(input.Notes)
}

func SanitizeCreatePlaybookRequest(input *requests.CreatePlaybook) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Steps = sanitizePlaybookSteps(input.Steps)
}

func SanitizeUpdatePlaybookRequest(input *requests.UpdatePlaybook) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Steps = sanitizePlaybookSteps(input.Steps)
}
