package utils

import (
	"crooly-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateInvitationRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreateInvitation{
			Email:     "  CLIENTE@MINERA.CL  ",
			CompanyID: " 0b3c1f7e-8a43-4c5e-9d7a-0f4b9e2a1c11 ",
		}

		SanitizeCreateInvitationRequest(request)

		assert.Equal(t, "cliente@minera.cl", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "0b3c1f7e-8a43-4c5e-9d7a-0f4b9e2a1c11", request.CompanyID, "company id should be trimmed")
	})
}

func TestSanitizeCreateCompanyRequest(t *testing.T) {
	t.Run("Optional Fields Become Nil When Blank", func(t *testing.T) {
		blank := "   "
		request := &requests.CreateCompany{
			Name:         "  Servicios Andinos SpA ",
			RUT:          &blank,
			ContactEmail: " Gerencia@Andinos.CL",
		}

		SanitizeCreateCompanyRequest(request)

		assert.Equal(t, "Servicios Andinos SpA", request.Name)
		assert.Equal(t, "gerencia@andinos.cl", request.ContactEmail)
		assert.Nil(t, request.RUT, "blank rut should be dropped")
		assert.Nil(t, request.ContactName, "missing contact name should stay nil")
	})

	t.Run("Optional Fields Are Trimmed", func(t *testing.T) {
		rut := " 76.123.456-7 "
		contactName := " Ana Pérez "
		request := &requests.CreateCompany{
			Name:         "Minera Norte",
			RUT:          &rut,
			ContactName:  &contactName,
			ContactEmail: "ana@norte.cl",
		}

		SanitizeCreateCompanyRequest(request)

		assert.Equal(t, "76.123.456-7", *request.RUT)
		assert.Equal(t, "Ana Pérez", *request.ContactName)
	})
}

func TestSanitizeCreatePlaybookRequest(t *testing.T) {
	t.Run("Blank Steps Are Dropped", func(t *testing.T) {
		request := &requests.CreatePlaybook{
			Title:    "  Kickoff  ",
			Category: " Diagnóstico ",
			Steps: []requests.PlaybookStep{
				{Title: " Reunión inicial ", Content: " Agenda "},
				{Title: "   ", Content: ""},
				{Title: "", Content: " Solo contenido "},
			},
		}

		SanitizeCreatePlaybookRequest(request)

		assert.Equal(t, "Kickoff", request.Title)
		assert.Equal(t, "Diagnóstico", request.Category)
		assert.Equal(t, []requests.PlaybookStep{
			{Title: "Reunión inicial", Content: "Agenda"},
			{Title: "", Content: "Solo contenido"},
		}, request.Steps)
	})

	t.Run("Nil Steps Become Empty", func(t *testing.T) {
		request := &requests.CreatePlaybook{Title: "Plan", Category: "Otro"}

		SanitizeCreatePlaybookRequest(request)

		assert.NotNil(t, request.Steps)
		assert.Empty(t, request.Steps)
	})
}

func TestSanitizeUpdateSessionNoteNotesRequest(t *testing.T) {
	notes := "  avanzamos con la propuesta  "
	request := &requests.UpdateSessionNoteNotes{Notes: &notes}

	SanitizeUpdateSessionNoteNotesRequest(request)

	assert.Equal(t, "avanzamos con la propuesta", *request.Notes)
}
