package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
)

type SessionNoteRepository interface {
	Create(ctx context.Context, note *models.SessionNote) (*models.SessionNote, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]models.SessionNote, error)
	FindByID(ctx context.Context, noteID string) (*models.SessionNote, error)
	Update(ctx context.Context, note *models.SessionNote) error
	Delete(ctx context.Context, noteID string) error
}

type SessionNoteUsecase interface {
	FindByCompanyID(ctx context.Context, session *models.Session, companyID string) ([]responses.SessionNote, error)
	CreateSessionNote(ctx context.Context, session *models.Session, request *requests.CreateSessionNote) (*responses.SessionNote, error)
	UpdateSessionNote(ctx context.Context, session *models.Session, request *requests.UpdateSessionNote) (*responses.SessionNote, error)
	UpdateSessionNoteNotes(ctx context.Context, session *models.Session, request *requests.UpdateSessionNoteNotes) (*responses.SessionNote, error)
	DeleteSessionNote(ctx context.Context, session *models.Session, noteID string) error
}
