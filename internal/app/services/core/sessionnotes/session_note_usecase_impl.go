package sessionnotes

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var errSessionNoteNotFound = errors.New("session note not found")

type sessionNoteUsecase struct {
	SessionNoteRepository contracts.SessionNoteRepository
	Log                   *zap.Logger
}

var (
	sessionNoteUsecaseInstance contracts.SessionNoteUsecase
	onceSessionNoteUsecase     sync.Once
)

func NewSessionNoteUsecase(sessionNoteRepository contracts.SessionNoteRepository, logger *zap.Logger) contracts.SessionNoteUsecase {
	onceSessionNoteUsecase.Do(func() {
		sessionNoteUsecaseInstance = newSessionNoteUsecase(sessionNoteRepository, logger)
	})
	return sessionNoteUsecaseInstance
}

func newSessionNoteUsecase(sessionNoteRepository contracts.SessionNoteRepository, logger *zap.Logger) *sessionNoteUsecase {
	return &sessionNoteUsecase{
		SessionNoteRepository: sessionNoteRepository,
		Log:                   logger,
	}
}

func (uc *sessionNoteUsecase) FindByCompanyID(ctx context.Context, session *models.Session, companyID string) ([]responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	if err := utils.AuthorizeCompanyAccess(session, companyID); err != nil {
		return nil, err
	}

	notes, err := uc.SessionNoteRepository.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.SessionNote, 0, len(notes))
	for i := range notes {
		response = append(response, utils.ConvertSessionNoteToResponse(&notes[i]))
	}

	uc.Log.Info("sessionNoteUsecase.FindByCompanyID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *sessionNoteUsecase) CreateSessionNote(ctx context.Context, session *models.Session, request *requests.CreateSessionNote) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.CreateSessionNote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	sessionDate, err := utils.ParseDate(request.SessionDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	note, err := uc.SessionNoteRepository.Create(ctx, &models.SessionNote{
		CompanyID:   request.CompanyID,
		SessionDate: sessionDate,
		Notes:       request.Notes,
		Summary:     request.Summary,
	})
	if err != nil {
		return nil, err
	}

	response := utils.ConvertSessionNoteToResponse(note)
	uc.Log.Info("sessionNoteUsecase.CreateSessionNote succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, note.ID),
	)
	return &response, nil
}

func (uc *sessionNoteUsecase) UpdateSessionNote(ctx context.Context, session *models.Session, request *requests.UpdateSessionNote) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.UpdateSessionNote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, request.SessionNoteID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	note, err := uc.findSessionNote(ctx, request.SessionNoteID)
	if err != nil {
		return nil, err
	}

	note.Notes = request.Notes
	note.Summary = request.Summary
	err = uc.SessionNoteRepository.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertSessionNoteToResponse(note)
	uc.Log.Info("sessionNoteUsecase.UpdateSessionNote succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

// UpdateSessionNoteNotes changes only the notes field; the summary stays as the consultant wrote it.
func (uc *sessionNoteUsecase) UpdateSessionNoteNotes(ctx context.Context, session *models.Session, request *requests.UpdateSessionNoteNotes) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.UpdateSessionNoteNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, request.SessionNoteID),
	)

	if session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	note, err := uc.findSessionNote(ctx, request.SessionNoteID)
	if err != nil {
		return nil, err
	}
	if err := utils.AuthorizeCompanyAccess(session, note.CompanyID); err != nil {
		uc.Log.Warn("sessionNoteUsecase.UpdateSessionNoteNotes note outside session company",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
		)
		return nil, err
	}

	note.Notes = request.Notes
	err = uc.SessionNoteRepository.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertSessionNoteToResponse(note)
	uc.Log.Info("sessionNoteUsecase.UpdateSessionNoteNotes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *sessionNoteUsecase) DeleteSessionNote(ctx context.Context, session *models.Session, noteID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.DeleteSessionNote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, noteID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return err
	}

	return uc.SessionNoteRepository.Delete(ctx, noteID)
}

func (uc *sessionNoteUsecase) findSessionNote(ctx context.Context, noteID string) (*models.SessionNote, error) {
	note, err := uc.SessionNoteRepository.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNotFound(errSessionNoteNotFound, "session note")
	}
	return note, nil
}
