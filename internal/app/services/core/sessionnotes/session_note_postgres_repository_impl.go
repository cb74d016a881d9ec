package sessionnotes

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/queries"
	"crooly-service/internal/pkg/utils"
	"database/sql"
	"errors"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type sessionNotePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	sessionNotePostgresRepositoryInstance contracts.SessionNoteRepository
	onceSessionNotePostgresRepository     sync.Once
)

func NewSessionNotePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SessionNoteRepository {
	onceSessionNotePostgresRepository.Do(func() {
		instance := &sessionNotePostgresRepository{
			DB:  db,
			Log: logger,
		}
		sessionNotePostgresRepositoryInstance = instance
	})
	return sessionNotePostgresRepositoryInstance
}

func (r *sessionNotePostgresRepository) Create(ctx context.Context, note *models.SessionNote) (*models.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionNotePostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, note.CompanyID),
	)

	err := r.DB.QueryRowContext(ctx, queries.CreateSessionNoteQuery,
		note.CompanyID,
		note.SessionDate,
		note.Notes,
		note.Summary,
	).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresForeignKeyViolationCode {
			return nil, exceptions.ErrCompanyNotExist(err)
		}
		r.Log.Error("sessionNotePostgresRepository.Create error inserting session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("sessionNotePostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, note.ID),
	)
	return note, nil
}

func (r *sessionNotePostgresRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionNotePostgresRepository.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindSessionNotesByCompanyIDQuery, companyID)
	if err != nil {
		r.Log.Error("sessionNotePostgresRepository.FindByCompanyID error querying session notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	notes := make([]models.SessionNote, 0)
	for rows.Next() {
		var note models.SessionNote
		if err := scanSessionNote(rows, &note); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("sessionNotePostgresRepository.FindByCompanyID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(notes)),
	)
	return notes, nil
}

func (r *sessionNotePostgresRepository) FindByID(ctx context.Context, noteID string) (*models.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionNotePostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, noteID),
	)

	var note models.SessionNote
	err := scanSessionNote(r.DB.QueryRowContext(ctx, queries.FindSessionNoteByIDQuery, noteID), &note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("sessionNotePostgresRepository.FindByID error querying session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &note, nil
}

func (r *sessionNotePostgresRepository) Update(ctx context.Context, note *models.SessionNote) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionNotePostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, note.ID),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateSessionNoteQuery, note.Notes, note.Summary, note.ID)
	if err != nil {
		r.Log.Error("sessionNotePostgresRepository.Update error updating session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return utils.RequireRowsAffected(result, "session note", exceptions.ErrPostgresDBUpdateData)
}

func (r *sessionNotePostgresRepository) Delete(ctx context.Context, noteID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionNotePostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, noteID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteSessionNoteQuery, noteID)
	if err != nil {
		r.Log.Error("sessionNotePostgresRepository.Delete error deleting session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return utils.RequireRowsAffected(result, "session note", exceptions.ErrPostgresDBDeleteData)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSessionNote(row rowScanner, note *models.SessionNote) error {
	var notes, summary sql.NullString
	err := row.Scan(
		&note.ID,
		&note.CompanyID,
		&note.SessionDate,
		&notes,
		&summary,
		&note.CreatedAt,
	)
	if err != nil {
		return err
	}
	if notes.Valid {
		note.Notes = &notes.String
	}
	if summary.Valid {
		note.Summary = &summary.String
	}
	return nil
}
