package diagnostics

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/queries"
	"crooly-service/internal/pkg/scoring"
	"database/sql"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type diagnosticPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	diagnosticPostgresRepositoryInstance contracts.DiagnosticRepository
	onceDiagnosticPostgresRepository     sync.Once
)

func NewDiagnosticPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DiagnosticRepository {
	onceDiagnosticPostgresRepository.Do(func() {
		instance := &diagnosticPostgresRepository{
			DB:  db,
			Log: logger,
		}
		diagnosticPostgresRepositoryInstance = instance
	})
	return diagnosticPostgresRepositoryInstance
}

func (r *diagnosticPostgresRepository) Insert(ctx context.Context, companyID string, scores scoring.Scores, answers scoring.AnswerSet) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosticPostgresRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	var diagnosticID string
	err = r.DB.QueryRowContext(ctx, queries.InsertDiagnosticQuery,
		companyID,
		scores.Credibilidad,
		scores.CapacidadComercial,
		scores.Posicionamiento,
		scores.Operacion,
		answersJSON,
	).Scan(&diagnosticID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresForeignKeyViolationCode {
			return "", exceptions.ErrCompanyNotExist(err)
		}
		r.Log.Error("diagnosticPostgresRepository.Insert error inserting diagnostic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("diagnosticPostgresRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
	)
	return diagnosticID, nil
}

func (r *diagnosticPostgresRepository) AttachNarrative(ctx context.Context, diagnosticID, narrative string) (models.AttachOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosticPostgresRepository.AttachNarrative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, diagnosticID),
	)

	result, err := r.DB.ExecContext(ctx, queries.AttachDiagnosticNarrativeQuery, narrative, diagnosticID)
	if err != nil {
		r.Log.Error("diagnosticPostgresRepository.AttachNarrative error updating diagnostic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBUpdateData(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", exceptions.ErrPostgresDBUpdateData(err)
	}

	outcome := models.AttachOutcomeApplied
	if rowsAffected == 0 {
		outcome = models.AttachOutcomeMissing
	}

	r.Log.Info("diagnosticPostgresRepository.AttachNarrative succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachOutcomeKey, string(outcome)),
	)
	return outcome, nil
}

func (r *diagnosticPostgresRepository) FindLatestByCompanyID(ctx context.Context, companyID string) (*models.Diagnostic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosticPostgresRepository.FindLatestByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	var (
		diagnostic  models.Diagnostic
		answersJSON []byte
		narrative   sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, queries.FindLatestDiagnosticByCompanyIDQuery, companyID).Scan(
		&diagnostic.ID,
		&diagnostic.CompanyID,
		&diagnostic.Credibilidad,
		&diagnostic.CapacidadComercial,
		&diagnostic.Posicionamiento,
		&diagnostic.Operacion,
		&answersJSON,
		&narrative,
		&diagnostic.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Info("diagnosticPostgresRepository.FindLatestByCompanyID no diagnostic found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("diagnosticPostgresRepository.FindLatestByCompanyID error querying diagnostic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if err := json.Unmarshal(answersJSON, &diagnostic.Answers); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if narrative.Valid {
		diagnostic.Narrative = &narrative.String
	}

	r.Log.Info("diagnosticPostgresRepository.FindLatestByCompanyID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiagnosticIDKey, diagnostic.ID),
	)
	return &diagnostic, nil
}
