package kpis

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/queries"
	"database/sql"
	"errors"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type kpiPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	kpiPostgresRepositoryInstance contracts.KPIRepository
	onceKPIPostgresRepository     sync.Once
)

func NewKPIPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.KPIRepository {
	onceKPIPostgresRepository.Do(func() {
		instance := &kpiPostgresRepository{
			DB:  db,
			Log: logger,
		}
		kpiPostgresRepositoryInstance = instance
	})
	return kpiPostgresRepositoryInstance
}

func (r *kpiPostgresRepository) Create(ctx context.Context, kpi *models.KPI) (*models.KPI, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("kpiPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, kpi.CompanyID),
	)

	err := r.DB.QueryRowContext(ctx, queries.CreateKPIQuery,
		kpi.CompanyID,
		kpi.WeekDate,
		kpi.ActiveContacts,
		kpi.MonitoredTenders,
		kpi.ProposalsSent,
		kpi.PipelineValue,
		kpi.Notes,
	).Scan(&kpi.ID, &kpi.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresForeignKeyViolationCode {
			return nil, exceptions.ErrCompanyNotExist(err)
		}
		r.Log.Error("kpiPostgresRepository.Create error inserting kpi",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("kpiPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKPIIDKey, kpi.ID),
	)
	return kpi, nil
}

func (r *kpiPostgresRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.KPI, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("kpiPostgresRepository.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindKPIsByCompanyIDQuery, companyID)
	if err != nil {
		r.Log.Error("kpiPostgresRepository.FindByCompanyID error querying kpis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	kpis := make([]models.KPI, 0)
	for rows.Next() {
		var (
			kpi              models.KPI
			activeContacts   sql.NullInt64
			monitoredTenders sql.NullInt64
			proposalsSent    sql.NullInt64
			pipelineValue    sql.NullInt64
			notes            sql.NullString
		)
		err := rows.Scan(
			&kpi.ID,
			&kpi.CompanyID,
			&kpi.WeekDate,
			&activeContacts,
			&monitoredTenders,
			&proposalsSent,
			&pipelineValue,
			&notes,
			&kpi.CreatedAt,
		)
		if err != nil {
			r.Log.Error("kpiPostgresRepository.FindByCompanyID error scanning kpi",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		kpi.ActiveContacts = nullableInt(activeContacts)
		kpi.MonitoredTenders = nullableInt(monitoredTenders)
		kpi.ProposalsSent = nullableInt(proposalsSent)
		if pipelineValue.Valid {
			kpi.PipelineValue = &pipelineValue.Int64
		}
		if notes.Valid {
			kpi.Notes = &notes.String
		}
		kpis = append(kpis, kpi)
	}

	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("kpiPostgresRepository.FindByCompanyID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(kpis)),
	)
	return kpis, nil
}

func (r *kpiPostgresRepository) Delete(ctx context.Context, kpiID string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("kpiPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKPIIDKey, kpiID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteKPIQuery, kpiID)
	if err != nil {
		r.Log.Error("kpiPostgresRepository.Delete error deleting kpi",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}
	return rowsAffected > 0, nil
}

func nullableInt(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	converted := int(value.Int64)
	return &converted
}
