package roadmaps

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

type roadmapItemPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	roadmapItemPostgresRepositoryInstance contracts.RoadmapItemRepository
	onceRoadmapItemPostgresRepository     sync.Once
)

func NewRoadmapItemPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RoadmapItemRepository {
	onceRoadmapItemPostgresRepository.Do(func() {
		instance := &roadmapItemPostgresRepository{
			DB:  db,
			Log: logger,
		}
		roadmapItemPostgresRepositoryInstance = instance
	})
	return roadmapItemPostgresRepositoryInstance
}

func (r *roadmapItemPostgresRepository) Create(ctx context.Context, item *models.RoadmapItem) (*models.RoadmapItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roadmapItemPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, item.CompanyID),
	)

	err := r.DB.QueryRowContext(ctx, queries.CreateRoadmapItemQuery,
		item.CompanyID,
		item.Title,
		item.Description,
		item.Status,
		item.DueDate,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresForeignKeyViolationCode {
			return nil, exceptions.ErrCompanyNotExist(err)
		}
		r.Log.Error("roadmapItemPostgresRepository.Create error inserting roadmap item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("roadmapItemPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, item.ID),
	)
	return item, nil
}

func (r *roadmapItemPostgresRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.RoadmapItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roadmapItemPostgresRepository.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindRoadmapItemsByCompanyIDQuery, companyID)
	if err != nil {
		r.Log.Error("roadmapItemPostgresRepository.FindByCompanyID error querying roadmap items",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	items := make([]models.RoadmapItem, 0)
	for rows.Next() {
		var item models.RoadmapItem
		if err := scanRoadmapItem(rows, &item); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("roadmapItemPostgresRepository.FindByCompanyID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(items)),
	)
	return items, nil
}

func (r *roadmapItemPostgresRepository) FindByID(ctx context.Context, itemID string) (*models.RoadmapItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roadmapItemPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, itemID),
	)

	var item models.RoadmapItem
	err := scanRoadmapItem(r.DB.QueryRowContext(ctx, queries.FindRoadmapItemByIDQuery, itemID), &item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("roadmapItemPostgresRepository.FindByID error querying roadmap item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &item, nil
}

func (r *roadmapItemPostgresRepository) UpdateStatus(ctx context.Context, itemID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roadmapItemPostgresRepository.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, itemID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateRoadmapItemStatusQuery, status, itemID)
	if err != nil {
		r.Log.Error("roadmapItemPostgresRepository.UpdateStatus error updating roadmap item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return utils.RequireRowsAffected(result, "roadmap item", exceptions.ErrPostgresDBUpdateData)
}

func (r *roadmapItemPostgresRepository) Delete(ctx context.Context, itemID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roadmapItemPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, itemID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteRoadmapItemQuery, itemID)
	if err != nil {
		r.Log.Error("roadmapItemPostgresRepository.Delete error deleting roadmap item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return utils.RequireRowsAffected(result, "roadmap item", exceptions.ErrPostgresDBDeleteData)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoadmapItem(row rowScanner, item *models.RoadmapItem) error {
	var (
		description sql.NullString
		dueDate     sql.NullTime
	)
	err := row.Scan(
		&item.ID,
		&item.CompanyID,
		&item.Title,
		&description,
		&item.Status,
		&dueDate,
		&item.CreatedAt,
	)
	if err != nil {
		return err
	}
	if description.Valid {
		item.Description = &description.String
	}
	if dueDate.Valid {
		item.DueDate = &dueDate.Time
	}
	return nil
}
