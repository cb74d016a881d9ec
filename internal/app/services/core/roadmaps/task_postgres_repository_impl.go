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
	"time"

	"go.uber.org/zap"
)

type taskPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	taskPostgresRepositoryInstance contracts.TaskRepository
	onceTaskPostgresRepository     sync.Once
)

func NewTaskPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.TaskRepository {
	onceTaskPostgresRepository.Do(func() {
		instance := &taskPostgresRepository{
			DB:  db,
			Log: logger,
		}
		taskPostgresRepositoryInstance = instance
	})
	return taskPostgresRepositoryInstance
}

func (r *taskPostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, task.RoadmapItemID),
	)

	err := r.DB.QueryRowContext(ctx, queries.CreateTaskQuery,
		task.RoadmapItemID,
		task.CompanyID,
		task.Title,
		task.Description,
		task.Status,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		r.Log.Error("taskPostgresRepository.Create error inserting task",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("taskPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, task.ID),
	)
	return task, nil
}

func (r *taskPostgresRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.FindByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindTasksByCompanyIDQuery, companyID)
	if err != nil {
		r.Log.Error("taskPostgresRepository.FindByCompanyID error querying tasks",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return tasks, nil
}

func (r *taskPostgresRepository) FindByID(ctx context.Context, taskID string) (*models.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	var task models.Task
	err := scanTask(r.DB.QueryRowContext(ctx, queries.FindTaskByIDQuery, taskID), &task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("taskPostgresRepository.FindByID error querying task",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &task, nil
}

func (r *taskPostgresRepository) UpdateStatus(ctx context.Context, taskID, status string, completedAt *time.Time) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateTaskStatusQuery, status, completedAt, taskID)
	if err != nil {
		r.Log.Error("taskPostgresRepository.UpdateStatus error updating task",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return utils.RequireRowsAffected(result, "task", exceptions.ErrPostgresDBUpdateData)
}

func (r *taskPostgresRepository) UpdateDescription(ctx context.Context, taskID string, description *string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.UpdateDescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateTaskDescriptionQuery, description, taskID)
	if err != nil {
		r.Log.Error("taskPostgresRepository.UpdateDescription error updating task",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return utils.RequireRowsAffected(result, "task", exceptions.ErrPostgresDBUpdateData)
}

func (r *taskPostgresRepository) Delete(ctx context.Context, taskID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteTaskQuery, taskID)
	if err != nil {
		r.Log.Error("taskPostgresRepository.Delete error deleting task",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return utils.RequireRowsAffected(result, "task", exceptions.ErrPostgresDBDeleteData)
}

func (r *taskPostgresRepository) CountProgressByCompanyID(ctx context.Context, companyID string) (models.TaskProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("taskPostgresRepository.CountProgressByCompanyID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	var progress models.TaskProgress
	err := r.DB.QueryRowContext(ctx, queries.CountTaskProgressByCompanyIDQuery, companyID).
		Scan(&progress.Total, &progress.Completed)
	if err != nil {
		r.Log.Error("taskPostgresRepository.CountProgressByCompanyID error counting tasks",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.TaskProgress{}, exceptions.ErrPostgresDBFindData(err)
	}
	return progress, nil
}

func scanTask(row rowScanner, task *models.Task) error {
	var (
		description sql.NullString
		completedAt sql.NullTime
	)
	err := row.Scan(
		&task.ID,
		&task.RoadmapItemID,
		&task.CompanyID,
		&task.Title,
		&description,
		&task.Status,
		&completedAt,
		&task.CreatedAt,
	)
	if err != nil {
		return err
	}
	if description.Valid {
		task.Description = &description.String
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return nil
}
