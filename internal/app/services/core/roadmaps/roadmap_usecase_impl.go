package roadmaps

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
	"time"

	"go.uber.org/zap"
)

var (
	errRoadmapItemNotFound = errors.New("roadmap item not found")
	errTaskNotFound        = errors.New("task not found")
)

type roadmapUsecase struct {
	RoadmapItemRepository contracts.RoadmapItemRepository
	TaskRepository        contracts.TaskRepository
	Log                   *zap.Logger
}

var (
	roadmapUsecaseInstance contracts.RoadmapUsecase
	onceRoadmapUsecase     sync.Once
)

func NewRoadmapUsecase(
	roadmapItemRepository contracts.RoadmapItemRepository,
	taskRepository contracts.TaskRepository,
	logger *zap.Logger,
) contracts.RoadmapUsecase {
	onceRoadmapUsecase.Do(func() {
		roadmapUsecaseInstance = newRoadmapUsecase(roadmapItemRepository, taskRepository, logger)
	})
	return roadmapUsecaseInstance
}

func newRoadmapUsecase(
	roadmapItemRepository contracts.RoadmapItemRepository,
	taskRepository contracts.TaskRepository,
	logger *zap.Logger,
) *roadmapUsecase {
	return &roadmapUsecase{
		RoadmapItemRepository: roadmapItemRepository,
		TaskRepository:        taskRepository,
		Log:                   logger,
	}
}

func (uc *roadmapUsecase) GetRoadmap(ctx context.Context, session *models.Session, companyID string) (*responses.Roadmap, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.GetRoadmap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	if err := utils.AuthorizeCompanyAccess(session, companyID); err != nil {
		return nil, err
	}

	items, err := uc.RoadmapItemRepository.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.TaskRepository.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	tasksByItem := make(map[string][]models.Task, len(items))
	for _, task := range tasks {
		tasksByItem[task.RoadmapItemID] = append(tasksByItem[task.RoadmapItemID], task)
	}
	for i := range items {
		items[i].Tasks = tasksByItem[items[i].ID]
	}

	response := utils.BuildRoadmapResponse(items)
	uc.Log.Info("roadmapUsecase.GetRoadmap succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("items", len(response.Items)),
		zap.Int("progress_percent", response.Progress.Percent),
	)
	return response, nil
}

func (uc *roadmapUsecase) CreateRoadmapItem(ctx context.Context, session *models.Session, request *requests.CreateRoadmapItem) (*responses.RoadmapItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.CreateRoadmapItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, request.CompanyID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	item := &models.RoadmapItem{
		CompanyID:   request.CompanyID,
		Title:       request.Title,
		Description: request.Description,
		Status:      constvars.RoadmapStatusPending,
	}
	if request.DueDate != nil {
		dueDate, err := utils.ParseDate(*request.DueDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		item.DueDate = &dueDate
	}

	item, err := uc.RoadmapItemRepository.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertRoadmapItemToResponse(item)
	uc.Log.Info("roadmapUsecase.CreateRoadmapItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, item.ID),
	)
	return &response, nil
}

func (uc *roadmapUsecase) CycleRoadmapItemStatus(ctx context.Context, session *models.Session, itemID string) (*responses.RoadmapItemStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.CycleRoadmapItemStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, itemID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	item, err := uc.findRoadmapItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	nextStatus := models.NextRoadmapStatus(item.Status)
	err = uc.RoadmapItemRepository.UpdateStatus(ctx, item.ID, nextStatus)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("roadmapUsecase.CycleRoadmapItemStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, nextStatus),
	)
	return &responses.RoadmapItemStatus{ID: item.ID, Status: nextStatus}, nil
}

func (uc *roadmapUsecase) DeleteRoadmapItem(ctx context.Context, session *models.Session, itemID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.DeleteRoadmapItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, itemID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return err
	}

	err := uc.RoadmapItemRepository.Delete(ctx, itemID)
	if err != nil {
		return err
	}

	uc.Log.Info("roadmapUsecase.DeleteRoadmapItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *roadmapUsecase) CreateTask(ctx context.Context, session *models.Session, request *requests.CreateTask) (*responses.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.CreateTask called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoadmapItemIDKey, request.RoadmapItemID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	item, err := uc.findRoadmapItem(ctx, request.RoadmapItemID)
	if err != nil {
		return nil, err
	}

	task, err := uc.TaskRepository.Create(ctx, &models.Task{
		RoadmapItemID: item.ID,
		CompanyID:     item.CompanyID,
		Title:         request.Title,
		Description:   request.Description,
		Status:        constvars.TaskStatusPending,
	})
	if err != nil {
		return nil, err
	}

	response := utils.ConvertTaskToResponse(task)
	uc.Log.Info("roadmapUsecase.CreateTask succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, task.ID),
	)
	return &response, nil
}

// CycleTaskStatus is shared by consultants and by clients acting on their own company.
func (uc *roadmapUsecase) CycleTaskStatus(ctx context.Context, session *models.Session, taskID string) (*responses.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.CycleTaskStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	task, err := uc.findAccessibleTask(ctx, session, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = models.NextTaskStatus(task.Status)
	task.CompletedAt = nil
	if task.Status == constvars.TaskStatusCompleted {
		completedAt := time.Now()
		task.CompletedAt = &completedAt
	}

	err = uc.TaskRepository.UpdateStatus(ctx, task.ID, task.Status, task.CompletedAt)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertTaskToResponse(task)
	uc.Log.Info("roadmapUsecase.CycleTaskStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, task.Status),
	)
	return &response, nil
}

func (uc *roadmapUsecase) UpdateTaskDescription(ctx context.Context, session *models.Session, request *requests.UpdateTaskDescription) (*responses.Task, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.UpdateTaskDescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, request.TaskID),
	)

	task, err := uc.findAccessibleTask(ctx, session, request.TaskID)
	if err != nil {
		return nil, err
	}

	err = uc.TaskRepository.UpdateDescription(ctx, task.ID, request.Description)
	if err != nil {
		return nil, err
	}
	task.Description = request.Description

	response := utils.ConvertTaskToResponse(task)
	uc.Log.Info("roadmapUsecase.UpdateTaskDescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *roadmapUsecase) DeleteTask(ctx context.Context, session *models.Session, taskID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roadmapUsecase.DeleteTask called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return err
	}

	err := uc.TaskRepository.Delete(ctx, taskID)
	if err != nil {
		return err
	}

	uc.Log.Info("roadmapUsecase.DeleteTask succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *roadmapUsecase) findRoadmapItem(ctx context.Context, itemID string) (*models.RoadmapItem, error) {
	item, err := uc.RoadmapItemRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrNotFound(errRoadmapItemNotFound, "roadmap item")
	}
	return item, nil
}

func (uc *roadmapUsecase) findAccessibleTask(ctx context.Context, session *models.Session, taskID string) (*models.Task, error) {
	if session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	task, err := uc.TaskRepository.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, exceptions.ErrNotFound(errTaskNotFound, "task")
	}

	if err := utils.AuthorizeCompanyAccess(session, task.CompanyID); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("roadmapUsecase.findAccessibleTask task outside session company",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingTaskIDKey, task.ID),
		)
		return nil, err
	}
	return task, nil
}
