package contracts

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"time"
)

type RoadmapItemRepository interface {
	Create(ctx context.Context, item *models.RoadmapItem) (*models.RoadmapItem, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]models.RoadmapItem, error)
	FindByID(ctx context.Context, itemID string) (*models.RoadmapItem, error)
	UpdateStatus(ctx context.Context, itemID, status string) error
	Delete(ctx context.Context, itemID string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]models.Task, error)
	FindByID(ctx context.Context, taskID string) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID, status string, completedAt *time.Time) error
	UpdateDescription(ctx context.Context, taskID string, description *string) error
	Delete(ctx context.Context, taskID string) error
	CountProgressByCompanyID(ctx context.Context, companyID string) (models.TaskProgress, error)
}

type RoadmapUsecase interface {
	GetRoadmap(ctx context.Context, session *models.Session, companyID string) (*responses.Roadmap, error)
	CreateRoadmapItem(ctx context.Context, session *models.Session, request *requests.CreateRoadmapItem) (*responses.RoadmapItem, error)
	CycleRoadmapItemStatus(ctx context.Context, session *models.Session, itemID string) (*responses.RoadmapItemStatus, error)
	DeleteRoadmapItem(ctx context.Context, session *models.Session, itemID string) error
	CreateTask(ctx context.Context, session *models.Session, request *requests.CreateTask) (*responses.Task, error)
	CycleTaskStatus(ctx context.Context, session *models.Session, taskID string) (*responses.Task, error)
	UpdateTaskDescription(ctx context.Context, session *models.Session, request *requests.UpdateTaskDescription) (*responses.Task, error)
	DeleteTask(ctx context.Context, session *models.Session, taskID string) error
}
