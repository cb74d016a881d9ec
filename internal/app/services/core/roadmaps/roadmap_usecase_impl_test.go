package roadmaps

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRoadmapItemRepository struct {
	mock.Mock
}

func (m *MockRoadmapItemRepository) Create(ctx context.Context, item *models.RoadmapItem) (*models.RoadmapItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(*models.RoadmapItem)
	return created, args.Error(1)
}

func (m *MockRoadmapItemRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.RoadmapItem, error) {
	args := m.Called(ctx, companyID)
	items, _ := args.Get(0).([]models.RoadmapItem)
	return items, args.Error(1)
}

func (m *MockRoadmapItemRepository) FindByID(ctx context.Context, itemID string) (*models.RoadmapItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*models.RoadmapItem)
	return item, args.Error(1)
}

func (m *MockRoadmapItemRepository) UpdateStatus(ctx context.Context, itemID, status string) error {
	args := m.Called(ctx, itemID, status)
	return args.Error(0)
}

func (m *MockRoadmapItemRepository) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	created, _ := args.Get(0).(*models.Task)
	return created, args.Error(1)
}

func (m *MockTaskRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.Task, error) {
	args := m.Called(ctx, companyID)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, taskID string) (*models.Task, error) {
	args := m.Called(ctx, taskID)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, taskID, status string, completedAt *time.Time) error {
	args := m.Called(ctx, taskID, status, completedAt)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateDescription(ctx context.Context, taskID string, description *string) error {
	args := m.Called(ctx, taskID, description)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *MockTaskRepository) CountProgressByCompanyID(ctx context.Context, companyID string) (models.TaskProgress, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(models.TaskProgress), args.Error(1)
}

var (
	consultantSession = &models.Session{UserID: "consultor-1", Role: constvars.CroolyRoleConsultant}
	clientSession     = &models.Session{UserID: "cliente-1", Role: constvars.CroolyRoleClient, CompanyID: "company-1"}
)

func newTestUsecase() (*roadmapUsecase, *MockRoadmapItemRepository, *MockTaskRepository) {
	itemRepository := new(MockRoadmapItemRepository)
	taskRepository := new(MockTaskRepository)
	return newRoadmapUsecase(itemRepository, taskRepository, zap.NewNop()), itemRepository, taskRepository
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestRoadmapUsecase_GetRoadmap(t *testing.T) {
	ctx := context.Background()

	t.Run("groups tasks under their item and computes progress", func(t *testing.T) {
		uc, itemRepository, taskRepository := newTestUsecase()
		itemRepository.On("FindByCompanyID", ctx, "company-1").Return([]models.RoadmapItem{
			{ID: "item-1", CompanyID: "company-1", Title: "Ordenar portafolio", Status: constvars.RoadmapStatusInProgress},
			{ID: "item-2", CompanyID: "company-1", Title: "Licitaciones", Status: constvars.RoadmapStatusPending},
		}, nil)
		taskRepository.On("FindByCompanyID", ctx, "company-1").Return([]models.Task{
			{ID: "task-1", RoadmapItemID: "item-1", Status: constvars.TaskStatusCompleted},
			{ID: "task-2", RoadmapItemID: "item-1", Status: constvars.TaskStatusPending},
			{ID: "task-3", RoadmapItemID: "item-2", Status: constvars.TaskStatusInProgress},
		}, nil)

		roadmap, err := uc.GetRoadmap(ctx, clientSession, "company-1")

		require.NoError(t, err)
		require.Len(t, roadmap.Items, 2)
		assert.Len(t, roadmap.Items[0].Tasks, 2)
		assert.Len(t, roadmap.Items[1].Tasks, 1)
		assert.Equal(t, 3, roadmap.Progress.Total)
		assert.Equal(t, 1, roadmap.Progress.Completed)
		assert.Equal(t, 33, roadmap.Progress.Percent)
	})

	t.Run("client cannot read another company", func(t *testing.T) {
		uc, itemRepository, _ := newTestUsecase()

		_, err := uc.GetRoadmap(ctx, clientSession, "company-2")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		itemRepository.AssertNotCalled(t, "FindByCompanyID", mock.Anything, mock.Anything)
	})
}

func TestRoadmapUsecase_CreateRoadmapItem(t *testing.T) {
	ctx := context.Background()

	t.Run("new items start pending with the parsed due date", func(t *testing.T) {
		uc, itemRepository, _ := newTestUsecase()
		dueDate := "2026-11-30"
		itemRepository.On("Create", ctx, mock.MatchedBy(func(item *models.RoadmapItem) bool {
			return item.Status == constvars.RoadmapStatusPending &&
				item.CompanyID == "company-1" &&
				item.DueDate != nil && item.DueDate.Format(models.DateLayout) == dueDate
		})).Return(&models.RoadmapItem{ID: "item-1", CompanyID: "company-1", Status: constvars.RoadmapStatusPending}, nil)

		response, err := uc.CreateRoadmapItem(ctx, consultantSession, &requests.CreateRoadmapItem{
			CompanyID: "company-1",
			Title:     "Ordenar portafolio",
			DueDate:   &dueDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "item-1", response.ID)
		assert.NotNil(t, response.Tasks)
	})

	t.Run("clients cannot create items", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.CreateRoadmapItem(ctx, clientSession, &requests.CreateRoadmapItem{CompanyID: "company-1", Title: "x"})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})
}

func TestRoadmapUsecase_CycleRoadmapItemStatus(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		current string
		next    string
	}{
		{constvars.RoadmapStatusPending, constvars.RoadmapStatusInProgress},
		{constvars.RoadmapStatusInProgress, constvars.RoadmapStatusCompleted},
		{constvars.RoadmapStatusCompleted, constvars.RoadmapStatusAtRisk},
		{constvars.RoadmapStatusAtRisk, constvars.RoadmapStatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.current, func(t *testing.T) {
			uc, itemRepository, _ := newTestUsecase()
			itemRepository.On("FindByID", ctx, "item-1").Return(&models.RoadmapItem{ID: "item-1", Status: tc.current}, nil)
			itemRepository.On("UpdateStatus", ctx, "item-1", tc.next).Return(nil)

			response, err := uc.CycleRoadmapItemStatus(ctx, consultantSession, "item-1")

			require.NoError(t, err)
			assert.Equal(t, tc.next, response.Status)
		})
	}

	t.Run("missing item is not found", func(t *testing.T) {
		uc, itemRepository, _ := newTestUsecase()
		itemRepository.On("FindByID", ctx, "item-9").Return(nil, nil)

		_, err := uc.CycleRoadmapItemStatus(ctx, consultantSession, "item-9")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestRoadmapUsecase_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("task inherits the company of its item", func(t *testing.T) {
		uc, itemRepository, taskRepository := newTestUsecase()
		itemRepository.On("FindByID", ctx, "item-1").Return(&models.RoadmapItem{ID: "item-1", CompanyID: "company-1"}, nil)
		taskRepository.On("Create", ctx, mock.MatchedBy(func(task *models.Task) bool {
			return task.CompanyID == "company-1" && task.Status == constvars.TaskStatusPending
		})).Return(&models.Task{ID: "task-1", CompanyID: "company-1", RoadmapItemID: "item-1"}, nil)

		response, err := uc.CreateTask(ctx, consultantSession, &requests.CreateTask{RoadmapItemID: "item-1", Title: "Llamar"})

		require.NoError(t, err)
		assert.Equal(t, "task-1", response.ID)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		uc, itemRepository, taskRepository := newTestUsecase()
		itemRepository.On("FindByID", ctx, "item-9").Return(nil, nil)

		_, err := uc.CreateTask(ctx, consultantSession, &requests.CreateTask{RoadmapItemID: "item-9", Title: "Llamar"})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		taskRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRoadmapUsecase_CycleTaskStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moving to completed stamps completed_at", func(t *testing.T) {
		uc, _, taskRepository := newTestUsecase()
		taskRepository.On("FindByID", ctx, "task-1").Return(&models.Task{ID: "task-1", CompanyID: "company-1", Status: constvars.TaskStatusInProgress}, nil)
		taskRepository.On("UpdateStatus", ctx, "task-1", constvars.TaskStatusCompleted, mock.MatchedBy(func(completedAt *time.Time) bool {
			return completedAt != nil
		})).Return(nil)

		response, err := uc.CycleTaskStatus(ctx, clientSession, "task-1")

		require.NoError(t, err)
		assert.Equal(t, constvars.TaskStatusCompleted, response.Status)
		assert.NotNil(t, response.CompletedAt)
	})

	t.Run("leaving completed clears completed_at", func(t *testing.T) {
		uc, _, taskRepository := newTestUsecase()
		completedAt := time.Now().Add(-time.Hour)
		taskRepository.On("FindByID", ctx, "task-1").Return(&models.Task{ID: "task-1", CompanyID: "company-1", Status: constvars.TaskStatusCompleted, CompletedAt: &completedAt}, nil)
		taskRepository.On("UpdateStatus", ctx, "task-1", constvars.TaskStatusPending, (*time.Time)(nil)).Return(nil)

		response, err := uc.CycleTaskStatus(ctx, consultantSession, "task-1")

		require.NoError(t, err)
		assert.Equal(t, constvars.TaskStatusPending, response.Status)
		assert.Nil(t, response.CompletedAt)
	})

	t.Run("client cannot touch a task of another company", func(t *testing.T) {
		uc, _, taskRepository := newTestUsecase()
		taskRepository.On("FindByID", ctx, "task-2").Return(&models.Task{ID: "task-2", CompanyID: "company-2", Status: constvars.TaskStatusPending}, nil)

		_, err := uc.CycleTaskStatus(ctx, clientSession, "task-2")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		taskRepository.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRoadmapUsecase_UpdateTaskDescription(t *testing.T) {
	ctx := context.Background()
	description := "Coordinar con gerencia"

	uc, _, taskRepository := newTestUsecase()
	taskRepository.On("FindByID", ctx, "task-1").Return(&models.Task{ID: "task-1", CompanyID: "company-1"}, nil)
	taskRepository.On("UpdateDescription", ctx, "task-1", &description).Return(nil)

	response, err := uc.UpdateTaskDescription(ctx, clientSession, &requests.UpdateTaskDescription{TaskID: "task-1", Description: &description})

	require.NoError(t, err)
	require.NotNil(t, response.Description)
	assert.Equal(t, description, *response.Description)
}

func TestRoadmapUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("consultant deletes an item", func(t *testing.T) {
		uc, itemRepository, _ := newTestUsecase()
		itemRepository.On("Delete", ctx, "item-1").Return(nil)

		assert.NoError(t, uc.DeleteRoadmapItem(ctx, consultantSession, "item-1"))
	})

	t.Run("deleting a missing task is not found", func(t *testing.T) {
		uc, _, taskRepository := newTestUsecase()
		taskRepository.On("Delete", ctx, "task-9").Return(exceptions.ErrNotFound(sql.ErrNoRows, "task"))

		err := uc.DeleteTask(ctx, consultantSession, "task-9")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("client cannot delete tasks", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		err := uc.DeleteTask(ctx, clientSession, "task-1")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})
}
