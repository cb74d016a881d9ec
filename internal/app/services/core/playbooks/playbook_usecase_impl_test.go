package playbooks

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockPlaybookRepository struct {
	mock.Mock
}

func (m *MockPlaybookRepository) FindAll(ctx context.Context, category string) ([]models.Playbook, error) {
	args := m.Called(ctx, category)
	playbooks, _ := args.Get(0).([]models.Playbook)
	return playbooks, args.Error(1)
}

func (m *MockPlaybookRepository) FindByID(ctx context.Context, playbookID string) (*models.Playbook, error) {
	args := m.Called(ctx, playbookID)
	playbook, _ := args.Get(0).(*models.Playbook)
	return playbook, args.Error(1)
}

func (m *MockPlaybookRepository) CreatePlaybook(ctx context.Context, playbook *models.Playbook) (string, error) {
	args := m.Called(ctx, playbook)
	return args.String(0), args.Error(1)
}

func (m *MockPlaybookRepository) UpdatePlaybook(ctx context.Context, playbook *models.Playbook) error {
	args := m.Called(ctx, playbook)
	return args.Error(0)
}

func (m *MockPlaybookRepository) DeletePlaybook(ctx context.Context, playbookID string) error {
	args := m.Called(ctx, playbookID)
	return args.Error(0)
}

var (
	consultantSession = &models.Session{UserID: "consultor-1", Role: constvars.CroolyRoleConsultant}
	clientSession     = &models.Session{UserID: "cliente-1", Role: constvars.CroolyRoleClient, CompanyID: "company-1"}
)

func newTestUsecase() (*playbookUsecase, *MockPlaybookRepository) {
	repository := new(MockPlaybookRepository)
	return &playbookUsecase{PlaybookRepository: repository, Log: zap.NewNop()}, repository
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestPlaybookUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the category filter through", func(t *testing.T) {
		uc, repository := newTestUsecase()
		repository.On("FindAll", ctx, constvars.PlaybookCategoryPlanning).Return([]models.Playbook{
			{ID: primitive.NewObjectID(), Title: "Plan 90 días", Category: constvars.PlaybookCategoryPlanning},
		}, nil)

		playbooks, err := uc.FindAll(ctx, consultantSession, &requests.FindPlaybooks{Category: constvars.PlaybookCategoryPlanning})

		require.NoError(t, err)
		require.Len(t, playbooks, 1)
		assert.Equal(t, "Plan 90 días", playbooks[0].Title)
		assert.NotNil(t, playbooks[0].Steps)
	})

	t.Run("clients have no playbook access", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.FindAll(ctx, clientSession, &requests.FindPlaybooks{})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})
}

func TestPlaybookUsecase_CreatePlaybook(t *testing.T) {
	ctx := context.Background()
	uc, repository := newTestUsecase()
	objectID := primitive.NewObjectID()
	repository.On("CreatePlaybook", ctx, mock.MatchedBy(func(playbook *models.Playbook) bool {
		return len(playbook.Content.Steps) == 1 && !playbook.CreatedAt.IsZero()
	})).Return(objectID.Hex(), nil)

	response, err := uc.CreatePlaybook(ctx, consultantSession, &requests.CreatePlaybook{
		Title:    "Diagnóstico inicial",
		Category: constvars.PlaybookCategoryDiagnostic,
		Steps:    []requests.PlaybookStep{{Title: "Entrevista", Content: "Agendar con gerencia"}},
	})

	require.NoError(t, err)
	assert.Equal(t, objectID.Hex(), response.ID)
	assert.Equal(t, "Entrevista", response.Steps[0].Title)
}

func TestPlaybookUsecase_UpdatePlaybook(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and steps", func(t *testing.T) {
		uc, repository := newTestUsecase()
		objectID := primitive.NewObjectID()
		repository.On("FindByID", ctx, objectID.Hex()).Return(&models.Playbook{ID: objectID, Title: "Viejo", Category: constvars.PlaybookCategoryOther}, nil)
		repository.On("UpdatePlaybook", ctx, mock.MatchedBy(func(playbook *models.Playbook) bool {
			return playbook.Title == "Nuevo" && playbook.Category == constvars.PlaybookCategoryImplementation
		})).Return(nil)

		response, err := uc.UpdatePlaybook(ctx, consultantSession, &requests.UpdatePlaybook{
			PlaybookID: objectID.Hex(),
			Title:      "Nuevo",
			Category:   constvars.PlaybookCategoryImplementation,
		})

		require.NoError(t, err)
		assert.Equal(t, "Nuevo", response.Title)
		assert.Empty(t, response.Steps)
	})

	t.Run("missing playbook is not found", func(t *testing.T) {
		uc, repository := newTestUsecase()
		repository.On("FindByID", ctx, "65f0c0ffee0000000000beef").Return(nil, nil)

		_, err := uc.UpdatePlaybook(ctx, consultantSession, &requests.UpdatePlaybook{PlaybookID: "65f0c0ffee0000000000beef", Title: "x", Category: constvars.PlaybookCategoryOther})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestPlaybookUsecase_DeletePlaybook(t *testing.T) {
	ctx := context.Background()
	uc, repository := newTestUsecase()
	repository.On("DeletePlaybook", ctx, "65f0c0ffee0000000000beef").Return(nil)

	assert.NoError(t, uc.DeletePlaybook(ctx, consultantSession, "65f0c0ffee0000000000beef"))
	assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, uc.DeletePlaybook(ctx, clientSession, "65f0c0ffee0000000000beef")))
}
