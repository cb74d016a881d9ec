package kpis

import (
	"context"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockKPIRepository struct {
	mock.Mock
}

func (m *MockKPIRepository) Create(ctx context.Context, kpi *models.KPI) (*models.KPI, error) {
	args := m.Called(ctx, kpi)
	created, _ := args.Get(0).(*models.KPI)
	return created, args.Error(1)
}

func (m *MockKPIRepository) FindByCompanyID(ctx context.Context, companyID string) ([]models.KPI, error) {
	args := m.Called(ctx, companyID)
	kpis, _ := args.Get(0).([]models.KPI)
	return kpis, args.Error(1)
}

func (m *MockKPIRepository) Delete(ctx context.Context, kpiID string) (bool, error) {
	args := m.Called(ctx, kpiID)
	return args.Bool(0), args.Error(1)
}

var (
	consultantSession = &models.Session{UserID: "consultor-1", Role: constvars.CroolyRoleConsultant}
	clientSession     = &models.Session{UserID: "cliente-1", Role: constvars.CroolyRoleClient, CompanyID: "company-1"}
)

func newTestUsecase() (*kpiUsecase, *MockKPIRepository) {
	repository := new(MockKPIRepository)
	return &kpiUsecase{KPIRepository: repository, Log: zap.NewNop()}, repository
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestKPIUsecase_FindByCompanyID(t *testing.T) {
	ctx := context.Background()
	uc, repository := newTestUsecase()
	contacts := 12
	repository.On("FindByCompanyID", ctx, "company-1").Return([]models.KPI{
		{ID: "kpi-1", CompanyID: "company-1", WeekDate: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), ActiveContacts: &contacts},
	}, nil)

	kpis, err := uc.FindByCompanyID(ctx, clientSession, "company-1")

	require.NoError(t, err)
	require.Len(t, kpis, 1)
	assert.Equal(t, "2026-10-05", kpis[0].WeekDate)
	assert.Equal(t, 12, *kpis[0].ActiveContacts)
	assert.Nil(t, kpis[0].PipelineValue)

	_, err = uc.FindByCompanyID(ctx, clientSession, "company-2")
	assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
}

func TestKPIUsecase_CreateKPI(t *testing.T) {
	ctx := context.Background()

	t.Run("consultant records a week", func(t *testing.T) {
		uc, repository := newTestUsecase()
		pipeline := int64(45000000)
		repository.On("Create", ctx, mock.MatchedBy(func(kpi *models.KPI) bool {
			return kpi.WeekDate.Format(models.DateLayout) == "2026-10-12" && *kpi.PipelineValue == pipeline
		})).Return(&models.KPI{ID: "kpi-1", CompanyID: "company-1", WeekDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), PipelineValue: &pipeline}, nil)

		response, err := uc.CreateKPI(ctx, consultantSession, &requests.CreateKPI{
			CompanyID:     "company-1",
			WeekDate:      "2026-10-12",
			PipelineValue: &pipeline,
		})

		require.NoError(t, err)
		assert.Equal(t, "kpi-1", response.ID)
	})

	t.Run("invalid date is a bad request", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.CreateKPI(ctx, consultantSession, &requests.CreateKPI{CompanyID: "company-1", WeekDate: "12/10/2026"})

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})
}

func TestKPIUsecase_DeleteKPI(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing kpi", func(t *testing.T) {
		uc, repository := newTestUsecase()
		repository.On("Delete", ctx, "kpi-1").Return(true, nil)

		assert.NoError(t, uc.DeleteKPI(ctx, consultantSession, "kpi-1"))
	})

	t.Run("missing kpi is not found", func(t *testing.T) {
		uc, repository := newTestUsecase()
		repository.On("Delete", ctx, "kpi-9").Return(false, nil)

		err := uc.DeleteKPI(ctx, consultantSession, "kpi-9")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("clients cannot delete", func(t *testing.T) {
		uc, repository := newTestUsecase()

		err := uc.DeleteKPI(ctx, clientSession, "kpi-1")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		repository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
