package playbooks

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type playbookUsecase struct {
	PlaybookRepository contracts.PlaybookRepository
	Log                *zap.Logger
}

var (
	playbookUsecaseInstance contracts.PlaybookUsecase
	oncePlaybookUsecase     sync.Once
)

func NewPlaybookUsecase(playbookRepository contracts.PlaybookRepository, logger *zap.Logger) contracts.PlaybookUsecase {
	oncePlaybookUsecase.Do(func() {
		playbookUsecaseInstance = &playbookUsecase{
			PlaybookRepository: playbookRepository,
			Log:                logger,
		}
	})
	return playbookUsecaseInstance
}

func (uc *playbookUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindPlaybooks) ([]responses.Playbook, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("playbookUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	playbooks, err := uc.PlaybookRepository.FindAll(ctx, request.Category)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Playbook, 0, len(playbooks))
	for i := range playbooks {
		response = append(response, utils.ConvertPlaybookToResponse(&playbooks[i]))
	}

	uc.Log.Info("playbookUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *playbookUsecase) CreatePlaybook(ctx context.Context, session *models.Session, request *requests.CreatePlaybook) (*responses.Playbook, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("playbookUsecase.CreatePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	playbook := &models.Playbook{
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Content:     models.PlaybookContent{Steps: toPlaybookSteps(request.Steps)},
	}
	playbook.SetCreatedAtUpdatedAt()

	playbookID, err := uc.PlaybookRepository.CreatePlaybook(ctx, playbook)
	if err != nil {
		return nil, err
	}

	playbook.ID, err = primitive.ObjectIDFromHex(playbookID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	response := utils.ConvertPlaybookToResponse(playbook)
	uc.Log.Info("playbookUsecase.CreatePlaybook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, playbookID),
	)
	return &response, nil
}

func (uc *playbookUsecase) UpdatePlaybook(ctx context.Context, session *models.Session, request *requests.UpdatePlaybook) (*responses.Playbook, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("playbookUsecase.UpdatePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, request.PlaybookID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return nil, err
	}

	playbook, err := uc.PlaybookRepository.FindByID(ctx, request.PlaybookID)
	if err != nil {
		return nil, err
	}
	if playbook == nil {
		return nil, exceptions.ErrNotFound(errPlaybookNotFound, "playbook")
	}

	playbook.Title = request.Title
	playbook.Description = request.Description
	playbook.Category = request.Category
	playbook.Content = models.PlaybookContent{Steps: toPlaybookSteps(request.Steps)}
	playbook.SetUpdatedAt()

	err = uc.PlaybookRepository.UpdatePlaybook(ctx, playbook)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertPlaybookToResponse(playbook)
	uc.Log.Info("playbookUsecase.UpdatePlaybook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *playbookUsecase) DeletePlaybook(ctx context.Context, session *models.Session, playbookID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("playbookUsecase.DeletePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, playbookID),
	)

	if err := utils.AuthorizeConsultant(session); err != nil {
		return err
	}

	return uc.PlaybookRepository.DeletePlaybook(ctx, playbookID)
}

func toPlaybookSteps(steps []requests.PlaybookStep) []models.PlaybookStep {
	converted := make([]models.PlaybookStep, 0, len(steps))
	for _, step := range steps {
		converted = append(converted, models.PlaybookStep{
			Title:   step.Title,
			Content: step.Content,
		})
	}
	return converted
}
