package playbooks

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var errPlaybookNotFound = errors.New("playbook not found")

type playbookMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewPlaybookMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.PlaybookRepository {
	return &playbookMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionPlaybooks),
		Log:        logger,
	}
}

func (repo *playbookMongoRepository) FindAll(ctx context.Context, category string) ([]models.Playbook, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("playbookMongoRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.QueryParamCategory, category),
	)

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		repo.Log.Error("playbookMongoRepository.FindAll error finding playbooks",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	playbooks := make([]models.Playbook, 0)
	err = cursor.All(ctx, &playbooks)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return playbooks, nil
}

func (repo *playbookMongoRepository) FindByID(ctx context.Context, playbookID string) (*models.Playbook, error) {
	objectID, err := primitive.ObjectIDFromHex(playbookID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	playbook := new(models.Playbook)
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(playbook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return playbook, nil
}

func (repo *playbookMongoRepository) CreatePlaybook(ctx context.Context, playbook *models.Playbook) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("playbookMongoRepository.CreatePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := repo.Collection.InsertOne(ctx, playbook)
	if err != nil {
		repo.Log.Error("playbookMongoRepository.CreatePlaybook error inserting playbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	playbookID := result.InsertedID.(primitive.ObjectID).Hex()
	repo.Log.Info("playbookMongoRepository.CreatePlaybook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, playbookID),
	)
	return playbookID, nil
}

func (repo *playbookMongoRepository) UpdatePlaybook(ctx context.Context, playbook *models.Playbook) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("playbookMongoRepository.UpdatePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, playbook.ID.Hex()),
	)

	update := bson.M{"$set": bson.M{
		"title":       playbook.Title,
		"description": playbook.Description,
		"category":    playbook.Category,
		"content":     playbook.Content,
		"updatedAt":   playbook.UpdatedAt,
	}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": playbook.ID}, update)
	if err != nil {
		repo.Log.Error("playbookMongoRepository.UpdatePlaybook error updating playbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNotFound(errPlaybookNotFound, "playbook")
	}
	return nil
}

func (repo *playbookMongoRepository) DeletePlaybook(ctx context.Context, playbookID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("playbookMongoRepository.DeletePlaybook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlaybookIDKey, playbookID),
	)

	objectID, err := primitive.ObjectIDFromHex(playbookID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		repo.Log.Error("playbookMongoRepository.DeletePlaybook error deleting playbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrNotFound(errPlaybookNotFound, "playbook")
	}
	return nil
}
