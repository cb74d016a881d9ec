package users

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/queries"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		instance := &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
		userPostgresRepositoryInstance = instance
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return r.findOne(ctx, "email", email)
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return r.findOne(ctx, "id", userID)
}

func (r *userPostgresRepository) findOne(ctx context.Context, field, value string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := fmt.Sprintf(queries.FindUserByFieldQueryTemplate, field)
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Info("userPostgresRepository.findOne no user found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("userPostgresRepository.findOne error querying user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("userPostgresRepository.findOne succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (r *userPostgresRepository) UpsertClient(ctx context.Context, email, companyID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.UpsertClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	user, err := scanUser(r.DB.QueryRowContext(ctx, queries.UpsertClientUserQuery, email, companyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("userPostgresRepository.UpsertClient email belongs to a consultant",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, exceptions.ErrEmailAlreadyConsultant(err)
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresForeignKeyViolationCode {
			return nil, exceptions.ErrCompanyNotExist(err)
		}
		r.Log.Error("userPostgresRepository.UpsertClient error upserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("userPostgresRepository.UpsertClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (r *userPostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.UpdatePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateUserPasswordQuery, passwordHash, userID)
	if err != nil {
		r.Log.Error("userPostgresRepository.UpdatePassword error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if rowsAffected == 0 {
		return exceptions.ErrUserNotExist(sql.ErrNoRows)
	}

	r.Log.Info("userPostgresRepository.UpdatePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		user         models.User
		passwordHash sql.NullString
		companyID    sql.NullString
	)
	err := row.Scan(
		&user.ID,
		&user.Email,
		&passwordHash,
		&user.Role,
		&companyID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if passwordHash.Valid {
		user.PasswordHash = &passwordHash.String
	}
	if companyID.Valid {
		user.CompanyID = &companyID.String
	}
	return &user, nil
}
