package companies

import (
	"context"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/exceptions"
	"crooly-service/internal/pkg/queries"
	"database/sql"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type companyPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	companyPostgresRepositoryInstance contracts.CompanyRepository
	onceCompanyPostgresRepository     sync.Once
)

func NewCompanyPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.CompanyRepository {
	onceCompanyPostgresRepository.Do(func() {
		instance := &companyPostgresRepository{
			DB:  db,
			Log: logger,
		}
		companyPostgresRepositoryInstance = instance
	})
	return companyPostgresRepositoryInstance
}

func (r *companyPostgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companyPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := r.DB.QueryRowContext(ctx, queries.CreateCompanyQuery,
		company.Name,
		company.RUT,
		company.ContactName,
		company.ContactEmail,
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		r.Log.Error("companyPostgresRepository.Create error inserting company",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("companyPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, company.ID),
	)
	return company, nil
}

func (r *companyPostgresRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companyPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindAllCompaniesQuery)
	if err != nil {
		r.Log.Error("companyPostgresRepository.FindAll error querying companies",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		var company models.Company
		err := scanCompany(rows, &company)
		if err != nil {
			r.Log.Error("companyPostgresRepository.FindAll error scanning company",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("companyPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(companies)),
	)
	return companies, nil
}

func (r *companyPostgresRepository) FindByID(ctx context.Context, companyID string) (*models.Company, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companyPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	var company models.Company
	err := scanCompany(r.DB.QueryRowContext(ctx, queries.FindCompanyByIDQuery, companyID), &company)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("companyPostgresRepository.FindByID error querying company",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("companyPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &company, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner, company *models.Company) error {
	var rut, contactName sql.NullString
	err := row.Scan(
		&company.ID,
		&company.Name,
		&rut,
		&contactName,
		&company.ContactEmail,
		&company.CreatedAt,
	)
	if err != nil {
		return err
	}
	if rut.Valid {
		company.RUT = &rut.String
	}
	if contactName.Valid {
		company.ContactName = &contactName.String
	}
	return nil
}
