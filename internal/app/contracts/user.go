package contracts

import (
	"context"
	"crooly-service/internal/app/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	// UpsertClient creates a cliente user for companyID or re-assigns an existing one.
	UpsertClient(ctx context.Context, email, companyID string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
