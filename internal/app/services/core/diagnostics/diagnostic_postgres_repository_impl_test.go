package diagnostics

import (
	"context"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/scoring"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// failingConnector hands out connections whose every statement fails with err.
type failingConnector struct {
	err error
}

func (c failingConnector) Connect(context.Context) (driver.Conn, error) {
	return failingConn(c), nil
}

func (c failingConnector) Driver() driver.Driver {
	return nil
}

type failingConn struct {
	err error
}

func (c failingConn) Prepare(string) (driver.Stmt, error) {
	return nil, c.err
}

func (c failingConn) Close() error {
	return nil
}

func (c failingConn) Begin() (driver.Tx, error) {
	return nil, c.err
}

func TestDiagnosticPostgresRepository_Insert(t *testing.T) {
	scores := scoring.Scores{Credibilidad: 5.0, CapacidadComercial: 1.0, Posicionamiento: 3.0, Operacion: 2.0}

	tests := []struct {
		name           string
		dbErr          error
		expectedStatus int
	}{
		{
			name:           "Unknown Company Is Not Found",
			dbErr:          &pq.Error{Code: pq.ErrorCode(constvars.PostgresForeignKeyViolationCode), Constraint: "diagnostics_company_id_fkey"},
			expectedStatus: constvars.StatusNotFound,
		},
		{
			name:           "Other Database Errors Are Insert Failures",
			dbErr:          &pq.Error{Code: "53300"},
			expectedStatus: constvars.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := sql.OpenDB(failingConnector{err: tt.dbErr})
			defer db.Close()
			repository := &diagnosticPostgresRepository{DB: db, Log: zap.NewNop()}

			id, err := repository.Insert(context.Background(), "company-1", scores, completeAnswers())

			assert.Empty(t, id)
			assert.Equal(t, tt.expectedStatus, statusCodeOf(t, err))
		})
	}
}
