package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a DB backed by sqlmock. The mock's expectations are
// verified when the test finishes.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return &DB{DB: conn, logger: logger.Nop()}, mock
}
