package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database/migrations"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var (
	testDB      *database.DB
	testDBErr   error
	testDBSetup sync.Once
)

// openTestDatabase connects to TEST_DATABASE_URL and migrates it once per
// test binary. Tests are skipped when the variable is not set.
func openTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	testDBSetup.Do(func() {
		m, err := migrations.New(dsn)
		if err != nil {
			testDBErr = err
			return
		}
		defer m.Close()
		if err := m.Up(); err != nil {
			testDBErr = err
			return
		}
		testDB, testDBErr = database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 4})
	})
	require.NoError(t, testDBErr, "failed to prepare test database")
	return testDB
}

// txContext starts a transaction that is rolled back when the test ends and
// returns a context that routes repository calls through it.
func txContext(t *testing.T, db *database.DB) context.Context {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	_, err = tx.Exec(ctx, "TRUNCATE TABLE invoices, companies RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return postgresql.ContextWithTx(ctx, tx)
}

func strPtr(s string) *string {
	return &s
}

func countRows(t *testing.T, ctx context.Context, db *database.DB, table string) int {
	t.Helper()
	var n int
	err := postgresql.GetQuerier(ctx, db).QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}
