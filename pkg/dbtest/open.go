package dbtest

import (
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// DSNEnv names the variable holding the integration database DSN.
const DSNEnv = "PG_TEST_DSN"

// Open connects to the integration database and applies the migrations.
// The test is skipped when PG_TEST_DSN is unset.
func Open(t *testing.T, migrations ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, MigrateFromFile(db, migrations...))

	return db
}

// Truncate empties the given tables between test cases.
func Truncate(t *testing.T, db *sqlx.DB, tables ...string) {
	t.Helper()

	for _, table := range tables {
		_, err := db.Exec("TRUNCATE TABLE " + table + " CASCADE")
		require.NoError(t, err)
	}
}
