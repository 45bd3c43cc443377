package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", DSN: "file:open_test?mode=memory&cache=shared"})
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestPinger(t *testing.T) {
	db, err := Open(Config{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)

	ping := Pinger(db)
	assert.NoError(t, ping(context.Background()))

	require.NoError(t, Close(db))
	assert.Error(t, ping(context.Background()))
}

func TestOpen_SQLiteFileCreatesDir(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "nested", "planner.db")

	db, err := Open(Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE t (id INTEGER)").Error)
	require.NoError(t, Close(db))

	_, err = os.Stat(filepath.Join(dir, "nested"))
	assert.NoError(t, err)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)

	_, err = Open(Config{Driver: "postgres"})
	assert.Error(t, err)

	_, err = Open(Config{Driver: "mysql"})
	assert.Error(t, err)
}

func TestEnsureDirForSQLite(t *testing.T) {
	assert.NoError(t, ensureDirForSQLite(":memory:"))
	assert.NoError(t, ensureDirForSQLite("file:x?mode=memory"))
	assert.NoError(t, ensureDirForSQLite("local.db"))
}
