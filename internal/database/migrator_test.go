package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries, retryInterval = retries, 10*time.Millisecond
	t.Cleanup(func() {
		maxRetries, retryInterval = originalRetries, originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)

	runner.WithPaths("m", "s")
	assert.Equal(t, "m", runner.migrationsPath)
	assert.Equal(t, "s", runner.seedsPath)
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	shortRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	shortRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.ErrorContains(t, err, "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db).WithPaths("/nonexistent/migrations", seedsPath)

	assert.ErrorIs(t, runner.RunMigrations(), ErrMigrationsNotFound)
	assert.ErrorIs(t, runner.RollbackMigration(), ErrMigrationsNotFound)

	_, _, err = runner.GetMigrationStatus()
	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsSkipped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	seedDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(seedDir, "001_bad.sql"), []byte("INSERT INTO ledgers VALUES (1);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(seedDir, "002_companies.sql"), []byte("INSERT INTO companies (name) VALUES ('DipaDuBank');"), 0o644))

	mock.ExpectExec("INSERT INTO ledgers").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO companies").WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewMigrationRunner(db).WithPaths(migrationsPath, seedDir).LoadSeeds()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	seedDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(seedDir, "001_directory.sql"), 0o755))

	err = NewMigrationRunner(db).WithPaths(migrationsPath, seedDir).LoadSeeds()

	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestRunMigrationsIfEnabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")
	applied, err := RunMigrationsIfEnabled(db)
	assert.NoError(t, err)
	assert.False(t, applied)

	t.Setenv("AUTO_MIGRATE", "true")
	shortRetries(t, 1)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	applied, err = RunMigrationsIfEnabled(db)
	assert.ErrorContains(t, err, "database readiness check failed")
	assert.False(t, applied)
}
