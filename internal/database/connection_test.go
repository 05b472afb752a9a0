package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formintake/internal/config"
	"formintake/internal/domain"
	"formintake/internal/logging"
)

func openTestDB(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "intake.db")}
}

func TestOpenAndMigrate(t *testing.T) {
	log := logging.NewTestLogger()
	db, err := Open(openTestDB(t), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	Migrate(db, log)

	for _, model := range domain.Models() {
		assert.True(t, db.Migrator().HasTable(model.TableName()), model.TableName())
	}

	// Second run is a no-op.
	Migrate(db, log)
	assert.NoError(t, HealthCheck(context.Background(), db))
}

func TestMigrateContinuesAfterFailure(t *testing.T) {
	log := logging.NewTestLogger()
	db, err := Open(openTestDB(t), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	// A view occupying the study table name makes its creation fail.
	require.NoError(t, db.Exec("CREATE VIEW study AS SELECT 1 AS id").Error)

	Migrate(db, log)

	assert.True(t, db.Migrator().HasTable("work_profiles"))
	assert.True(t, db.Migrator().HasTable("invest"))
}

func TestHealthCheckAfterClose(t *testing.T) {
	log := logging.NewTestLogger()
	db, err := Open(openTestDB(t), log)
	require.NoError(t, err)

	require.NoError(t, Close(db))
	assert.Error(t, HealthCheck(context.Background(), db))
}
