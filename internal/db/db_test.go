package db_test

import (
	"number_game/internal/config"
	"number_game/internal/db"
	"number_game/internal/domain"
	"number_game/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdminIsIdempotent(t *testing.T) {
	database := testutil.NewDB(t)

	require.NoError(t, db.SeedAdmin(database, "boss", "boss@example.com", "hunter22"))
	require.NoError(t, db.SeedAdmin(database, "boss", "boss@example.com", "hunter22"))

	var admins []domain.User
	require.NoError(t, database.Where("role = ?", domain.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, domain.InitialBalance, admins[0].Balance)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("hunter22")))
}

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: t.TempDir() + "/game.db"}
	database, err := db.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	assert.True(t, database.Migrator().HasTable(&domain.AdminConfig{}))

	sqlDB, err := database.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := db.Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
