package game

import (
	"context"
	"number_game/internal/domain"
	"number_game/internal/testutil"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, scope Scope) (*Service, *gorm.DB) {
	t.Helper()
	database := testutil.NewDB(t)
	return NewService(database, scope), database
}

// addPlayer inserts a user directly, skipping bcrypt
func addPlayer(t *testing.T, database *gorm.DB, name string) *domain.User {
	t.Helper()
	u := domain.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "x",
		Role:     domain.RoleUser,
		Balance:  domain.InitialBalance,
	}
	require.NoError(t, database.Create(&u).Error)
	return &u
}

func balanceOf(t *testing.T, database *gorm.DB, id uint) int64 {
	t.Helper()
	var u domain.User
	require.NoError(t, database.First(&u, id).Error)
	return u.Balance
}

func setTarget(t *testing.T, svc *Service, n int) {
	t.Helper()
	_, err := svc.SetNumber(context.Background(), n)
	require.NoError(t, err)
}

