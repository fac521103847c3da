package game

import (
	"context"
	"number_game/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentNumber_NotConfigured(t *testing.T) {
	svc, _ := newTestService(t, ScopeAll)

	cfg, err := svc.CurrentNumber(context.Background())
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSetNumber_UpsertKeepsSingleRecord(t *testing.T) {
	svc, database := newTestService(t, ScopeAll)
	ctx := context.Background()

	for _, n := range []int{1, 30, 7} {
		cfg, err := svc.SetNumber(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, n, cfg.Number)
	}

	var count int64
	require.NoError(t, database.Model(&domain.AdminConfig{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cfg, err := svc.CurrentNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Number)
	assert.Equal(t, domain.AdminConfigID, cfg.ID)
}

func TestSetNumber_RejectsOutOfRange(t *testing.T) {
	svc, _ := newTestService(t, ScopeAll)
	ctx := context.Background()
	setTarget(t, svc, 9)

	for _, n := range []int{0, 31, -1} {
		_, err := svc.SetNumber(ctx, n)
		assert.ErrorIs(t, err, ErrInvalidNumber)
		assert.Equal(t, KindValidation, KindOf(err))
	}

	cfg, err := svc.CurrentNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Number)
}
