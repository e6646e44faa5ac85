package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hedera-bridge/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseGorm(db) })
	return db
}

func TestSQLCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLCache(openSQLite(t, filepath.Join(t.TempDir(), "cache.db")), "dapp:")
	require.NoError(t, err)

	var v string
	assert.ErrorIs(t, c.Get(ctx, "hedera-topic-id", &v), ErrMiss)

	require.NoError(t, c.Set(ctx, "hedera-topic-id", "0.0.12345", 0))
	require.NoError(t, c.Get(ctx, "hedera-topic-id", &v))
	assert.Equal(t, "0.0.12345", v)

	// 覆盖写
	require.NoError(t, c.Set(ctx, "hedera-topic-id", "0.0.777", 0))
	require.NoError(t, c.Get(ctx, "hedera-topic-id", &v))
	assert.Equal(t, "0.0.777", v)

	require.NoError(t, c.Delete(ctx, "hedera-topic-id"))
	assert.ErrorIs(t, c.Get(ctx, "hedera-topic-id", &v), ErrMiss)
}

func TestSQLCache_Expire(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLCache(openSQLite(t, filepath.Join(t.TempDir(), "cache.db")), "")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var v int
	assert.ErrorIs(t, c.Get(ctx, "k", &v), ErrMiss)
}

func TestSQLCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")

	first, err := NewSQLCache(openSQLite(t, path), "dapp:")
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "hedera-transfer-recipient-address", "0.0.6001", 0))

	second, err := NewSQLCache(openSQLite(t, path), "dapp:")
	require.NoError(t, err)

	var v string
	require.NoError(t, second.Get(ctx, "hedera-transfer-recipient-address", &v))
	assert.Equal(t, "0.0.6001", v)
}
