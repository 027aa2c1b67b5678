package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedisDegradesOnBadURL(t *testing.T) {
	t.Setenv("REDIS_URL", "not a redis url")

	RedisClient = nil
	InitRedis()

	assert.Nil(t, RedisClient, "a bad REDIS_URL must leave caching disabled")
}

func TestRedisOptionsFromParts(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_DB", "3")

	opt, err := redisOptions()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opt.Addr)
	assert.Equal(t, "hunter2", opt.Password)
	assert.Equal(t, 3, opt.DB)
}

func TestRedisOptionsFromURL(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://:secret@cache.internal:6380/2")

	opt, err := redisOptions()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opt.Addr)
	assert.Equal(t, "secret", opt.Password)
	assert.Equal(t, 2, opt.DB)
}

func TestCloseRedisIsNilSafe(t *testing.T) {
	RedisClient = nil
	assert.NotPanics(t, func() { CloseRedis() })
}
