package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	redismock "github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/cache"
	redisRepo "github.com/Guyuepp/Go-Social-Blog/internal/repository/redis"
)

func trendingPayload(t *testing.T, posts []domain.Post, ttl time.Duration) string {
	t.Helper()
	envelope, err := cache.Wrap(posts, ttl)
	require.NoError(t, err)
	data, err := json.Marshal(&envelope)
	require.NoError(t, err)
	return string(data)
}

func TestTrendingCache_GetTrending_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(redisRepo.KeyTrendingDefault).RedisNil()

	c := redisRepo.NewTrendingCache(client)
	_, _, err := c.GetTrending(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrendingCache_GetTrending_Fresh(t *testing.T) {
	client, mock := redismock.NewClientMock()

	posts := []domain.Post{{ID: 1, Title: "hot"}}
	mock.ExpectGet(redisRepo.KeyTrendingDefault).SetVal(trendingPayload(t, posts, time.Minute))

	c := redisRepo.NewTrendingCache(client)
	got, expired, err := c.GetTrending(context.Background())

	require.NoError(t, err)
	assert.False(t, expired)
	require.Len(t, got, 1)
	assert.Equal(t, "hot", got[0].Title)
}

func TestTrendingCache_GetTrending_Expired(t *testing.T) {
	client, mock := redismock.NewClientMock()

	posts := []domain.Post{{ID: 1, Title: "stale"}}
	mock.ExpectGet(redisRepo.KeyTrendingDefault).SetVal(trendingPayload(t, posts, -time.Minute))

	c := redisRepo.NewTrendingCache(client)
	got, expired, err := c.GetTrending(context.Background())

	require.NoError(t, err)
	assert.True(t, expired)
	require.Len(t, got, 1)
	assert.Equal(t, "stale", got[0].Title)
}

func TestTrendingCache_SetTrending(t *testing.T) {
	client, mock := redismock.NewClientMock()

	mock.Regexp().ExpectSet(redisRepo.KeyTrendingDefault, `.*`, 0).SetVal("OK")

	c := redisRepo.NewTrendingCache(client)
	err := c.SetTrending(context.Background(), []domain.Post{{ID: 1}}, time.Minute)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
