package repository

import (
	"context"
	"testing"
	"time"

	"flighttracker/internal/telemetry"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*RateLimiterRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &RateLimiterRepository{trace: &telemetry.Trace{}, client: rdb}, mr
}

func TestConsumeFixedWindow(t *testing.T) {
	type step struct {
		remaining int
		blocked   bool
	}
	tests := []struct {
		name  string
		limit int
		steps []step
	}{
		{name: "limit 2", limit: 2, steps: []step{{1, false}, {0, false}, {0, true}, {0, true}}},
		{name: "limit 1", limit: 1, steps: []step{{0, false}, {0, true}}},
		{name: "limit 0 blocks first call", limit: 0, steps: []step{{0, true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepository(t)
			for i, s := range tt.steps {
				remaining, ttl, err := repo.Consume(context.Background(), "203.0.113.7", tt.limit, 60)
				if s.blocked {
					require.ErrorIs(t, err, ErrRateLimitExceeded, "call %d", i+1)
				} else {
					require.NoError(t, err, "call %d", i+1)
				}
				assert.Equal(t, s.remaining, remaining, "call %d", i+1)
				assert.Equal(t, int64(60), ttl, "call %d", i+1)
			}
		})
	}
}

func TestConsumeKeyAndWindowReset(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	_, _, err := repo.Consume(ctx, "203.0.113.7", 1, 30)
	require.NoError(t, err)
	assert.True(t, mr.Exists("flighttracker:ratelimit:203.0.113.7"))
	assert.Equal(t, 30*time.Second, mr.TTL("flighttracker:ratelimit:203.0.113.7"))

	_, _, err = repo.Consume(ctx, "203.0.113.7", 1, 30)
	require.ErrorIs(t, err, ErrRateLimitExceeded)

	// 其他 IP 各自計數
	_, _, err = repo.Consume(ctx, "198.51.100.1", 1, 30)
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)
	remaining, ttl, err := repo.Consume(ctx, "203.0.113.7", 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, int64(30), ttl)
}

func TestConsumeRedisDown(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()

	_, _, err := repo.Consume(context.Background(), "203.0.113.7", 5, 60)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimitExceeded)
}

func TestEnabled(t *testing.T) {
	var nilRepo *RateLimiterRepository
	assert.False(t, nilRepo.Enabled())
	assert.False(t, (&RateLimiterRepository{}).Enabled())

	repo, _ := newTestRepository(t)
	assert.True(t, repo.Enabled())
}
