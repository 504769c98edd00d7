package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/consts"
	pkgredis "PedGuard/internal/pkg/redis"
	"context"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRedisHook swallows every command and keeps the keys passed to DEL,
// so cache invalidation can be asserted without a live redis.
type recordingRedisHook struct {
	mu      sync.Mutex
	deleted []string
}

func (r *recordingRedisHook) DialHook(next goredis.DialHook) goredis.DialHook { return next }

func (r *recordingRedisHook) ProcessHook(goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		if cmd.Name() == "del" {
			r.mu.Lock()
			for _, arg := range cmd.Args()[1:] {
				if key, ok := arg.(string); ok {
					r.deleted = append(r.deleted, key)
				}
			}
			r.mu.Unlock()
		}
		return nil
	}
}

func (r *recordingRedisHook) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

// Runs serially: it swaps the shared redis client and restores it before the
// parallel tests start.
func TestCreateInvalidatesStatisticsCache(t *testing.T) {
	hook := &recordingRedisHook{}
	prev := pkgredis.Rdb
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	client.AddHook(hook)
	pkgredis.Rdb = client
	defer func() { pkgredis.Rdb = prev }()

	repo := newFakeSuggestionRepo()
	svc := NewSuggestionService(repo, nil, nil, nil)

	id, err := svc.Create(context.Background(), 1, &dto.SuggestionCreateDTO{
		Title:          "crosswalk by the elementary school",
		Content:        "heavy morning foot traffic, no marked crossing",
		LocationLat:    37.5665,
		LocationLon:    126.978,
		SuggestionType: "CROSSWALK_INSTALL",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	assert.Contains(t, hook.deleted, consts.SuggestionStatsKey)
}
