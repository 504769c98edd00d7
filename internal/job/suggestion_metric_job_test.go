package job

import (
	"PedGuard/internal/api/dto"
	pkgredis "PedGuard/internal/pkg/redis"
	"context"
	"errors"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggestionService struct {
	syncCalls int
	syncedIDs []uint64
}

func (s *stubSuggestionService) Create(context.Context, uint64, *dto.SuggestionCreateDTO) (uint64, error) {
	return 0, nil
}

func (s *stubSuggestionService) Find(context.Context, *dto.SuggestionListQuery) (*dto.Page[*dto.SuggestionDTO], error) {
	return nil, nil
}

func (s *stubSuggestionService) GetDetail(context.Context, uint64, uint64) (*dto.SuggestionDetailDTO, error) {
	return nil, nil
}

func (s *stubSuggestionService) UpdateStatus(context.Context, uint64, *dto.StatusUpdateDTO) error {
	return nil
}

func (s *stubSuggestionService) GetStatistics(context.Context) (*dto.SuggestionStatsDTO, error) {
	return nil, nil
}

func (s *stubSuggestionService) SyncSuggestionCounts(_ context.Context, id uint64, _, _, _ int64) error {
	s.syncCalls++
	s.syncedIDs = append(s.syncedIDs, id)
	return nil
}

type stubActionService struct {
	countCalls int
}

func (s *stubActionService) ToggleLike(context.Context, uint64, uint64) (*dto.ToggleLikeDTO, error) {
	return nil, nil
}

func (s *stubActionService) RecordView(context.Context, uint64) error { return nil }

func (s *stubActionService) AddComment(context.Context, uint64, uint64, *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	return nil, nil
}

func (s *stubActionService) DeleteComment(context.Context, uint64, []string, uint64, uint64) error {
	return nil
}

func (s *stubActionService) GetComments(context.Context, uint64) ([]*dto.CommentDTO, error) {
	return nil, nil
}

func (s *stubActionService) GetLikeCount(context.Context, uint64) (int64, error) {
	s.countCalls++
	return 5, nil
}

func (s *stubActionService) GetCommentCount(context.Context, uint64) (int64, error) {
	s.countCalls++
	return 2, nil
}

func (s *stubActionService) GetViewCount(context.Context, uint64) (int64, error) {
	s.countCalls++
	return 30, nil
}

// redisRecorder answers every command in-process, so the tests can script
// redis replies and assert the command sequence without a live server.
type redisRecorder struct {
	mu    sync.Mutex
	cmds  []string
	onCmd func(cmd goredis.Cmder) error
}

func (r *redisRecorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.cmds...)
}

func (r *redisRecorder) DialHook(next goredis.DialHook) goredis.DialHook { return next }

func (r *redisRecorder) ProcessHook(goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		r.mu.Lock()
		r.cmds = append(r.cmds, cmd.Name())
		r.mu.Unlock()
		if r.onCmd != nil {
			return r.onCmd(cmd)
		}
		return nil
	}
}

func (r *redisRecorder) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

func swapRedis(t *testing.T, rec *redisRecorder) {
	t.Helper()
	prev := pkgredis.Rdb
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	client.AddHook(rec)
	pkgredis.Rdb = client
	t.Cleanup(func() { pkgredis.Rdb = prev })
}

// When another instance holds the lock the run must bail out before touching
// the dirty set or any counters.
func TestRunSkipsWhenLockHeld(t *testing.T) {
	rec := &redisRecorder{}
	swapRedis(t, rec)

	suggestionSvc := &stubSuggestionService{}
	actionSvc := &stubActionService{}
	NewSuggestionMetricJob(suggestionSvc, actionSvc).Run()

	assert.Equal(t, []string{"set"}, rec.names())
	assert.Zero(t, suggestionSvc.syncCalls)
	assert.Zero(t, actionSvc.countCalls)
}

func TestRunReleasesLockWhenDirtySetMissing(t *testing.T) {
	rec := &redisRecorder{}
	rec.onCmd = func(cmd goredis.Cmder) error {
		switch cmd.Name() {
		case "set":
			cmd.(*goredis.BoolCmd).SetVal(true)
			return nil
		case "rename":
			return errors.New("ERR no such key")
		default:
			return nil
		}
	}
	swapRedis(t, rec)

	suggestionSvc := &stubSuggestionService{}
	actionSvc := &stubActionService{}
	NewSuggestionMetricJob(suggestionSvc, actionSvc).Run()

	assert.Equal(t, []string{"set", "rename", "eval"}, rec.names())
	assert.Zero(t, suggestionSvc.syncCalls)
}

func TestRunSyncsDirtySuggestionsUnderLock(t *testing.T) {
	rec := &redisRecorder{}
	rec.onCmd = func(cmd goredis.Cmder) error {
		switch cmd.Name() {
		case "set":
			cmd.(*goredis.BoolCmd).SetVal(true)
		case "smembers":
			cmd.(*goredis.StringSliceCmd).SetVal([]string{"7"})
		}
		return nil
	}
	swapRedis(t, rec)

	suggestionSvc := &stubSuggestionService{}
	actionSvc := &stubActionService{}
	NewSuggestionMetricJob(suggestionSvc, actionSvc).Run()

	names := rec.names()
	require.NotEmpty(t, names)
	assert.Equal(t, "set", names[0])
	assert.Equal(t, "eval", names[len(names)-1])
	assert.Contains(t, names, "rename")
	assert.Equal(t, []uint64{7}, suggestionSvc.syncedIDs)
	assert.Equal(t, 3, actionSvc.countCalls)
}
