package job

import (
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/logger"
	"PedGuard/internal/pkg/redis"
	"PedGuard/internal/pkg/util"
	"PedGuard/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// SuggestionMetricJob reconciles the denormalized suggestion counters
// against the truth tables for every suggestion touched since the last run.
type SuggestionMetricJob struct {
	suggestionSvc service.SuggestionService
	actionSvc     service.SuggestionActionService
}

func NewSuggestionMetricJob(
	suggestionSvc service.SuggestionService,
	actionSvc service.SuggestionActionService,
) *SuggestionMetricJob {
	return &SuggestionMetricJob{
		suggestionSvc: suggestionSvc,
		actionSvc:     actionSvc,
	}
}

func (s *SuggestionMetricJob) Run() {
	traceID := "job-suggestion-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// one runner at a time across instances; the stamp guards the release
	locked, err := redis.TryLock(ctx, consts.SuggestionMetricLock, traceID, 10*time.Minute, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire suggestion metric lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "suggestion metric job already running, skip")
		return
	}
	defer redis.UnLock(ctx, consts.SuggestionMetricLock, traceID)

	// swap the dirty set out so mutations landing mid-run queue for the next
	processingKey := consts.SuggestionDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.SuggestionDirtyKey, processingKey); err != nil {
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get suggestion dirty set error", "err", err)
		return
	}

	ids, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert suggestion dirty set error", "err", err)
		return
	}

	synced := 0
	for _, id := range ids {
		likes, err := s.actionSvc.GetLikeCount(ctx, id)
		if err != nil {
			log.ErrorContext(ctx, "load like count error", "id", id, "err", err)
			continue
		}
		comments, err := s.actionSvc.GetCommentCount(ctx, id)
		if err != nil {
			log.ErrorContext(ctx, "load comment count error", "id", id, "err", err)
			continue
		}
		views, err := s.actionSvc.GetViewCount(ctx, id)
		if err != nil {
			log.ErrorContext(ctx, "load view count error", "id", id, "err", err)
			continue
		}

		if err = s.suggestionSvc.SyncSuggestionCounts(ctx, id, likes, comments, views); err != nil {
			log.ErrorContext(ctx, "sync suggestion counts error", "id", id, "err", err)
			continue
		}
		synced++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete suggestion processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync suggestion metrics success",
		"dirty_count", len(ids),
		"synced_count", synced)
}
