package consts

const (
	SuggestionLikeKey    = "suggestion:like:"
	SuggestionCommentKey = "suggestion:comment:"
	SuggestionViewKey    = "suggestion:view:"
	SuggestionDirtyKey   = "suggestion:dirty"
	SuggestionStatsKey   = "suggestion:stats"
	TokenDenyKey         = "auth:deny:"
)

const (
	SuggestionMetricLock = "lock:suggestion:metric"
)
