package consts

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// CtxKey types request-scoped context values so keys cannot collide with
// other packages.
type CtxKey string

const CtxUserIDKey CtxKey = "user_id"

const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
	ProviderKakao  = "KAKAO"
	ProviderNaver  = "NAVER"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)
