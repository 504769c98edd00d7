package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameter")
	ErrRegionCodeInvalid       = errors.New("invalid region code")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserExist               = errors.New("user already exists")
	ErrEmailExist              = errors.New("email already registered")
	ErrPasswordIncorrect       = errors.New("incorrect password")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrTokenInvalid            = errors.New("invalid token")
	ErrOAuthExchange           = errors.New("oauth code exchange failed")
	ErrSuggestionNotFound      = errors.New("suggestion not found")
	ErrCommentNotFound         = errors.New("comment not found")
	ErrCommentDepth            = errors.New("replies to replies are not allowed")
	ErrActionDuplicate         = errors.New("duplicate action")
	ErrStatusTransition        = errors.New("status transition not allowed")
	ErrPlanNotFound            = errors.New("investment plan not found")
	ErrAlertNotFound           = errors.New("alert not found")
	ErrBoundsInvalid           = errors.New("invalid map bounds")
	UnauthorizedError          = errors.New("permission denied")
	UnExpectedError            = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrRegionCodeInvalid:       BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserExist:               Conflict,
	ErrEmailExist:              Conflict,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrTokenInvalid:            Unauthorized,
	ErrOAuthExchange:           Unauthorized,
	ErrSuggestionNotFound:      NotFound,
	ErrCommentNotFound:         NotFound,
	ErrCommentDepth:            BadRequest,
	ErrActionDuplicate:         Conflict,
	ErrStatusTransition:        Conflict,
	ErrPlanNotFound:            NotFound,
	ErrAlertNotFound:           NotFound,
	ErrBoundsInvalid:           BadRequest,
	UnauthorizedError:          Forbidden,
	UnExpectedError:            InternalServerError,
}
