package queries

import "parkbuddy/internal/pkg/errs"

var (
	ErrLotNotFound         = errs.New("lot not found")
	ErrSpotNotFound        = errs.New("spot not found")
	ErrUserNotFound        = errs.New("user not found")
	ErrUserInactive        = errs.New("user inactive")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidWindow       = errs.New("revenue window start must be before its end")
	ErrInvalidPopularLimit = errs.New("popular lots limit must be positive")
)
