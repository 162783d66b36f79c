package commands

import "parkbuddy/internal/pkg/errs"

var (
	ErrLotNotFound         = errs.New("lot not found")
	ErrSpotNotFound        = errs.New("spot not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUserNotFound        = errs.New("user not found")

	// Expected outcomes: logged at info, never as failures of the engine.
	ErrNoAvailableSpot = errs.New("no available spot")
	ErrAlreadyReleased = errs.New("reservation already released")

	ErrUserBlocked         = errs.New("user is blocked")
	ErrReservationNotOwned = errs.New("reservation not owned by user")
	ErrSpotInUse           = errs.New("spot has an open reservation")
	ErrLotInUse            = errs.New("lot has open reservations")

	// ErrSpotStateDiverged means a released reservation's spot was not occupied.
	ErrSpotStateDiverged = errs.New("spot of an open reservation was not occupied")

	ErrUserInactive         = errs.New("user inactive")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email already registered")
)
