package commands

import (
	"context"
	"time"
)

// Outcome labels reported for allocate and release.
const (
	ResultOK              = "ok"
	ResultNoSpot          = "no_spot"
	ResultBlocked         = "blocked"
	ResultNotFound        = "not_found"
	ResultNotOwned        = "not_owned"
	ResultAlreadyReleased = "already_released"
	ResultTransient       = "transient"
	ResultDiverged        = "diverged"
	ResultError           = "error"
)

type ParkingRecorder interface {
	RecordAllocate(ctx context.Context, lotID int64, result string, elapsed time.Duration)
	RecordRelease(ctx context.Context, result string, elapsed time.Duration, billedCents int64)
}

type NopRecorder struct{}

func (NopRecorder) RecordAllocate(context.Context, int64, string, time.Duration) {}

func (NopRecorder) RecordRelease(context.Context, string, time.Duration, int64) {}
