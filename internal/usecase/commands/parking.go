package commands

import (
	"context"
	"log/slog"
	"time"

	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/shared"
)

type AllocateResult struct {
	ReservationID int64
	SpotID        int64
	LotID         int64
	StartedAt     time.Time
}

type ReleaseResult struct {
	ReservationID int64
	SpotID        int64
	LotID         int64
	StartedAt     time.Time
	EndedAt       time.Time
	Cost          reservation.Money
}

// ParkingCommands is the allocation and release protocol. Neither operation
// retries: a transient store failure is returned marked with shared.ErrTransient.
type ParkingCommands interface {
	Allocate(ctx context.Context, lotID int64, actor shared.Actor) (*AllocateResult, error)
	Release(ctx context.Context, reservationID int64, actor shared.Actor) (*ReleaseResult, error)
}

type parkingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   reservation.BillingPolicy
	recorder ParkingRecorder
}

func NewParkingUseCase(uow shared.UnitOfWork, clk clock.Clock, policy reservation.BillingPolicy, recorder ParkingRecorder) ParkingCommands {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &parkingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		policy:   policy,
		recorder: recorder,
	}
}

func (uc *parkingUseCaseImpl) Allocate(ctx context.Context, lotID int64, actor shared.Actor) (*AllocateResult, error) {
	began := time.Now()
	result, err := uc.allocate(ctx, lotID, actor)
	outcome := outcomeOf(err)
	uc.recorder.RecordAllocate(ctx, lotID, outcome, time.Since(began))

	switch outcome {
	case ResultOK:
		slog.InfoContext(ctx, "spot allocated",
			"lot_id", lotID,
			"spot_id", result.SpotID,
			"reservation_id", result.ReservationID,
			"user_id", actor.UserID)
	case ResultNoSpot, ResultBlocked, ResultNotFound:
		slog.InfoContext(ctx, "allocation refused",
			"lot_id", lotID,
			"user_id", actor.UserID,
			"reason", err.Error())
	case ResultTransient:
		slog.WarnContext(ctx, "allocation aborted by store", "lot_id", lotID, "error", err.Error())
	default:
		slog.ErrorContext(ctx, "allocation failed", "lot_id", lotID, "error", err.Error())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *parkingUseCaseImpl) allocate(ctx context.Context, lotID int64, actor shared.Actor) (*AllocateResult, error) {
	if !actor.Active {
		return nil, ErrUserBlocked
	}

	var result *AllocateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Users().ActiveForShare(ctx, actor.UserID)
		if err != nil {
			return markNotFound(err, ErrUserNotFound)
		}
		if !active {
			return ErrUserBlocked
		}

		if _, err := tx.Lots().FindForShare(ctx, lotID); err != nil {
			return markNotFound(err, ErrLotNotFound)
		}

		now := uc.clock.Now()
		claimed, err := tx.Spots().ClaimAvailable(ctx, lotID, now)
		if err != nil {
			return markNotFound(err, ErrNoAvailableSpot)
		}

		created, err := tx.Reservations().Create(ctx, reservation.Open(claimed.ID(), actor.UserID, now))
		if err != nil {
			return err
		}

		result = &AllocateResult{
			ReservationID: created.ID(),
			SpotID:        claimed.ID(),
			LotID:         lotID,
			StartedAt:     created.StartedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *parkingUseCaseImpl) Release(ctx context.Context, reservationID int64, actor shared.Actor) (*ReleaseResult, error) {
	began := time.Now()
	result, err := uc.release(ctx, reservationID, actor)
	outcome := outcomeOf(err)

	var billed int64
	if result != nil {
		billed = result.Cost.Cents()
	}
	uc.recorder.RecordRelease(ctx, outcome, time.Since(began), billed)

	switch outcome {
	case ResultOK:
		slog.InfoContext(ctx, "spot released",
			"reservation_id", reservationID,
			"spot_id", result.SpotID,
			"cost", result.Cost.String(),
			"user_id", actor.UserID)
	case ResultAlreadyReleased, ResultNotFound, ResultNotOwned:
		slog.InfoContext(ctx, "release refused",
			"reservation_id", reservationID,
			"user_id", actor.UserID,
			"reason", err.Error())
	case ResultTransient:
		slog.WarnContext(ctx, "release aborted by store", "reservation_id", reservationID, "error", err.Error())
	case ResultDiverged:
		slog.ErrorContext(ctx, "release found spot state out of sync",
			"reservation_id", reservationID,
			"error", err.Error())
	default:
		slog.ErrorContext(ctx, "release failed", "reservation_id", reservationID, "error", err.Error())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *parkingUseCaseImpl) release(ctx context.Context, reservationID int64, actor shared.Actor) (*ReleaseResult, error) {
	var result *ReleaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		target, err := tx.Reservations().FindForRelease(ctx, reservationID)
		if err != nil {
			return markNotFound(err, ErrReservationNotFound)
		}
		res := target.Reservation
		if !actor.IsAdmin() && !res.IsOwnedBy(actor.UserID) {
			return ErrReservationNotOwned
		}

		now := uc.clock.Now()
		cost, err := res.Close(now, target.HourlyRate, uc.policy)
		if err != nil {
			if errs.Is(err, reservation.ErrAlreadyClosed) {
				return errs.Mark(err, ErrAlreadyReleased)
			}
			return err
		}

		if err := tx.Reservations().Close(ctx, res); err != nil {
			if errs.Is(err, shared.ErrReservationAlreadyClosed) {
				return errs.Mark(err, ErrAlreadyReleased)
			}
			return errs.Wrapf(err, "close reservation %d", res.ID())
		}
		if err := tx.Spots().Vacate(ctx, res.SpotID(), now); err != nil {
			if errs.Is(err, shared.ErrSpotNotOccupied) {
				err = errs.Mark(err, ErrSpotStateDiverged)
			}
			return errs.Wrapf(err, "spot %d of reservation %d", res.SpotID(), res.ID())
		}

		result = &ReleaseResult{
			ReservationID: res.ID(),
			SpotID:        res.SpotID(),
			LotID:         target.LotID,
			StartedAt:     res.StartedAt(),
			EndedAt:       *res.EndedAt(),
			Cost:          cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errs.Is(err, ErrNoAvailableSpot):
		return ResultNoSpot
	case errs.Is(err, ErrUserBlocked):
		return ResultBlocked
	case errs.Is(err, ErrAlreadyReleased):
		return ResultAlreadyReleased
	case errs.Is(err, ErrReservationNotOwned):
		return ResultNotOwned
	case errs.Is(err, ErrLotNotFound), errs.Is(err, ErrUserNotFound), errs.Is(err, ErrReservationNotFound):
		return ResultNotFound
	case errs.Is(err, shared.ErrTransient):
		return ResultTransient
	case errs.Is(err, ErrSpotStateDiverged):
		return ResultDiverged
	default:
		return ResultError
	}
}
