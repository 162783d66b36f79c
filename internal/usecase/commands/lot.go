package commands

import (
	"context"
	"log/slog"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/shared"
)

type CreateLotInput struct {
	Name       string
	Address    string
	PinCode    string
	HourlyRate reservation.Money
	SpotCount  int
}

type ResizeLotResult struct {
	LotID     int64
	SpotCount int
	Added     int
	Retired   int
}

// LotCommands administers lots. The transactions only converge the store to
// a target state, so they run under WithinRetry.
type LotCommands interface {
	CreateLot(ctx context.Context, in CreateLotInput) (int64, error)
	ResizeLot(ctx context.Context, lotID int64, patch lot.Patch) (*ResizeLotResult, error)
	DeleteLot(ctx context.Context, lotID int64) error
	RemoveSpot(ctx context.Context, spotID int64) error
}

type lotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLotUseCase(uow shared.UnitOfWork, clk clock.Clock) LotCommands {
	return &lotUseCaseImpl{uow: uow, clock: clk}
}

func (uc *lotUseCaseImpl) CreateLot(ctx context.Context, in CreateLotInput) (int64, error) {
	l, err := lot.NewLot(in.Name, in.Address, in.PinCode, in.HourlyRate, in.SpotCount)
	if err != nil {
		return 0, err
	}

	var lotID int64
	err = uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		id, err := tx.Lots().Create(ctx, l, now)
		if err != nil {
			return err
		}
		if err := tx.Spots().Add(ctx, id, l.SpotCount(), now); err != nil {
			return err
		}
		lotID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "lot created", "lot_id", lotID, "spots", l.SpotCount())
	return lotID, nil
}

func (uc *lotUseCaseImpl) ResizeLot(ctx context.Context, lotID int64, patch lot.Patch) (*ResizeLotResult, error) {
	var result *ResizeLotResult
	err := uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindForUpdate(ctx, lotID)
		if err != nil {
			return markNotFound(err, ErrLotNotFound)
		}
		occupied, err := tx.Spots().CountOccupied(ctx, lotID)
		if err != nil {
			return err
		}

		plan, err := l.Apply(patch, occupied)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := tx.Lots().Update(ctx, l, now); err != nil {
			return err
		}
		if plan.Add > 0 {
			if err := tx.Spots().Add(ctx, lotID, plan.Add, now); err != nil {
				return err
			}
		}
		if plan.Retire > 0 {
			retired, err := tx.Spots().RetireFree(ctx, lotID, plan.Retire, now)
			if err != nil {
				return err
			}
			if retired < plan.Retire {
				return errs.Wrapf(ErrSpotInUse, "retired %d of %d spots", retired, plan.Retire)
			}
		}

		result = &ResizeLotResult{
			LotID:     lotID,
			SpotCount: l.SpotCount(),
			Added:     plan.Add,
			Retired:   plan.Retire,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "lot updated",
		"lot_id", lotID,
		"spot_count", result.SpotCount,
		"added", result.Added,
		"retired", result.Retired)
	return result, nil
}

func (uc *lotUseCaseImpl) DeleteLot(ctx context.Context, lotID int64) error {
	err := uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().FindForUpdate(ctx, lotID); err != nil {
			return markNotFound(err, ErrLotNotFound)
		}
		open, err := tx.Reservations().CountOpenByLot(ctx, lotID)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrLotInUse
		}
		return markNotFound(tx.Lots().Delete(ctx, lotID), ErrLotNotFound)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "lot deleted", "lot_id", lotID)
	return nil
}

// RemoveSpot locks the lot before the spot, the same order allocate uses.
func (uc *lotUseCaseImpl) RemoveSpot(ctx context.Context, spotID int64) error {
	err := uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SpotByID(ctx, spotID)
		if err != nil {
			return markNotFound(err, ErrSpotNotFound)
		}
		l, err := tx.Lots().FindForUpdate(ctx, snap.LotID)
		if err != nil {
			return markNotFound(err, ErrLotNotFound)
		}
		s, err := tx.Spots().FindForUpdate(ctx, spotID)
		if err != nil {
			return markNotFound(err, ErrSpotNotFound)
		}

		open, err := tx.Reservations().HasOpenOnSpot(ctx, spotID)
		if err != nil {
			return err
		}
		if open {
			return ErrSpotInUse
		}

		now := uc.clock.Now()
		if err := s.Retire(now); err != nil {
			if errs.Is(err, spot.ErrNotAvailable) {
				return errs.Mark(err, ErrSpotInUse)
			}
			return err
		}
		if err := tx.Spots().Retire(ctx, spotID, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSpotInUse)
			}
			return err
		}

		if err := l.DropSpot(); err != nil {
			return err
		}
		return tx.Lots().Update(ctx, l, now)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "spot removed", "spot_id", spotID)
	return nil
}
