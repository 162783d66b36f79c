package reservation

import (
	"time"

	"parkbuddy/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed = errs.New("reservation is already closed")
	ErrInvalidSpan   = errs.New("reservation end precedes start")
)

type Reservation struct {
	id        int64
	spotID    int64
	userID    uuid.UUID
	startedAt time.Time
	endedAt   *time.Time
	cost      *Money
}

// Open starts a reservation on a claimed spot. The id is assigned by the store.
func Open(spotID int64, userID uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		spotID:    spotID,
		userID:    userID,
		startedAt: now,
	}
}

func ReconstructReservation(
	id, spotID int64,
	userID uuid.UUID,
	startedAt time.Time,
	endedAt *time.Time,
	cost *Money,
) (*Reservation, error) {
	if (endedAt == nil) != (cost == nil) {
		return nil, errs.New("reservation end and cost must be set together")
	}
	if endedAt != nil && endedAt.Before(startedAt) {
		return nil, ErrInvalidSpan
	}
	return &Reservation{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		startedAt: startedAt,
		endedAt:   endedAt,
		cost:      cost,
	}, nil
}

// Close sets end and cost once. end is clamped to start so a clock that
// stepped backwards never yields a negative span.
func (r *Reservation) Close(now time.Time, rate Money, policy BillingPolicy) (Money, error) {
	if r.IsClosed() {
		return Money{}, ErrAlreadyClosed
	}

	end := now
	if end.Before(r.startedAt) {
		end = r.startedAt
	}
	cost, err := policy.Charge(r.startedAt, end, rate)
	if err != nil {
		return Money{}, err
	}

	r.endedAt = &end
	r.cost = &cost
	return cost, nil
}

func (r *Reservation) IsClosed() bool {
	return r.endedAt != nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Duration is zero while the reservation is open.
func (r *Reservation) Duration() time.Duration {
	if r.endedAt == nil {
		return 0
	}
	return r.endedAt.Sub(r.startedAt)
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) SpotID() int64        { return r.spotID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) StartedAt() time.Time { return r.startedAt }
func (r *Reservation) EndedAt() *time.Time  { return r.endedAt }
func (r *Reservation) Cost() *Money         { return r.cost }
