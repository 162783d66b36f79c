package shared

import (
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the pre-validated caller identity handed to the engine by the
// transport layer.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
	Active bool
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// ReleaseTarget is a locked open-or-closed reservation with the billing
// inputs of its lot.
type ReleaseTarget struct {
	Reservation *reservation.Reservation
	LotID       int64
	HourlyRate  reservation.Money
}

type SpotSnapshot struct {
	ID     int64
	LotID  int64
	Status spot.Status
}
