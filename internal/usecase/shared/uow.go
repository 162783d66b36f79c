package shared

import (
	"context"
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/domain/user"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransient marks store failures (serialization, deadlock, lock or
// statement timeout) that the caller may retry.
var ErrTransient = errs.New("transient store failure")

// Zero-row outcomes of the release writes. Repositories mark their conflict
// errors with these so a lost race is distinguishable from a rejected write.
var (
	ErrReservationAlreadyClosed = errs.New("reservation already closed")
	ErrSpotNotOccupied          = errs.New("spot not occupied")
)

type UnitOfWork interface {
	// Within: single-attempt READ COMMITTED transaction. Transient failures
	// are marked with ErrTransient and returned, never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinRetry: like Within, with bounded backoff on transient failures.
	// Only for work whose effect is idempotent with respect to its target state.
	WithinRetry(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: REPEATABLE READ read-only snapshot for multi-statement reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lots() LotRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	SpotByID(ctx context.Context, id int64) (*SpotSnapshot, error)
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot, now time.Time) (int64, error)
	FindForShare(ctx context.Context, id int64) (*lot.Lot, error)
	FindForUpdate(ctx context.Context, id int64) (*lot.Lot, error)
	Update(ctx context.Context, l *lot.Lot, now time.Time) error
	Delete(ctx context.Context, id int64) error
}

type SpotRepository interface {
	// ClaimAvailable flips the lowest-id available spot of the lot to Occupied.
	// Returns a NOT_FOUND repository error when none can be claimed.
	ClaimAvailable(ctx context.Context, lotID int64, now time.Time) (*spot.Spot, error)
	Vacate(ctx context.Context, spotID int64, now time.Time) error
	FindForUpdate(ctx context.Context, id int64) (*spot.Spot, error)
	CountOccupied(ctx context.Context, lotID int64) (int, error)
	Add(ctx context.Context, lotID int64, n int, now time.Time) error
	// RetireFree retires up to n free spots, highest id first, and reports how many.
	RetireFree(ctx context.Context, lotID int64, n int, now time.Time) (int, error)
	Retire(ctx context.Context, spotID int64, now time.Time) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (*reservation.Reservation, error)
	FindForRelease(ctx context.Context, id int64) (*ReleaseTarget, error)
	Close(ctx context.Context, r *reservation.Reservation) error
	CountOpenByLot(ctx context.Context, lotID int64) (int, error)
	HasOpenOnSpot(ctx context.Context, spotID int64) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User, now time.Time) (*user.User, error)
	// ActiveForShare locks the user row against concurrent blocking.
	ActiveForShare(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
