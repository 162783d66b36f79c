package spot

import (
	"time"

	"parkbuddy/internal/pkg/errs"
)

var (
	ErrInvalidStatus = errs.New("invalid spot status")
	ErrNotAvailable  = errs.New("spot is not available")
	ErrNotOccupied   = errs.New("spot is not occupied")
	ErrRetired       = errs.New("spot is retired")
)

type Status string

const (
	StatusAvailable Status = "A"
	StatusOccupied  Status = "O"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusAvailable, StatusOccupied:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Label is the human readable form used in API responses.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Spot belongs to exactly one lot for its whole life. It only becomes
// Occupied through allocation and Available through release.
type Spot struct {
	id        int64
	lotID     int64
	status    Status
	retiredAt *time.Time
}

func ReconstructSpot(id, lotID int64, status Status, retiredAt *time.Time) *Spot {
	return &Spot{
		id:        id,
		lotID:     lotID,
		status:    status,
		retiredAt: retiredAt,
	}
}

func (s *Spot) Occupy() error {
	if s.IsRetired() {
		return ErrRetired
	}
	if s.status != StatusAvailable {
		return ErrNotAvailable
	}
	s.status = StatusOccupied
	return nil
}

func (s *Spot) Vacate() error {
	if s.status != StatusOccupied {
		return ErrNotOccupied
	}
	s.status = StatusAvailable
	return nil
}

func (s *Spot) Retire(now time.Time) error {
	if s.IsRetired() {
		return ErrRetired
	}
	if s.status == StatusOccupied {
		return ErrNotAvailable
	}
	s.retiredAt = &now
	return nil
}

func (s *Spot) IsAvailable() bool {
	return s.status == StatusAvailable && !s.IsRetired()
}

func (s *Spot) IsRetired() bool {
	return s.retiredAt != nil
}

func (s *Spot) ID() int64             { return s.id }
func (s *Spot) LotID() int64          { return s.lotID }
func (s *Spot) Status() Status        { return s.status }
func (s *Spot) RetiredAt() *time.Time { return s.retiredAt }
