package reservation

import (
	"math"
	"math/bits"
	"time"

	"parkbuddy/internal/pkg/errs"
)

const (
	PolicyMinimumHour  = "minimum_hour"
	PolicyProportional = "proportional"
)

var (
	ErrUnknownPolicy = errs.New("unknown billing policy")
	ErrCostOverflow  = errs.New("cost exceeds the representable amount")
)

const (
	msPerHour     = int64(time.Hour / time.Millisecond)
	halfHourMs    = msPerHour / 2
	minimumBillMs = msPerHour
)

// BillingPolicy turns an elapsed parking interval into a cost. Implementations
// must be pure: the same inputs always produce the same cost.
type BillingPolicy interface {
	Name() string
	Charge(start, end time.Time, rate Money) (Money, error)
}

// MinimumHourPolicy bills max(1h, elapsed) at the hourly rate.
type MinimumHourPolicy struct{}

func (MinimumHourPolicy) Name() string { return PolicyMinimumHour }

func (MinimumHourPolicy) Charge(start, end time.Time, rate Money) (Money, error) {
	return charge(max(elapsedMs(start, end), minimumBillMs), rate)
}

// ProportionalPolicy bills exactly the elapsed time. Kept to reproduce bills
// issued before the one-hour floor.
type ProportionalPolicy struct{}

func (ProportionalPolicy) Name() string { return PolicyProportional }

func (ProportionalPolicy) Charge(start, end time.Time, rate Money) (Money, error) {
	return charge(elapsedMs(start, end), rate)
}

func PolicyByName(name string) (BillingPolicy, error) {
	switch name {
	case "", PolicyMinimumHour:
		return MinimumHourPolicy{}, nil
	case PolicyProportional:
		return ProportionalPolicy{}, nil
	default:
		return nil, errs.Wrapf(ErrUnknownPolicy, "policy %q", name)
	}
}

func elapsedMs(start, end time.Time) int64 {
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Milliseconds()
}

// charge rounds half up to whole cents. The product is taken in 128 bits so a
// long stay at a high rate fails instead of wrapping.
func charge(billableMs int64, rate Money) (Money, error) {
	hi, lo := bits.Mul64(uint64(billableMs), uint64(rate.cents))
	lo, carry := bits.Add64(lo, uint64(halfHourMs), 0)
	hi += carry
	if hi >= uint64(msPerHour) {
		return Money{}, errs.Wrapf(ErrCostOverflow, "%dms at %s/h", billableMs, rate)
	}
	cents, _ := bits.Div64(hi, lo, uint64(msPerHour))
	if cents > math.MaxInt64 {
		return Money{}, errs.Wrapf(ErrCostOverflow, "%dms at %s/h", billableMs, rate)
	}
	return Money{cents: int64(cents)}, nil
}
