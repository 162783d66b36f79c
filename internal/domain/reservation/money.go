package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"parkbuddy/internal/pkg/errs"
)

var (
	ErrNegativeAmount = errs.New("amount cannot be negative")
	ErrInvalidAmount  = errs.New("amount must be a decimal with at most two places")
)

// maxWholeUnits keeps units*100+cents inside int64.
const maxWholeUnits = (1 << 62) / 100

var amountRegex = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]{1,2}))?$`)

// Money is a non-negative amount in integer cents of the single billing currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustMoney is for constants and trusted store values.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney accepts "15", "15.5" and "15.50". Signs, exponents and
// separators other than a single dot are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}
	m := amountRegex.FindStringSubmatch(s)
	if m == nil {
		return Money{}, ErrInvalidAmount
	}
	whole, frac := m[1], m[2]
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > maxWholeUnits {
		return Money{}, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	return NewMoney(units*100 + cents)
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String renders two decimal places, e.g. "15.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
