package lot

import (
	"regexp"
	"strings"

	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/pkg/errs"
)

var (
	ErrInvalidName      = errs.New("lot name must be 1-100 characters")
	ErrInvalidAddress   = errs.New("lot address must be 1-255 characters")
	ErrInvalidPinCode   = errs.New("pin code must be 4-10 digits")
	ErrInvalidSpotCount = errs.New("spot count must be between 0 and 10000")
	ErrInvalidRate      = errs.New("hourly rate must be at most 100000.00")
)

const (
	maxNameLength    = 100
	maxAddressLength = 255
	MaxSpotCount     = 10000
)

// MaxHourlyRate bounds a lot's rate so a year-long stay still bills in int64 cents.
var MaxHourlyRate = reservation.MustMoney(10_000_000)

func ValidateHourlyRate(rate reservation.Money) error {
	if rate.Cents() > MaxHourlyRate.Cents() {
		return ErrInvalidRate
	}
	return nil
}

var pinCodeRegex = regexp.MustCompile(`^[0-9]{4,10}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxAddressLength {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: s}, nil
}

func (a Address) Value() string { return a.value }

type PinCode struct {
	value string
}

func NewPinCode(s string) (PinCode, error) {
	s = strings.TrimSpace(s)
	if !pinCodeRegex.MatchString(s) {
		return PinCode{}, ErrInvalidPinCode
	}
	return PinCode{value: s}, nil
}

func (p PinCode) Value() string { return p.value }

func ValidateSpotCount(n int) error {
	if n < 0 || n > MaxSpotCount {
		return ErrInvalidSpotCount
	}
	return nil
}
