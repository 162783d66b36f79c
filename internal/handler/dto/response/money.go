package response

import "parkbuddy/internal/domain/reservation"

// Amount is money rendered both ways: "15.00" and 1500.
type Amount struct {
	Value string `json:"value"`
	Cents int64  `json:"cents"`
}

func NewAmount(cents int64) Amount {
	if cents < 0 {
		cents = 0
	}
	return Amount{Value: reservation.MustMoney(cents).String(), Cents: cents}
}

func NewAmountPtr(cents *int64) *Amount {
	if cents == nil {
		return nil
	}
	a := NewAmount(*cents)
	return &a
}
