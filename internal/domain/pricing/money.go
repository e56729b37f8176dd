package pricing

import "errors"

// Money is an amount in minor currency units.
type Money struct {
	units int64
}

func NewMoney(units int64) Money {
	return Money{units: units}
}

func NewNonNegativeMoney(units int64) (Money, error) {
	if units < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{units: units}, nil
}

func (m Money) Units() int64 {
	return m.units
}

func (m Money) IsZero() bool {
	return m.units == 0
}

func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}

// ForMinutes treats m as an hourly rate and returns the metered charge for
// the given whole minutes, floored to the minor unit.
func (m Money) ForMinutes(minutes int64) Money {
	if minutes < 0 {
		minutes = 0
	}
	return Money{units: m.units * minutes / 60}
}
