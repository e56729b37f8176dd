package session

import (
	"strings"
	"time"

	"playhall/internal/domain/pricing"

	"github.com/google/uuid"
)

const DefaultCustomerName = "Guest"

type Customer struct {
	name string
}

func NewCustomer(name string) Customer {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCustomerName
	}
	return Customer{name: name}
}

func (c Customer) String() string {
	return c.name
}

// Billing is the tagged pricing variant of a session: a timed block with a
// fixed end, or open-ended metering against an hourly rate. There is no
// sentinel timestamp; a metered session simply has no end.
type Billing struct {
	mode       Mode
	endsAt     time.Time
	hourlyRate pricing.Money
}

func TimedBilling(endsAt time.Time) Billing {
	return Billing{mode: ModeTimed, endsAt: endsAt}
}

func MeteredBilling(hourlyRate pricing.Money) Billing {
	return Billing{mode: ModeMetered, hourlyRate: hourlyRate}
}

func (b Billing) Mode() Mode {
	return b.mode
}

func (b Billing) IsMetered() bool {
	return b.mode == ModeMetered
}

// EndsAt reports the fixed end timestamp; ok is false for metered billing.
func (b Billing) EndsAt() (time.Time, bool) {
	if b.mode != ModeTimed {
		return time.Time{}, false
	}
	return b.endsAt, true
}

func (b Billing) HourlyRate() pricing.Money {
	return b.hourlyRate
}

func (b Billing) shifted(d time.Duration) Billing {
	if b.mode != ModeTimed {
		return b
	}
	b.endsAt = b.endsAt.Add(d)
	return b
}

// OrderItem is an ancillary purchase on a session's bill. Immutable once
// added; removed only when the whole session is cleared.
type OrderItem struct {
	id      uuid.UUID
	name    string
	price   pricing.Money
	addedAt time.Time
}

func NewOrderItem(name string, price pricing.Money, now time.Time) (OrderItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return OrderItem{}, ErrEmptyOrderName
	}
	if price.Units() < 0 {
		return OrderItem{}, ErrNegativeOrderPrice
	}
	return OrderItem{
		id:      uuid.New(),
		name:    name,
		price:   price,
		addedAt: now,
	}, nil
}

func ReconstructOrderItem(id uuid.UUID, name string, price pricing.Money, addedAt time.Time) OrderItem {
	return OrderItem{id: id, name: name, price: price, addedAt: addedAt}
}

func (o OrderItem) ID() uuid.UUID        { return o.id }
func (o OrderItem) Name() string         { return o.name }
func (o OrderItem) Price() pricing.Money { return o.price }
func (o OrderItem) AddedAt() time.Time   { return o.addedAt }

// Charge is the live, not-yet-finalized bill projection for a session.
type Charge struct {
	TimeCharge  pricing.Money
	ItemsCharge pricing.Money
	Total       pricing.Money
}
