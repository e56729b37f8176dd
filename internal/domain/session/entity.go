package session

import (
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaused      = errs.New("session is already paused")
	ErrNotPaused          = errs.New("session is not paused")
	ErrOpenEndedExtend    = errs.New("open-ended session cannot be extended")
	ErrNonPositiveMinutes = errs.New("extension minutes must be positive")
	ErrNegativeExtendFee  = errs.New("extension price cannot be negative")
	ErrEmptyOrderName     = errs.New("order item name cannot be empty")
	ErrNegativeOrderPrice = errs.New("order item price cannot be negative")
)

// Session is one billing period on a station, from open to close.
//
// startedAt is set exactly once at creation and never mutated. All derived
// values (elapsed, remaining, live charge) are computed from `now` and the
// immutable fields only, so recomputation is idempotent.
type Session struct {
	id          uuid.UUID
	customer    Customer
	startedAt   time.Time
	billing     Billing
	basePrice   pricing.Money
	pausedTotal time.Duration
	pausedAt    *time.Time
	state       State
	orders      []OrderItem
}

// Open starts a session from the chosen offer. An open-ended offer selects
// metered billing against the hourly rate; any other offer prepays a fixed
// block ending at now + offer duration.
func Open(customer string, offer pricing.Offer, hourlyRate pricing.Money, now time.Time) *Session {
	s := &Session{
		id:        uuid.New(),
		customer:  NewCustomer(customer),
		startedAt: now,
		state:     StateOccupied,
	}
	if offer.IsOpenEnded() {
		s.billing = MeteredBilling(hourlyRate)
	} else {
		s.billing = TimedBilling(now.Add(offer.Duration()))
		s.basePrice = offer.Price()
	}
	return s
}

func Reconstruct(
	id uuid.UUID,
	customer Customer,
	startedAt time.Time,
	billing Billing,
	basePrice pricing.Money,
	pausedTotal time.Duration,
	pausedAt *time.Time,
	state State,
	orders []OrderItem,
) *Session {
	return &Session{
		id:          id,
		customer:    customer,
		startedAt:   startedAt,
		billing:     billing,
		basePrice:   basePrice,
		pausedTotal: pausedTotal,
		pausedAt:    pausedAt,
		state:       state,
		orders:      orders,
	}
}

func (s *Session) ID() uuid.UUID              { return s.id }
func (s *Session) Customer() Customer         { return s.customer }
func (s *Session) StartedAt() time.Time       { return s.startedAt }
func (s *Session) Billing() Billing           { return s.billing }
func (s *Session) BasePrice() pricing.Money   { return s.basePrice }
func (s *Session) PausedTotal() time.Duration { return s.pausedTotal }
func (s *Session) State() State               { return s.state }

func (s *Session) PausedAt() *time.Time {
	if s.pausedAt == nil {
		return nil
	}
	t := *s.pausedAt
	return &t
}

func (s *Session) Orders() []OrderItem {
	out := make([]OrderItem, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Session) IsPaused() bool {
	return s.state == StatePaused
}

func (s *Session) Pause(now time.Time) error {
	if s.state == StatePaused {
		return ErrAlreadyPaused
	}
	t := now
	s.pausedAt = &t
	s.state = StatePaused
	return nil
}

// Resume shifts a timed end forward by the exact pause duration, so the
// remaining time at resume equals the remaining time at pause.
func (s *Session) Resume(now time.Time) error {
	if s.state != StatePaused || s.pausedAt == nil {
		return ErrNotPaused
	}
	gap := now.Sub(*s.pausedAt)
	if gap < 0 {
		gap = 0
	}
	s.pausedTotal += gap
	s.billing = s.billing.shifted(gap)
	s.pausedAt = nil
	s.state = StateOccupied
	return nil
}

// Extend adds a prepaid block to a timed session. Extending a metered
// session is rejected outright rather than silently ignored.
func (s *Session) Extend(minutes int, price pricing.Money) error {
	if s.billing.IsMetered() {
		return ErrOpenEndedExtend
	}
	if minutes <= 0 {
		return ErrNonPositiveMinutes
	}
	if price.Units() < 0 {
		return ErrNegativeExtendFee
	}
	s.billing = s.billing.shifted(time.Duration(minutes) * time.Minute)
	s.basePrice = s.basePrice.Add(price)
	return nil
}

func (s *Session) AddOrderItem(name string, price pricing.Money, now time.Time) (OrderItem, error) {
	item, err := NewOrderItem(name, price, now)
	if err != nil {
		return OrderItem{}, err
	}
	s.orders = append(s.orders, item)
	return item, nil
}

// Elapsed is billable wall-clock time: total time since start minus every
// completed pause and the in-progress one.
func (s *Session) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(s.startedAt) - s.pausedTotal
	if s.state == StatePaused && s.pausedAt != nil {
		elapsed -= now.Sub(*s.pausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// Remaining reports time left on a timed session; ok is false for metered
// sessions. The value goes negative once the session is overdue; the station
// stays occupied and billable either way.
func (s *Session) Remaining(now time.Time) (time.Duration, bool) {
	endsAt, ok := s.billing.EndsAt()
	if !ok {
		return 0, false
	}
	if s.state == StatePaused && s.pausedAt != nil {
		return endsAt.Sub(*s.pausedAt), true
	}
	return endsAt.Sub(now), true
}

func (s *Session) OrdersTotal() pricing.Money {
	total := pricing.NewMoney(0)
	for _, item := range s.orders {
		total = total.Add(item.Price())
	}
	return total
}

// LiveCharge is a deterministic, side-effect-free projection of the current
// bill. Timed sessions charge the flat prepaid base price regardless of
// `now`; metered sessions charge floor(elapsedMinutes * hourlyRate / 60).
func (s *Session) LiveCharge(now time.Time) Charge {
	timeCharge := s.basePrice
	if s.billing.IsMetered() {
		minutes := int64(s.Elapsed(now) / time.Minute)
		timeCharge = s.billing.HourlyRate().ForMinutes(minutes)
	}
	itemsCharge := s.OrdersTotal()
	return Charge{
		TimeCharge:  timeCharge,
		ItemsCharge: itemsCharge,
		Total:       timeCharge.Add(itemsCharge),
	}
}
