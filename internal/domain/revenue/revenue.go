package revenue

import (
	"time"

	"playhall/internal/domain/pricing"

	"github.com/google/uuid"
)

// Invoice is the final bill committed when a session finishes.
type Invoice struct {
	ID          uuid.UUID
	StationID   string
	StationName string
	Customer    string
	StartedAt   time.Time
	FinishedAt  time.Time
	Active      time.Duration
	ItemCount   int
	TimeCharge  pricing.Money
	ItemsCharge pricing.Money
	Total       pricing.Money
}

// DailyStats are the rolling counters that reset when a stale snapshot
// (older than the staleness threshold) is loaded. Lifetime revenue never
// resets.
type DailyStats struct {
	Revenue       pricing.Money
	Invoices      int
	Items         int
	ActiveMinutes int64
}

type State struct {
	lifetime pricing.Money
	daily    DailyStats
}

func NewState() *State {
	return &State{}
}

func Reconstruct(lifetime pricing.Money, daily DailyStats) *State {
	return &State{lifetime: lifetime, daily: daily}
}

func (s *State) Lifetime() pricing.Money {
	return s.lifetime
}

func (s *State) Daily() DailyStats {
	return s.daily
}

// Commit adds a finished session's invoice to the aggregates. Callers
// guarantee exactly-once commit per session; the state machine on the
// station side makes a second finish fail before reaching here.
func (s *State) Commit(inv Invoice) {
	s.lifetime = s.lifetime.Add(inv.Total)
	s.daily.Revenue = s.daily.Revenue.Add(inv.Total)
	s.daily.Invoices++
	s.daily.Items += inv.ItemCount
	s.daily.ActiveMinutes += int64(inv.Active / time.Minute)
}

func (s *State) ResetDaily() {
	s.daily = DailyStats{}
}
