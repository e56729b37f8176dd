package queries

import (
	"time"

	"playhall/internal/domain/revenue"
	"playhall/internal/domain/station"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type StationView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Status   string       `json:"status"`
	Session  *SessionView `json:"session,omitempty"`
}

type SessionView struct {
	ID               uuid.UUID       `json:"id"`
	Customer         string          `json:"customer"`
	Mode             string          `json:"mode"`
	StartedAt        time.Time       `json:"started_at"`
	EndsAt           *time.Time      `json:"ends_at,omitempty"`
	ElapsedSeconds   int64           `json:"elapsed_seconds"`
	RemainingSeconds *int64          `json:"remaining_seconds,omitempty"`
	TimeCharge       int64           `json:"time_charge"`
	ItemsCharge      int64           `json:"items_charge"`
	Total            int64           `json:"total"`
	Orders           []OrderItemView `json:"orders"`
}

type OrderItemView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Price   int64     `json:"price"`
	AddedAt time.Time `json:"added_at"`
}

type OfferView struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Minutes   int    `json:"minutes"`
	Price     int64  `json:"price"`
	OpenEnded bool   `json:"open_ended"`
}

type CategoryPricingView struct {
	Category   string      `json:"category"`
	HourlyRate int64       `json:"hourly_rate"`
	Offers     []OfferView `json:"offers"`
}

type InvoiceView struct {
	ID            uuid.UUID `json:"id"`
	StationID     string    `json:"station_id"`
	StationName   string    `json:"station_name"`
	Customer      string    `json:"customer"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	ActiveMinutes int64     `json:"active_minutes"`
	TimeCharge    int64     `json:"time_charge"`
	ItemsCharge   int64     `json:"items_charge"`
	Total         int64     `json:"total"`
}

type RevenueView struct {
	Lifetime int64          `json:"lifetime"`
	Daily    DailyStatsView `json:"daily"`
}

type DailyStatsView struct {
	Revenue       int64 `json:"revenue"`
	Invoices      int   `json:"invoices"`
	Items         int   `json:"items"`
	ActiveMinutes int64 `json:"active_minutes"`
}

// NewStationView projects a station and its live charge at `now`. Pure: it
// reads immutable session fields only, so the periodic re-render is
// idempotent.
func NewStationView(st *station.Station, now time.Time) *StationView {
	view := &StationView{
		ID:       st.ID(),
		Name:     st.Name(),
		Category: st.Category().String(),
		Status:   st.Status().String(),
	}

	sess := st.Session()
	if sess == nil {
		return view
	}

	charge := sess.LiveCharge(now)
	orders := sess.Orders()
	orderViews := make([]OrderItemView, 0, len(orders))
	for _, item := range orders {
		orderViews = append(orderViews, OrderItemView{
			ID:      item.ID(),
			Name:    item.Name(),
			Price:   item.Price().Units(),
			AddedAt: item.AddedAt(),
		})
	}

	sv := &SessionView{
		ID:             sess.ID(),
		Customer:       sess.Customer().String(),
		Mode:           sess.Billing().Mode().String(),
		StartedAt:      sess.StartedAt(),
		ElapsedSeconds: int64(sess.Elapsed(now) / time.Second),
		TimeCharge:     charge.TimeCharge.Units(),
		ItemsCharge:    charge.ItemsCharge.Units(),
		Total:          charge.Total.Units(),
		Orders:         orderViews,
	}
	if endsAt, ok := sess.Billing().EndsAt(); ok {
		t := endsAt
		sv.EndsAt = &t
	}
	if remaining, ok := sess.Remaining(now); ok {
		secs := int64(remaining / time.Second)
		sv.RemainingSeconds = &secs
	}

	view.Session = sv
	return view
}

// NewInvoiceView projects a committed invoice.
func NewInvoiceView(inv revenue.Invoice) *InvoiceView {
	return &InvoiceView{
		ID:            inv.ID,
		StationID:     inv.StationID,
		StationName:   inv.StationName,
		Customer:      inv.Customer,
		StartedAt:     inv.StartedAt,
		FinishedAt:    inv.FinishedAt,
		ActiveMinutes: int64(inv.Active / time.Minute),
		TimeCharge:    inv.TimeCharge.Units(),
		ItemsCharge:   inv.ItemsCharge.Units(),
		Total:         inv.Total.Units(),
	}
}
