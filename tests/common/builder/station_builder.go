//go:build unit || e2e

package builder

import (
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/station"
	reqdto "playhall/internal/handler/dto/request"
	"playhall/internal/usecase/queries"

	"github.com/google/uuid"
)

// Offer indexes matching the builder's default section layout.
const (
	OfferHalfHour  = 0
	OfferOneHour   = 1
	OfferOpenEnded = 2
)

type StationBuilder struct {
	ID         string
	Name       string
	Category   pricing.Category
	HourlyRate int64
	Customer   string
	OfferIndex int
	StartedAt  time.Time
}

func NewStationBuilder() *StationBuilder {
	return &StationBuilder{
		ID:         "console-1",
		Name:       "Console 1",
		Category:   pricing.CategoryConsole,
		HourlyRate: 4000,
		Customer:   "Walk-in",
		OfferIndex: OfferOneHour,
		StartedAt:  time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
	}
}

func (b *StationBuilder) With(mutate func(*StationBuilder)) *StationBuilder {
	mutate(b)
	return b
}

func (b *StationBuilder) BuildSection() pricing.Section {
	halfHour, err := pricing.NewTimedOffer(30, pricing.NewMoney(b.HourlyRate/2), "Half hour")
	if err != nil {
		panic(err)
	}
	oneHour, err := pricing.NewTimedOffer(60, pricing.NewMoney(b.HourlyRate), "One hour")
	if err != nil {
		panic(err)
	}
	return pricing.NewSection(pricing.NewMoney(b.HourlyRate), []pricing.Offer{
		halfHour,
		oneHour,
		pricing.NewOpenEndedOffer("Open play"),
	})
}

// Build methods
func (b *StationBuilder) BuildDomain() (*station.Station, error) {
	return station.New(b.ID, b.Name, b.Category, b.BuildSection())
}

// BuildOccupied returns a station with a session already running from the
// configured offer.
func (b *StationBuilder) BuildOccupied() (*station.Station, error) {
	st, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if _, err := st.Start(b.Customer, b.OfferIndex, b.StartedAt); err != nil {
		return nil, err
	}
	return st, nil
}

func (b *StationBuilder) BuildStartRequestDTO() reqdto.StartSessionRequest {
	idx := b.OfferIndex
	return reqdto.StartSessionRequest{
		Customer:   b.Customer,
		OfferIndex: &idx,
	}
}

func (b *StationBuilder) BuildView() *queries.StationView {
	st, err := b.BuildOccupied()
	if err != nil {
		panic(err)
	}
	return queries.NewStationView(st, b.StartedAt)
}

// BuildInvoiceView is the bill for the configured one-hour session plus a
// 500 order item.
func (b *StationBuilder) BuildInvoiceView() *queries.InvoiceView {
	return &queries.InvoiceView{
		ID:            uuid.New(),
		StationID:     b.ID,
		StationName:   b.Name,
		Customer:      b.Customer,
		StartedAt:     b.StartedAt,
		FinishedAt:    b.StartedAt.Add(time.Hour),
		ActiveMinutes: 60,
		TimeCharge:    b.HourlyRate,
		ItemsCharge:   500,
		Total:         b.HourlyRate + 500,
	}
}

func (b *StationBuilder) BuildAvailableView() *queries.StationView {
	st, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return queries.NewStationView(st, b.StartedAt)
}
