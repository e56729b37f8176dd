package commands

import (
	"context"
	"errors"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/revenue"
	"playhall/internal/domain/session"
	"playhall/internal/domain/station"
	"playhall/internal/infra/floorstate"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/errs"
	"playhall/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound      = errs.ErrStationNotFound
	ErrStationOccupied      = errs.ErrStationOccupied
	ErrNoActiveSession      = errs.ErrNoActiveSession
	ErrSessionNotPaused     = errs.ErrSessionNotPaused
	ErrSessionAlreadyPaused = errs.ErrSessionAlreadyPaused
	ErrOpenEndedExtend      = errs.ErrOpenEndedExtend
	ErrInvalidOffer         = errs.ErrInvalidOffer
	ErrDomainValidation     = errs.ErrDomainValidation
)

type StartSessionParams struct {
	StationID  string
	Customer   string
	OfferIndex int
}

type ExtendSessionParams struct {
	StationID string
	Minutes   int
	Price     int64
}

type AddOrderParams struct {
	StationID string
	Name      string
	Price     int64
}

// SessionCommands is the write side of the session engine. Every operation
// names its target station explicitly; there is no shared "selected station"
// state.
type SessionCommands interface {
	Start(ctx context.Context, params StartSessionParams) (*queries.StationView, error)
	Pause(ctx context.Context, stationID string) (*queries.StationView, error)
	Resume(ctx context.Context, stationID string) (*queries.StationView, error)
	Extend(ctx context.Context, params ExtendSessionParams) (*queries.StationView, error)
	AddOrder(ctx context.Context, params AddOrderParams) (*queries.StationView, error)
	Finish(ctx context.Context, stationID string) (*queries.InvoiceView, error)
}

type sessionCommandsImpl struct {
	store *floorstate.Store
	clock clock.Clock
}

func NewSessionCommands(store *floorstate.Store, clk clock.Clock) SessionCommands {
	return &sessionCommandsImpl{
		store: store,
		clock: clk,
	}
}

func (c *sessionCommandsImpl) Start(_ context.Context, params StartSessionParams) (*queries.StationView, error) {
	now := c.clock.Now()
	return c.mutateStation(params.StationID, now, func(st *station.Station) error {
		if _, err := st.Start(params.Customer, params.OfferIndex, now); err != nil {
			switch {
			case errors.Is(err, station.ErrOccupied):
				return errs.Mark(err, ErrStationOccupied)
			case errors.Is(err, errs.ErrInvalidOffer):
				return err
			default:
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		return nil
	})
}

func (c *sessionCommandsImpl) Pause(_ context.Context, stationID string) (*queries.StationView, error) {
	now := c.clock.Now()
	return c.mutateStation(stationID, now, func(st *station.Station) error {
		sess := st.Session()
		if sess == nil {
			return ErrNoActiveSession
		}
		if err := sess.Pause(now); err != nil {
			return errs.Mark(err, ErrSessionAlreadyPaused)
		}
		return nil
	})
}

func (c *sessionCommandsImpl) Resume(_ context.Context, stationID string) (*queries.StationView, error) {
	now := c.clock.Now()
	return c.mutateStation(stationID, now, func(st *station.Station) error {
		sess := st.Session()
		if sess == nil {
			return ErrNoActiveSession
		}
		if err := sess.Resume(now); err != nil {
			return errs.Mark(err, ErrSessionNotPaused)
		}
		return nil
	})
}

func (c *sessionCommandsImpl) Extend(_ context.Context, params ExtendSessionParams) (*queries.StationView, error) {
	now := c.clock.Now()
	return c.mutateStation(params.StationID, now, func(st *station.Station) error {
		sess := st.Session()
		if sess == nil {
			return ErrNoActiveSession
		}
		if err := sess.Extend(params.Minutes, pricing.NewMoney(params.Price)); err != nil {
			if errors.Is(err, session.ErrOpenEndedExtend) {
				return errs.Mark(err, ErrOpenEndedExtend)
			}
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

func (c *sessionCommandsImpl) AddOrder(_ context.Context, params AddOrderParams) (*queries.StationView, error) {
	now := c.clock.Now()
	return c.mutateStation(params.StationID, now, func(st *station.Station) error {
		sess := st.Session()
		if sess == nil {
			return ErrNoActiveSession
		}
		if _, err := sess.AddOrderItem(params.Name, pricing.NewMoney(params.Price), now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

// Finish computes the final bill, commits it into the revenue aggregates
// exactly once, and clears the station back to available. A second call on
// the same station fails with ErrNoActiveSession and never double-counts.
func (c *sessionCommandsImpl) Finish(_ context.Context, stationID string) (*queries.InvoiceView, error) {
	now := c.clock.Now()
	var view *queries.InvoiceView
	err := c.store.Mutate(func(floor *floorstate.Floor) error {
		st, err := floor.Station(stationID)
		if err != nil {
			return err
		}

		closed, charge, err := st.Finish(now)
		if err != nil {
			return errs.Mark(err, ErrNoActiveSession)
		}

		inv := revenue.Invoice{
			ID:          uuid.New(),
			StationID:   st.ID(),
			StationName: st.Name(),
			Customer:    closed.Customer().String(),
			StartedAt:   closed.StartedAt(),
			FinishedAt:  now,
			Active:      closed.Elapsed(now),
			ItemCount:   len(closed.Orders()),
			TimeCharge:  charge.TimeCharge,
			ItemsCharge: charge.ItemsCharge,
			Total:       charge.Total,
		}
		floor.Revenue().Commit(inv)
		view = queries.NewInvoiceView(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *sessionCommandsImpl) mutateStation(stationID string, now time.Time, fn func(*station.Station) error) (*queries.StationView, error) {
	var view *queries.StationView
	err := c.store.Mutate(func(floor *floorstate.Floor) error {
		st, err := floor.Station(stationID)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		view = queries.NewStationView(st, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
