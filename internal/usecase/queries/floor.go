package queries

import (
	"context"

	"playhall/internal/domain/pricing"
	"playhall/internal/infra/floorstate"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/errs"
)

var ErrStationNotFound = errs.ErrStationNotFound

// FloorQueries is the read side: projections over the floor, recomputed
// from `now` on every call.
type FloorQueries interface {
	ListStations(ctx context.Context) ([]*StationView, error)
	GetStation(ctx context.Context, id string) (*StationView, error)
	Revenue(ctx context.Context) (*RevenueView, error)
	Catalog(ctx context.Context) ([]*CategoryPricingView, error)
}

type floorQueriesImpl struct {
	store   *floorstate.Store
	catalog pricing.Catalog
	clock   clock.Clock
}

func NewFloorQueries(store *floorstate.Store, catalog pricing.Catalog, clk clock.Clock) FloorQueries {
	return &floorQueriesImpl{
		store:   store,
		catalog: catalog,
		clock:   clk,
	}
}

func (q *floorQueriesImpl) ListStations(_ context.Context) ([]*StationView, error) {
	now := q.clock.Now()
	var views []*StationView
	err := q.store.Read(func(floor *floorstate.Floor) error {
		stations := floor.Stations()
		views = make([]*StationView, 0, len(stations))
		for _, st := range stations {
			views = append(views, NewStationView(st, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *floorQueriesImpl) GetStation(_ context.Context, id string) (*StationView, error) {
	now := q.clock.Now()
	var view *StationView
	err := q.store.Read(func(floor *floorstate.Floor) error {
		st, err := floor.Station(id)
		if err != nil {
			return err
		}
		view = NewStationView(st, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *floorQueriesImpl) Revenue(_ context.Context) (*RevenueView, error) {
	var view *RevenueView
	err := q.store.Read(func(floor *floorstate.Floor) error {
		daily := floor.Revenue().Daily()
		view = &RevenueView{
			Lifetime: floor.Revenue().Lifetime().Units(),
			Daily: DailyStatsView{
				Revenue:       daily.Revenue.Units(),
				Invoices:      daily.Invoices,
				Items:         daily.Items,
				ActiveMinutes: daily.ActiveMinutes,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *floorQueriesImpl) Catalog(_ context.Context) ([]*CategoryPricingView, error) {
	categories := pricing.Categories()
	views := make([]*CategoryPricingView, 0, len(categories))
	for _, cat := range categories {
		section, err := q.catalog.Section(cat)
		if err != nil {
			return nil, err
		}
		offers := section.Offers()
		offerViews := make([]OfferView, 0, len(offers))
		for i, o := range offers {
			offerViews = append(offerViews, OfferView{
				Index:     i,
				Label:     o.Label(),
				Minutes:   o.Minutes(),
				Price:     o.Price().Units(),
				OpenEnded: o.IsOpenEnded(),
			})
		}
		views = append(views, &CategoryPricingView{
			Category:   cat.String(),
			HourlyRate: section.HourlyRate().Units(),
			Offers:     offerViews,
		})
	}
	return views, nil
}
