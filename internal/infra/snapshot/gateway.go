package snapshot

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/revenue"
	"playhall/internal/domain/session"
	"playhall/internal/domain/station"
	"playhall/internal/infra"
	"playhall/internal/infra/floorstate"
	"playhall/internal/pkg/config"
)

// Gateway persists the whole floor to a single JSON file and reconciles it
// back on load. Losing the file must never stop the venue from operating:
// every load failure is reported with a kind the caller can recover from by
// seeding a fresh floor.
type Gateway struct {
	path      string
	staleness time.Duration
	catalog   pricing.Catalog
	logger    *slog.Logger
}

func NewGateway(cfg config.SnapshotConfig, catalog pricing.Catalog, logger *slog.Logger) *Gateway {
	return &Gateway{
		path:      cfg.Path,
		staleness: cfg.Staleness,
		catalog:   catalog,
		logger:    logger,
	}
}

// Save serializes the floor atomically: write to a temp file in the same
// directory, then rename over the target.
func (g *Gateway) Save(floor *floorstate.Floor, now time.Time) error {
	blob := Encode(floor, now)

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindIOFailure, "marshal snapshot", err)
	}

	tmp := g.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindIOFailure, "create snapshot directory", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindIOFailure, "write snapshot", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindIOFailure, "replace snapshot", err)
	}
	return nil
}

// Load restores the floor from disk. Sessions keep their absolute
// timestamps, so wall-clock time that passed while the process was down is
// counted for metered billing automatically and paused sessions stay frozen.
// A save older than the staleness threshold zeroes the daily counters only;
// lifetime revenue and occupancy survive.
func (g *Gateway) Load(now time.Time) (*floorstate.Floor, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, infra.WrapGatewayErr(g.logger, infra.KindNotFound, "snapshot file missing", err)
		}
		return nil, infra.WrapGatewayErr(g.logger, infra.KindIOFailure, "read snapshot", err)
	}

	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindCorruptSnapshot, "decode snapshot", err)
	}

	floor, err := g.decode(blob)
	if err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindCorruptSnapshot, "reconstruct floor", err)
	}

	if !blob.LastSave.IsZero() && now.Sub(blob.LastSave) > g.staleness {
		g.logger.Info("snapshot is stale, resetting daily counters",
			slog.Time("lastSave", blob.LastSave), slog.Duration("staleness", g.staleness))
		floor.Revenue().ResetDaily()
	}
	return floor, nil
}

// Encode projects the floor into the persisted format. Exported for the
// round-trip tests.
func Encode(floor *floorstate.Floor, now time.Time) Blob {
	stations := floor.Stations()
	devices := make([]DeviceRecord, 0, len(stations))
	for _, st := range stations {
		devices = append(devices, encodeStation(st))
	}

	daily := floor.Revenue().Daily()
	return Blob{
		Devices:     devices,
		TotalProfit: floor.Revenue().Lifetime().Units(),
		DailyStats: &DailyRecord{
			Revenue:       daily.Revenue.Units(),
			Invoices:      daily.Invoices,
			Items:         daily.Items,
			ActiveMinutes: daily.ActiveMinutes,
		},
		LastSave: now,
	}
}

func encodeStation(st *station.Station) DeviceRecord {
	rec := DeviceRecord{
		ID:     st.ID(),
		Name:   st.Name(),
		Type:   st.Category().String(),
		Status: st.Status().String(),
	}

	sess := st.Session()
	if sess == nil {
		return rec
	}

	orders := sess.Orders()
	orderRecs := make([]OrderRecord, 0, len(orders))
	for _, item := range orders {
		orderRecs = append(orderRecs, OrderRecord{
			ID:      item.ID(),
			Name:    item.Name(),
			Price:   item.Price().Units(),
			AddedAt: item.AddedAt(),
		})
	}

	sr := &SessionRecord{
		ID:        sess.ID(),
		Mode:      sess.Billing().Mode().String(),
		StartTime: sess.StartedAt(),
		BasePrice: sess.BasePrice().Units(),
		PausedMs:  sess.PausedTotal().Milliseconds(),
		PausedAt:  sess.PausedAt(),
		Orders:    orderRecs,
	}
	if endsAt, ok := sess.Billing().EndsAt(); ok {
		t := endsAt
		sr.EndTime = &t
	} else {
		sr.HourlyRate = sess.Billing().HourlyRate().Units()
	}

	rec.Customer = sess.Customer().String()
	rec.Session = sr
	return rec
}

func (g *Gateway) decode(blob Blob) (*floorstate.Floor, error) {
	stations := make([]*station.Station, 0, len(blob.Devices))
	for _, dev := range blob.Devices {
		st, err := g.decodeStation(dev)
		if err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}

	daily := revenue.DailyStats{}
	if blob.DailyStats != nil {
		daily = revenue.DailyStats{
			Revenue:       pricing.NewMoney(blob.DailyStats.Revenue),
			Invoices:      blob.DailyStats.Invoices,
			Items:         blob.DailyStats.Items,
			ActiveMinutes: blob.DailyStats.ActiveMinutes,
		}
	}
	rev := revenue.Reconstruct(pricing.NewMoney(blob.TotalProfit), daily)

	return floorstate.NewFloor(stations, rev), nil
}

func (g *Gateway) decodeStation(dev DeviceRecord) (*station.Station, error) {
	category := pricing.Category(dev.Type)
	section, err := g.catalog.Section(category)
	if err != nil {
		return nil, err
	}

	st, err := station.New(dev.ID, dev.Name, category, section)
	if err != nil {
		return nil, err
	}

	if dev.Session == nil {
		return st, nil
	}
	sr := dev.Session

	var billing session.Billing
	switch {
	case sr.EndTime != nil:
		billing = session.TimedBilling(*sr.EndTime)
	default:
		billing = session.MeteredBilling(pricing.NewMoney(sr.HourlyRate))
	}

	state := session.StateOccupied
	if sr.PausedAt != nil {
		state = session.StatePaused
	}

	orders := make([]session.OrderItem, 0, len(sr.Orders))
	for _, o := range sr.Orders {
		orders = append(orders, session.ReconstructOrderItem(
			o.ID, o.Name, pricing.NewMoney(o.Price), o.AddedAt))
	}

	st.Restore(session.Reconstruct(
		sr.ID,
		session.NewCustomer(dev.Customer),
		sr.StartTime,
		billing,
		pricing.NewMoney(sr.BasePrice),
		time.Duration(sr.PausedMs)*time.Millisecond,
		sr.PausedAt,
		state,
		orders,
	))
	return st, nil
}
