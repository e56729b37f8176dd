package station

import (
	"strings"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/session"
	"playhall/internal/pkg/errs"
)

var (
	ErrEmptyID         = errs.New("station id cannot be empty")
	ErrEmptyName       = errs.New("station name cannot be empty")
	ErrInvalidCategory = errs.New("invalid station category")
	ErrOccupied        = errs.New("station already occupied")
	ErrNoSession       = errs.New("station has no active session")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusPaused    Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// Station is one rentable, billable unit on the floor. IDs are deterministic
// slugs ("table-1", "console-3") so that re-seeding restored state never
// duplicates stations.
//
// Invariant: at most one active session; status is derived from it, never
// stored separately.
type Station struct {
	id       string
	name     string
	category pricing.Category
	section  pricing.Section
	session  *session.Session
}

func New(id, name string, category pricing.Category, section pricing.Section) (*Station, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, errs.Wrap(ErrInvalidCategory, category.String())
	}
	return &Station{id: id, name: name, category: category, section: section}, nil
}

func (s *Station) ID() string                 { return s.id }
func (s *Station) Name() string               { return s.name }
func (s *Station) Category() pricing.Category { return s.category }
func (s *Station) Section() pricing.Section   { return s.section }
func (s *Station) Session() *session.Session  { return s.session }

func (s *Station) IsOccupied() bool {
	return s.session != nil
}

func (s *Station) Status() Status {
	switch {
	case s.session == nil:
		return StatusAvailable
	case s.session.IsPaused():
		return StatusPaused
	default:
		return StatusOccupied
	}
}

// Start opens a session from one of the station's own offers.
func (s *Station) Start(customer string, offerIndex int, now time.Time) (*session.Session, error) {
	if s.session != nil {
		return nil, ErrOccupied
	}
	offer, err := s.section.Offer(offerIndex)
	if err != nil {
		return nil, err
	}
	s.session = session.Open(customer, offer, s.section.HourlyRate(), now)
	return s.session, nil
}

// Finish closes the active session and clears the station back to available.
// The final charge is computed once, here; calling Finish on an available
// station fails rather than double-billing.
func (s *Station) Finish(now time.Time) (*session.Session, session.Charge, error) {
	if s.session == nil {
		return nil, session.Charge{}, ErrNoSession
	}
	closed := s.session
	charge := closed.LiveCharge(now)
	s.session = nil
	return closed, charge, nil
}

// Restore reattaches a session deserialized from a snapshot. Used only by
// the persistence gateway.
func (s *Station) Restore(sess *session.Session) {
	s.session = sess
}
