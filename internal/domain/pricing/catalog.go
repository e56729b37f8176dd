package pricing

import (
	"fmt"
	"time"

	"playhall/internal/pkg/errs"
)

var (
	ErrNegativeDuration = errs.New("offer duration cannot be negative")
	ErrNegativePrice    = errs.New("offer price cannot be negative")
	ErrUnknownCategory  = errs.New("unknown station category")
)

// Offer is a selectable rental block: either a prepaid fixed duration at a
// flat price, or open-ended metering against the category's hourly rate.
type Offer struct {
	minutes   int
	price     Money
	label     string
	openEnded bool
}

func NewTimedOffer(minutes int, price Money, label string) (Offer, error) {
	if minutes <= 0 {
		return Offer{}, ErrNegativeDuration
	}
	if price.Units() < 0 {
		return Offer{}, ErrNegativePrice
	}
	return Offer{minutes: minutes, price: price, label: label}, nil
}

func NewOpenEndedOffer(label string) Offer {
	return Offer{label: label, openEnded: true}
}

func (o Offer) IsOpenEnded() bool { return o.openEnded }
func (o Offer) Minutes() int      { return o.minutes }
func (o Offer) Price() Money      { return o.price }
func (o Offer) Label() string     { return o.label }

func (o Offer) Duration() time.Duration {
	return time.Duration(o.minutes) * time.Minute
}

// Section is the pricing for one station category: the ordered offer list
// (open-ended last) and the hourly rate used by open-ended metering.
type Section struct {
	hourlyRate Money
	offers     []Offer
}

func NewSection(hourlyRate Money, offers []Offer) Section {
	return Section{hourlyRate: hourlyRate, offers: offers}
}

func (s Section) HourlyRate() Money { return s.hourlyRate }

func (s Section) Offers() []Offer {
	out := make([]Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

func (s Section) Offer(index int) (Offer, error) {
	if index < 0 || index >= len(s.offers) {
		return Offer{}, errs.ErrInvalidOffer
	}
	return s.offers[index], nil
}

// Catalog is pure and stateless: built once, validated at startup, read-only
// afterwards.
type Catalog struct {
	sections map[Category]Section
}

func NewCatalog(sections map[Category]Section) (Catalog, error) {
	c := Catalog{sections: sections}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Section(cat Category) (Section, error) {
	sec, ok := c.sections[cat]
	if !ok {
		return Section{}, ErrUnknownCategory
	}
	return sec, nil
}

func (c Catalog) validate() error {
	for _, cat := range Categories() {
		if _, ok := c.sections[cat]; !ok {
			return errs.Wrap(errs.ErrInvalidPricing, fmt.Sprintf("missing section for %s", cat))
		}
	}
	for cat, sec := range c.sections {
		if !cat.IsValid() {
			return errs.Wrap(ErrUnknownCategory, cat.String())
		}
		if sec.hourlyRate.Units() < 0 {
			return errs.Wrap(ErrNegativePrice, fmt.Sprintf("hourly rate for %s", cat))
		}
		for _, o := range sec.offers {
			if o.minutes < 0 {
				return errs.Wrap(ErrNegativeDuration, fmt.Sprintf("offer %q for %s", o.label, cat))
			}
			if o.price.Units() < 0 {
				return errs.Wrap(ErrNegativePrice, fmt.Sprintf("offer %q for %s", o.label, cat))
			}
		}
	}
	return nil
}

func mustTimedOffer(minutes int, units int64, label string) Offer {
	o, err := NewTimedOffer(minutes, NewMoney(units), label)
	if err != nil {
		panic(err)
	}
	return o
}

// DefaultCatalog is the venue's house pricing. Amounts are minor currency
// units.
func DefaultCatalog() Catalog {
	sections := map[Category]Section{
		CategoryTable: {
			hourlyRate: NewMoney(6000),
			offers: []Offer{
				mustTimedOffer(30, 3500, "Half hour"),
				mustTimedOffer(60, 6000, "One hour"),
				mustTimedOffer(120, 11000, "Two hours"),
				NewOpenEndedOffer("Open table"),
			},
		},
		CategoryConsole: {
			hourlyRate: NewMoney(4000),
			offers: []Offer{
				mustTimedOffer(30, 2500, "Half hour"),
				mustTimedOffer(60, 4000, "One hour"),
				mustTimedOffer(120, 7500, "Two hours"),
				NewOpenEndedOffer("Open play"),
			},
		},
		CategoryWorkstation: {
			hourlyRate: NewMoney(3000),
			offers: []Offer{
				mustTimedOffer(60, 3000, "One hour"),
				mustTimedOffer(180, 8000, "Three hours"),
				NewOpenEndedOffer("Open seat"),
			},
		},
		CategoryDining: {
			hourlyRate: NewMoney(0),
			offers: []Offer{
				NewOpenEndedOffer("Open seating"),
			},
		},
	}

	catalog, err := NewCatalog(sections)
	if err != nil {
		panic(err)
	}
	return catalog
}
