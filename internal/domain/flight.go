package domain

import "time"

type CabinClass string

const (
	CabinEconomy        CabinClass = "Economy"
	CabinPremiumEconomy CabinClass = "Premium Economy"
	CabinBusiness       CabinClass = "Business"
	CabinFirst          CabinClass = "First"
)

type Flight struct {
	ID              string
	FlightNumber    string
	From            string
	To              string
	Airline         string
	Departure       time.Time
	Arrival         time.Time
	Price           int64
	Stops           int
	AvailableCabins []CabinClass
	SeatsAvailable  map[CabinClass]int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SeatsFor reads the per-cabin counter; a missing key counts as zero seats.
func (f *Flight) SeatsFor(cabin CabinClass) int {
	if f.SeatsAvailable == nil {
		return 0
	}
	return f.SeatsAvailable[cabin]
}

func (f *Flight) HasCabin(cabin CabinClass) bool {
	for _, c := range f.AvailableCabins {
		if c == cabin {
			return true
		}
	}
	return false
}

// FlightRef is either a bare flight id or an id with the flight already loaded.
// Booking documents store ids; the lifecycle manager resolves them when it needs
// the flight itself.
type FlightRef struct {
	id     string
	flight *Flight
}

func RefByID(id string) FlightRef {
	return FlightRef{id: id}
}

func RefResolved(f *Flight) FlightRef {
	return FlightRef{id: f.ID, flight: f}
}

func (r FlightRef) ID() string {
	return r.id
}

func (r FlightRef) Flight() (*Flight, bool) {
	return r.flight, r.flight != nil
}
