package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var statusRank = map[BookingStatus]int{
	BookingStatusPending:   0,
	BookingStatusConfirmed: 1,
	BookingStatusCompleted: 2,
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Active statuses only move forward; cancelled is terminal and reachable from
// any non-completed status. Re-applying the current status is a no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	if s == BookingStatusCancelled {
		return false
	}
	if next == BookingStatusCancelled {
		return s != BookingStatusCompleted
	}
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	return okFrom && okTo && to > from
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type TripType string

const (
	TripOneWay    TripType = "One-way"
	TripRoundTrip TripType = "Round-trip"
	TripMultiCity TripType = "Multi-city"
)

type TravellerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (t TravellerCounts) Total() int {
	return t.Adults + t.Children + t.Infants
}

// Seats is the number of seats the party occupies. Infants travel on a lap and
// are excluded from seat arithmetic.
func (t TravellerCounts) Seats() int {
	return t.Adults + t.Children
}

type Traveller struct {
	Type        string `json:"type"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	Seat        string `json:"seat,omitempty"`
	CabinClass  string `json:"cabinClass"`
	CabinBags   string `json:"cabinBags,omitempty"`
	CheckedBags string `json:"checkedBags,omitempty"`
}

type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Payment struct {
	Method string    `json:"method"`
	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paidAt"`
}

type Booking struct {
	ID              string
	BookingCode     string
	UserID          string
	FlightIDs       []string
	TripType        TripType
	TravellerCounts TravellerCounts
	Travellers      []Traveller
	ContactDetails  *ContactDetails
	CabinClass      CabinClass
	Status          BookingStatus
	Payment         *Payment
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
