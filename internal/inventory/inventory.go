// Package inventory is the only path through which per-flight, per-cabin seat
// counters are mutated. The storage layer performs each reserve as an atomic
// conditional update, so counters never go negative under concurrent bookings.
package inventory

import (
	"context"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/repository"
)

type Store interface {
	Reserve(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error
	Release(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error
}

type SeatInventory struct {
	flights repository.FlightRepository
}

func New(flights repository.FlightRepository) *SeatInventory {
	return &SeatInventory{flights: flights}
}

// Reserve takes seats from the cabin's counter, failing with
// domain.ErrInsufficientSeats when the counter does not cover the request.
// Reserving zero or fewer seats is a no-op.
func (i *SeatInventory) Reserve(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error {
	if seats <= 0 {
		return nil
	}
	return i.flights.ReserveSeats(ctx, flightID, cabin, seats)
}

// Release returns seats to the cabin's counter unconditionally.
func (i *SeatInventory) Release(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error {
	if seats <= 0 {
		return nil
	}
	return i.flights.ReleaseSeats(ctx, flightID, cabin, seats)
}

var _ Store = (*SeatInventory)(nil)
