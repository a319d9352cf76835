package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByFlight(ctx context.Context, flightID string) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, booking_code, user_id, flight_ids, trip_type, traveller_counts, travellers, contact_details, cabin_class, status, payment, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var tripType, status string
	if err := row.Scan(&b.ID, &b.BookingCode, &b.UserID, &b.FlightIDs, &tripType, &b.TravellerCounts, &b.Travellers, &b.ContactDetails, &b.CabinClass, &status, &b.Payment, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.TripType = domain.TripType(tripType)
	b.Status = domain.BookingStatus(status)
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO bookings (id, booking_code, user_id, flight_ids, trip_type, traveller_counts, travellers, contact_details, cabin_class, status, payment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		booking.ID, booking.BookingCode, booking.UserID, booking.FlightIDs, string(booking.TripType),
		booking.TravellerCounts, booking.Travellers, booking.ContactDetails, string(booking.CabinClass),
		string(booking.Status), booking.Payment).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	return b, err
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

func (r *PGBookingRepository) ListByFlight(ctx context.Context, flightID string) ([]domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE $1 = ANY(flight_ids) ORDER BY created_at DESC`, flightID)
}

func (r *PGBookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE status=$1 ORDER BY created_at DESC`, string(status))
}

func (r *PGBookingRepository) list(ctx context.Context, sql string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, string(status), id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	return b, err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
