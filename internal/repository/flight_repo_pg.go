package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SearchFilter is the exact-match part of a flight search. Omitted fields are
// unconstrained; DepartFrom/DepartTo bound the departure instant inclusively.
type SearchFilter struct {
	From       string
	To         string
	Airline    string
	DepartFrom *time.Time
	DepartTo   *time.Time
}

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Flight, error)
	ReserveSeats(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error
	ReleaseSeats(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, from_airport, to_airport, airline, departure, arrival, price, stops, available_cabins, seats_available, created_at, updated_at`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	var cabins []string
	var seats map[string]int
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.From, &f.To, &f.Airline, &f.Departure, &f.Arrival, &f.Price, &f.Stops, &cabins, &seats, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.AvailableCabins = make([]domain.CabinClass, 0, len(cabins))
	for _, c := range cabins {
		f.AvailableCabins = append(f.AvailableCabins, domain.CabinClass(c))
	}
	f.SeatsAvailable = make(map[domain.CabinClass]int, len(seats))
	for c, n := range seats {
		f.SeatsAvailable[domain.CabinClass(c)] = n
	}
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure`)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("flight %s: %w", id, domain.ErrNotFound)
	}
	return f, err
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_number=$1`, flightNumber)
	f, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("flight %s: %w", flightNumber, domain.ErrNotFound)
	}
	return f, err
}

func (r *PGFlightRepository) Search(ctx context.Context, filter SearchFilter) ([]domain.Flight, error) {
	sql := `SELECT ` + flightColumns + ` FROM flights`
	var args []interface{}
	var conds []string
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.From != "" {
		add("from_airport=$%d", filter.From)
	}
	if filter.To != "" {
		add("to_airport=$%d", filter.To)
	}
	if filter.Airline != "" {
		add("airline=$%d", filter.Airline)
	}
	if filter.DepartFrom != nil {
		add("departure>=$%d", *filter.DepartFrom)
	}
	if filter.DepartTo != nil {
		add("departure<=$%d", *filter.DepartTo)
	}

	for i, cond := range conds {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY departure"

	return r.query(ctx, sql, args...)
}

func (r *PGFlightRepository) query(ctx context.Context, sql string, args ...interface{}) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

// ReserveSeats decrements the per-cabin counter in a single conditional UPDATE
// so concurrent bookings cannot drive it negative. A missing flight or cabin
// key reads as zero seats.
func (r *PGFlightRepository) ReserveSeats(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error {
	res, err := r.db.Exec(ctx, `
		UPDATE flights
		SET seats_available = jsonb_set(seats_available, ARRAY[$2], to_jsonb(COALESCE((seats_available->>$2)::int, 0) - $3)),
		    updated_at = now()
		WHERE id=$1 AND COALESCE((seats_available->>$2)::int, 0) >= $3`,
		flightID, string(cabin), seats)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("flight %s cabin %s: %w", flightID, cabin, domain.ErrInsufficientSeats)
	}
	return nil
}

// ReleaseSeats increments the per-cabin counter unconditionally.
func (r *PGFlightRepository) ReleaseSeats(ctx context.Context, flightID string, cabin domain.CabinClass, seats int) error {
	res, err := r.db.Exec(ctx, `
		UPDATE flights
		SET seats_available = jsonb_set(seats_available, ARRAY[$2], to_jsonb(COALESCE((seats_available->>$2)::int, 0) + $3)),
		    updated_at = now()
		WHERE id=$1`,
		flightID, string(cabin), seats)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", flightID, domain.ErrNotFound)
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
