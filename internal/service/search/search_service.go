package search

import (
	"context"
	"errors"

	"github.com/duchauuuuu/flight-backend/internal/cache"
	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// Criteria are the raw search inputs as the client sent them. Date and
// CabinClass are normalized inside Search.
type Criteria struct {
	From       string
	To         string
	Airline    string
	Date       string
	CabinClass string
	Passengers int
}

// Segment is one leg of a multi-city itinerary.
type Segment struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

type SearchUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, criteria Criteria) ([]domain.Flight, error)
	SearchMultiCity(ctx context.Context, segments []Segment, cabinClass string, passengers int) ([][]domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	GetSearch(ctx context.Context, key string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, key string, flights []domain.Flight) error
}

type SearchService struct {
	repo   repository.FlightRepository
	cache  Cache
	logger *logrus.Logger
}

func NewSearchService(repo repository.FlightRepository, cache Cache, logger *logrus.Logger) *SearchService {
	if logger == nil {
		logger = logrus.New()
	}
	return &SearchService{repo: repo, cache: cache, logger: logger}
}

func (s *SearchService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *SearchService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs the exact-match query and applies cabin and seat-count
// post-filters. An unparseable date drops the date filter rather than failing
// the search; nothing matching is an empty result, not an error.
func (s *SearchService) Search(ctx context.Context, criteria Criteria) ([]domain.Flight, error) {
	filter := repository.SearchFilter{
		From:    criteria.From,
		To:      criteria.To,
		Airline: criteria.Airline,
	}

	if criteria.Date != "" {
		window, err := NormalizeDate(criteria.Date)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidDate) {
				return nil, err
			}
			s.logger.WithField("date", criteria.Date).Warn("unparseable search date, ignoring date filter")
		} else {
			filter.DepartFrom = &window.Start
			filter.DepartTo = &window.End
		}
	}

	cabin := domain.CabinClass("")
	if criteria.CabinClass != "" {
		cabin = NormalizeCabin(criteria.CabinClass)
	}

	key := ""
	if s.cache != nil {
		key = cache.SearchKey(filter.From, filter.To, filter.Airline, filter.DepartFrom, cabin, criteria.Passengers)
		if cached, err := s.cache.GetSearch(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cabin != "" {
		filtered := flights[:0]
		for _, f := range flights {
			if f.HasCabin(cabin) {
				filtered = append(filtered, f)
			}
		}
		flights = filtered

		if criteria.Passengers > 0 {
			filtered = flights[:0]
			for _, f := range flights {
				if f.SeatsFor(cabin) >= criteria.Passengers {
					filtered = append(filtered, f)
				}
			}
			flights = filtered
		}
	}

	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, key, flights)
	}
	return flights, nil
}

// SearchMultiCity searches each segment independently, preserving segment
// order. Segments with no matches produce empty inner slices; whether a full
// itinerary can be assembled is the caller's call.
func (s *SearchService) SearchMultiCity(ctx context.Context, segments []Segment, cabinClass string, passengers int) ([][]domain.Flight, error) {
	results := make([][]domain.Flight, 0, len(segments))
	for _, seg := range segments {
		flights, err := s.Search(ctx, Criteria{
			From:       seg.From,
			To:         seg.To,
			Date:       seg.Date,
			CabinClass: cabinClass,
			Passengers: passengers,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, flights)
	}
	return results, nil
}

var _ SearchUseCase = (*SearchService)(nil)
