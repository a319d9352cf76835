package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/inventory"
	"github.com/duchauuuuu/flight-backend/internal/kafka"
	"github.com/duchauuuuu/flight-backend/internal/repository"
	"github.com/duchauuuuu/flight-backend/internal/service/loyalty"
	"github.com/duchauuuuu/flight-backend/internal/service/search"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByFlight(ctx context.Context, flightID string) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// NotificationStore is the slice of the notification store the lifecycle
// manager needs: composing content and handing it over.
type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Loyalty interface {
	Profile(ctx context.Context, userID string) (*domain.User, loyalty.Tier, error)
	AddPoints(ctx context.Context, userID string, delta int) (*domain.User, error)
}

type CreateInput struct {
	UserID          string
	FlightIDs       []string
	TripType        domain.TripType
	TravellerCounts domain.TravellerCounts
	Travellers      []domain.Traveller
	ContactDetails  *domain.ContactDetails
	CabinClass      domain.CabinClass
	Status          domain.BookingStatus
	Payment         *domain.Payment
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	notifications      NotificationStore
	loyalty            Loyalty
	inventory          inventory.Store
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	locators           *LocatorGenerator
	logger             *logrus.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(p Producer, eventsTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

// WithLocatorSource seeds locator generation; tests use it for determinism.
func WithLocatorSource(src rand.Source) BookingServiceOption {
	return func(s *BookingService) {
		s.locators = NewLocatorGenerator(src)
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	notifications NotificationStore,
	loyaltySvc Loyalty,
	inv inventory.Store,
	logger *logrus.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	if logger == nil {
		logger = logrus.New()
	}
	service := &BookingService{
		bookings:      bookings,
		flights:       flights,
		notifications: notifications,
		loyalty:       loyaltySvc,
		inventory:     inv,
		locators:      NewLocatorGenerator(nil),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create reserves seats, persists the booking, then runs the best-effort
// enrichments. Once the booking row is written the call succeeds no matter
// what the enrichments do.
func (s *BookingService) Create(ctx context.Context, input CreateInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, errors.New("user id is required")
	}
	if input.TravellerCounts.Total() <= 0 {
		return nil, errors.New("at least one traveller is required")
	}
	status := input.Status
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown booking status %q", input.Status)
	}

	refs := s.resolveFlights(ctx, input.FlightIDs)
	// Canonical cabin throughout, so reserve and the later release hit the
	// same counter key.
	cabin := cabinOrDefault(search.NormalizeCabin(string(input.CabinClass)))
	seats := input.TravellerCounts.Seats()

	var reserved []string
	for _, ref := range refs {
		if err := s.inventory.Reserve(ctx, ref.ID(), cabin, seats); err != nil {
			s.releaseAll(ctx, reserved, cabin, seats)
			return nil, fmt.Errorf("reserve flight %s: %w", ref.ID(), err)
		}
		reserved = append(reserved, ref.ID())
	}

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		BookingCode:     s.locators.Next(),
		UserID:          input.UserID,
		FlightIDs:       refIDs(refs),
		TripType:        input.TripType,
		TravellerCounts: input.TravellerCounts,
		Travellers:      input.Travellers,
		ContactDetails:  input.ContactDetails,
		CabinClass:      cabin,
		Status:          status,
		Payment:         input.Payment,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		s.releaseAll(ctx, reserved, cabin, seats)
		return nil, err
	}

	s.runEnrichments(ctx, booking, []enrichment{
		{name: "booking_notification", run: func(ctx context.Context) error {
			return s.notifyCreated(ctx, booking, refs)
		}},
		{name: "loyalty_points", run: func(ctx context.Context) error {
			return s.awardPoints(ctx, booking)
		}},
		{name: "publish_event", run: func(ctx context.Context) error {
			return s.publish(ctx, "booking_created", booking)
		}},
	})

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) ListByFlight(ctx context.Context, flightID string) ([]domain.Booking, error) {
	return s.bookings.ListByFlight(ctx, flightID)
}

func (s *BookingService) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookings.ListByStatus(ctx, status)
}

// UpdateStatus is a state-machine-checked status edit. It never moves seat
// counters or points itself; cancellation is routed through Cancel so seats
// are always released on that one path.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown booking status %q", status)
	}
	if status == domain.BookingStatusCancelled {
		return s.Cancel(ctx, id)
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%s to %s: %w", current.Status, status, domain.ErrInvalidTransition)
	}
	return s.bookings.UpdateStatus(ctx, id, status)
}

// Cancel is idempotent: re-cancelling returns the booking unchanged, so seats
// are restored exactly once. Missing flights are skipped, not fatal.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}
	if !current.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%s to %s: %w", current.Status, domain.BookingStatusCancelled, domain.ErrInvalidTransition)
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	cabin := cabinOrDefault(updated.CabinClass)
	seats := updated.TravellerCounts.Seats()
	for _, flightID := range updated.FlightIDs {
		if err := s.inventory.Release(ctx, flightID, cabin, seats); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"booking": updated.ID,
				"flight":  flightID,
			}).Warn("could not restore seats for cancelled booking")
		}
	}

	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		s.logger.WithError(err).WithField("booking", updated.ID).Warn("failed to publish booking_cancelled event")
	}
	return updated, nil
}

// resolveFlights turns the supplied identifiers into flight refs. Entries are
// ids when they parse as UUIDs, flight numbers otherwise. Unresolvable
// entries are dropped and logged; downstream steps key off whatever survives.
func (s *BookingService) resolveFlights(ctx context.Context, ids []string) []domain.FlightRef {
	refs := make([]domain.FlightRef, 0, len(ids))
	for _, raw := range ids {
		var (
			flight *domain.Flight
			err    error
		)
		if _, parseErr := uuid.Parse(raw); parseErr == nil {
			flight, err = s.flights.GetByID(ctx, raw)
		} else {
			flight, err = s.flights.GetByNumber(ctx, raw)
		}
		if err != nil {
			s.logger.WithError(err).WithField("flight_ref", raw).Warn("dropping unresolvable flight reference")
			continue
		}
		refs = append(refs, domain.RefResolved(flight))
	}
	return refs
}

func (s *BookingService) releaseAll(ctx context.Context, flightIDs []string, cabin domain.CabinClass, seats int) {
	for _, id := range flightIDs {
		if err := s.inventory.Release(ctx, id, cabin, seats); err != nil {
			s.logger.WithError(err).WithField("flight", id).Error("failed to roll back seat reservation")
		}
	}
}

type enrichment struct {
	name string
	run  func(ctx context.Context) error
}

// runEnrichments executes each step independently. Failures are logged and
// swallowed; nothing here may invalidate the already-persisted booking.
func (s *BookingService) runEnrichments(ctx context.Context, b *domain.Booking, steps []enrichment) {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"booking": b.ID,
				"step":    step.name,
			}).Warn("booking enrichment failed")
		}
	}
}

func (s *BookingService) notifyCreated(ctx context.Context, b *domain.Booking, refs []domain.FlightRef) error {
	title, message := composeBookingCreated(b, refs)
	return s.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    b.UserID,
		Title:     title,
		Message:   message,
		Type:      domain.NotificationBooking,
		BookingID: b.ID,
	})
}

// awardPoints converts the paid amount into loyalty points. A tier
// notification goes out only when the tier name actually changed; the points
// notification always does.
func (s *BookingService) awardPoints(ctx context.Context, b *domain.Booking) error {
	if b.Payment == nil || b.Payment.Amount <= 0 {
		return nil
	}
	points := loyalty.PointsFromAmount(b.Payment.Amount)
	if points <= 0 {
		return nil
	}

	_, oldTier, err := s.loyalty.Profile(ctx, b.UserID)
	if err != nil {
		return fmt.Errorf("load loyalty profile: %w", err)
	}
	updated, err := s.loyalty.AddPoints(ctx, b.UserID, points)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	newTier := loyalty.TierFor(updated.Points)

	if oldTier != newTier {
		title, message := composeTierUpgraded(newTier, updated.Points)
		if err := s.notifications.Create(ctx, &domain.Notification{
			ID:      uuid.NewString(),
			UserID:  b.UserID,
			Title:   title,
			Message: message,
			Type:    domain.NotificationPromotion,
		}); err != nil {
			s.logger.WithError(err).WithField("booking", b.ID).Warn("failed to store tier notification")
		}
	}

	title, message := composePointsEarned(points, updated.Points)
	return s.notifications.Create(ctx, &domain.Notification{
		ID:      uuid.NewString(),
		UserID:  b.UserID,
		Title:   title,
		Message: message,
		Type:    domain.NotificationPromotion,
	})
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		UserID:      b.UserID,
		FlightIDs:   b.FlightIDs,
		CabinClass:  string(b.CabinClass),
		Status:      string(b.Status),
		Seats:       b.TravellerCounts.Seats(),
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, b.BookingCode, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, b.BookingCode, event)
	}
	return nil
}

func cabinOrDefault(cabin domain.CabinClass) domain.CabinClass {
	if cabin == "" {
		return domain.CabinEconomy
	}
	return cabin
}

func refIDs(refs []domain.FlightRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID())
	}
	return ids
}

var _ BookingUseCase = (*BookingService)(nil)
