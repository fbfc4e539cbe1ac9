package application

import (
	"context"
	"sync"
	"time"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/AeroAndes-Airlines/service-reservation/internal/domain/reservation"
	"github.com/AeroAndes-Airlines/service-reservation/internal/events"
	"github.com/AeroAndes-Airlines/service-reservation/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterPassengerRequest holds the data needed to register a passenger.
type RegisterPassengerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Document  string `json:"document" binding:"required"`
}

// AddFlightRequest holds the data needed to add a flight. Capacity carries
// no binding rule so out-of-range values reach domain validation and its
// messages.
type AddFlightRequest struct {
	Number      string `json:"number" binding:"required"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Capacity    int    `json:"capacity"`
}

// CreateBookingRequest holds the keys needed to create a booking.
type CreateBookingRequest struct {
	FlightNumber      string `json:"flight_number" binding:"required"`
	PassengerDocument string `json:"passenger_document" binding:"required"`
}

// PassengerDTO is the response representation of a passenger.
type PassengerDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Document  string `json:"document"`
}

// FlightDTO is the response representation of a flight, including its
// derived availability.
type FlightDTO struct {
	Number            string `json:"number"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	Date              string `json:"date"`
	Capacity          int    `json:"capacity"`
	AvailableCapacity int    `json:"available_capacity"`
	ActiveBookings    int    `json:"active_bookings"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                uuid.UUID  `json:"id"`
	FlightNumber      string     `json:"flight_number"`
	PassengerDocument string     `json:"passenger_document"`
	PassengerName     string     `json:"passenger_name"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// StatsDTO holds system-wide reservation statistics.
type StatsDTO struct {
	TotalPassengers   int            `json:"total_passengers"`
	TotalFlights      int            `json:"total_flights"`
	TotalBookings     int            `json:"total_bookings"`
	BookingsByStatus  map[string]int `json:"bookings_by_status"`
	AvailableCapacity int            `json:"available_capacity"`
}

// ReservationService is the application service orchestrating all use cases
// over one registry. The registry does no locking of its own, so the service
// serializes every call with a mutex; handlers and the event consumer may
// run concurrently against it.
type ReservationService struct {
	mu       sync.Mutex
	registry *reservation.Registry
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewReservationService creates a new ReservationService. The producer may
// be nil when event publishing is disabled.
func NewReservationService(registry *reservation.Registry, producer *kafka.Producer, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		registry: registry,
		producer: producer,
		logger:   logger,
	}
}

// RegisterPassenger registers a new passenger.
func (s *ReservationService) RegisterPassenger(ctx context.Context, req RegisterPassengerRequest) (*PassengerDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.registry.AddPassenger(req.FirstName, req.LastName, req.Document)
	if err != nil {
		return nil, err
	}

	s.logger.Info("passenger registered",
		zap.String("document", p.Document()),
	)
	s.publishEvent(ctx, events.PassengerRegistered, events.PassengerRegisteredEvent{
		Document:   p.Document(),
		FullName:   p.FullName(),
		OccurredAt: time.Now().UTC(),
	})

	result := toPassengerDTO(p)
	return &result, nil
}

// GetPassenger retrieves a passenger by document number.
func (s *ReservationService) GetPassenger(ctx context.Context, document string) (*PassengerDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.registry.FindPassengerByDocument(document)
	if !ok {
		return nil, domain.NewNotFoundError("passenger", document)
	}
	result := toPassengerDTO(p)
	return &result, nil
}

// ListPassengers returns all passengers in registration order.
func (s *ReservationService) ListPassengers(ctx context.Context) []PassengerDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	passengers := s.registry.Passengers()
	dtos := make([]PassengerDTO, len(passengers))
	for i, p := range passengers {
		dtos[i] = toPassengerDTO(p)
	}
	return dtos
}

// AddFlight adds a new flight.
func (s *ReservationService) AddFlight(ctx context.Context, req AddFlightRequest) (*FlightDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.registry.AddFlight(req.Number, req.Origin, req.Destination, req.Date, req.Capacity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("flight added",
		zap.String("number", f.Number()),
		zap.Int("capacity", f.Capacity()),
	)
	s.publishEvent(ctx, events.FlightAdded, events.FlightAddedEvent{
		Number:      f.Number(),
		Origin:      f.Origin(),
		Destination: f.Destination(),
		Date:        f.Date().Format(reservation.DateLayout),
		Capacity:    f.Capacity(),
		OccurredAt:  time.Now().UTC(),
	})

	result := toFlightDTO(f)
	return &result, nil
}

// GetFlight retrieves a flight by number.
func (s *ReservationService) GetFlight(ctx context.Context, number string) (*FlightDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.registry.FindFlightByNumber(number)
	if !ok {
		return nil, domain.NewNotFoundError("flight", number)
	}
	result := toFlightDTO(f)
	return &result, nil
}

// ListFlights returns all flights in insertion order.
func (s *ReservationService) ListFlights(ctx context.Context) []FlightDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights := s.registry.Flights()
	dtos := make([]FlightDTO, len(flights))
	for i, f := range flights {
		dtos[i] = toFlightDTO(f)
	}
	return dtos
}

// CreateBooking books a passenger on a flight.
func (s *ReservationService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.registry.CreateBooking(req.FlightNumber, req.PassengerDocument)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID().String()),
		zap.String("flight_number", b.Flight().Number()),
		zap.String("document", b.Passenger().Document()),
	)
	s.publishEvent(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:         b.ID(),
		FlightNumber:      b.Flight().Number(),
		PassengerDocument: b.Passenger().Document(),
		PassengerName:     b.Passenger().FullName(),
		OccurredAt:        time.Now().UTC(),
	})

	result := toBookingDTO(b)
	return &result, nil
}

// GetBooking retrieves a booking by ID.
func (s *ReservationService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.registry.FindBookingByID(id)
	if !ok {
		return nil, domain.NewNotFoundError("booking", id.String())
	}
	result := toBookingDTO(b)
	return &result, nil
}

// CancelBooking cancels an active booking, freeing its seat.
func (s *ReservationService) CancelBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.registry.FindBookingByID(id)
	if !ok {
		return nil, domain.NewNotFoundError("booking", id.String())
	}
	if err := b.Cancel(); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", b.ID().String()),
		zap.String("flight_number", b.Flight().Number()),
	)
	s.publishEvent(ctx, events.BookingCancelled, events.BookingCancelledEvent{
		BookingID:         b.ID(),
		FlightNumber:      b.Flight().Number(),
		PassengerDocument: b.Passenger().Document(),
		OccurredAt:        time.Now().UTC(),
	})

	result := toBookingDTO(b)
	return &result, nil
}

// CompleteBooking completes an active booking.
func (s *ReservationService) CompleteBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.registry.FindBookingByID(id)
	if !ok {
		return nil, domain.NewNotFoundError("booking", id.String())
	}
	if err := b.Complete(); err != nil {
		return nil, err
	}

	s.logger.Info("booking completed",
		zap.String("booking_id", b.ID().String()),
		zap.String("flight_number", b.Flight().Number()),
	)
	s.publishEvent(ctx, events.BookingCompleted, events.BookingCompletedEvent{
		BookingID:         b.ID(),
		FlightNumber:      b.Flight().Number(),
		PassengerDocument: b.Passenger().Document(),
		OccurredAt:        time.Now().UTC(),
	})

	result := toBookingDTO(b)
	return &result, nil
}

// ListBookings returns all bookings in creation order.
func (s *ReservationService) ListBookings(ctx context.Context) []BookingDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.registry.Bookings()
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos
}

// GetFlightBookings returns the bookings attached to a flight.
func (s *ReservationService) GetFlightBookings(ctx context.Context, number string) ([]BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry.FindFlightByNumber(number); !ok {
		return nil, domain.NewNotFoundError("flight", number)
	}

	bookings := s.registry.BookingsForFlight(number)
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, nil
}

// GetPassengerBookings returns the bookings held by a passenger.
func (s *ReservationService) GetPassengerBookings(ctx context.Context, document string) ([]BookingDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry.FindPassengerByDocument(document); !ok {
		return nil, domain.NewNotFoundError("passenger", document)
	}

	bookings := s.registry.BookingsForPassenger(document)
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, nil
}

// GetStats returns system-wide reservation statistics.
func (s *ReservationService) GetStats(ctx context.Context) *StatsDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.registry.Stats()
	byStatus := make(map[string]int, len(stats.BookingsByStatus))
	for status, count := range stats.BookingsByStatus {
		byStatus[string(status)] = count
	}

	return &StatsDTO{
		TotalPassengers:   stats.Passengers,
		TotalFlights:      stats.Flights,
		TotalBookings:     stats.Bookings,
		BookingsByStatus:  byStatus,
		AvailableCapacity: stats.AvailableCapacity,
	}
}

// --- Helpers ---

func toPassengerDTO(p *reservation.Passenger) PassengerDTO {
	return PassengerDTO{
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		FullName:  p.FullName(),
		Document:  p.Document(),
	}
}

func toFlightDTO(f *reservation.Flight) FlightDTO {
	available := f.AvailableCapacity()
	return FlightDTO{
		Number:            f.Number(),
		Origin:            f.Origin(),
		Destination:       f.Destination(),
		Date:              f.Date().Format(reservation.DateLayout),
		Capacity:          f.Capacity(),
		AvailableCapacity: available,
		ActiveBookings:    f.Capacity() - available,
	}
}

func toBookingDTO(b *reservation.Booking) BookingDTO {
	return BookingDTO{
		ID:                b.ID(),
		FlightNumber:      b.Flight().Number(),
		PassengerDocument: b.Passenger().Document(),
		PassengerName:     b.Passenger().FullName(),
		Status:            string(b.Status()),
		CreatedAt:         b.CreatedAt(),
		CancelledAt:       b.CancelledAt(),
		CompletedAt:       b.CompletedAt(),
	}
}

// publishEvent wraps data in a CloudEvent and publishes it, logging failures
// instead of propagating them: events are observational, never part of the
// operation's outcome.
func (s *ReservationService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.producer == nil {
		return
	}

	cloudEvent, err := kafka.NewCloudEvent("service-reservation", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicReservationEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicReservationEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
