package reservation

import (
	"fmt"
	"strings"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/google/uuid"
)

// Registry owns all passenger, flight, and booking state and enforces the
// cross-entity invariants: unique documents, unique flight numbers, active
// bookings never exceeding flight capacity, and at most one active booking
// per (passenger, flight) pair. It is the only component other layers call.
//
// A Registry is explicitly constructed and passed around; it holds no global
// state and performs no locking. Callers that run concurrently must
// serialize access themselves.
type Registry struct {
	passengersByDocument map[string]*Passenger
	passengers           []*Passenger
	flightsByNumber      map[string]*Flight
	flights              []*Flight
	bookings             []*Booking
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		passengersByDocument: make(map[string]*Passenger),
		flightsByNumber:      make(map[string]*Flight),
	}
}

// flightKey normalizes a flight number the same way construction does, so
// lookups match regardless of input casing and padding.
func flightKey(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// documentKey normalizes a document number for lookup.
func documentKey(document string) string {
	return strings.TrimSpace(document)
}

// AddPassenger registers a new passenger. The duplicate-document check runs
// before field validation, so a repeated document always fails with a
// conflict error regardless of the name fields; malformed fields on a new
// document fail with a validation error.
func (r *Registry) AddPassenger(firstName, lastName, document string) (*Passenger, error) {
	if _, exists := r.passengersByDocument[documentKey(document)]; exists {
		return nil, domain.NewConflictError(fmt.Sprintf("document already registered: %s", documentKey(document)))
	}
	p, err := NewPassenger(firstName, lastName, document)
	if err != nil {
		return nil, err
	}
	r.passengersByDocument[p.Document()] = p
	r.passengers = append(r.passengers, p)
	return p, nil
}

// AddFlight validates and registers a new flight. It fails with a validation
// error on malformed fields and with a conflict error when the flight number
// already exists.
func (r *Registry) AddFlight(number, origin, destination, date string, capacity int) (*Flight, error) {
	f, err := NewFlight(number, origin, destination, date, capacity)
	if err != nil {
		return nil, err
	}
	if _, exists := r.flightsByNumber[f.Number()]; exists {
		return nil, domain.NewConflictError(fmt.Sprintf("flight number already exists: %s", f.Number()))
	}
	r.flightsByNumber[f.Number()] = f
	r.flights = append(r.flights, f)
	return f, nil
}

// FindPassengerByDocument looks up a passenger by document number. Absence
// is reported through the boolean, not as an error.
func (r *Registry) FindPassengerByDocument(document string) (*Passenger, bool) {
	p, ok := r.passengersByDocument[documentKey(document)]
	return p, ok
}

// FindFlightByNumber looks up a flight by its number. Absence is reported
// through the boolean, not as an error.
func (r *Registry) FindFlightByNumber(number string) (*Flight, bool) {
	f, ok := r.flightsByNumber[flightKey(number)]
	return f, ok
}

// FindBookingByID looks up a booking in the global sequence by its ID.
func (r *Registry) FindBookingByID(id uuid.UUID) (*Booking, bool) {
	for _, b := range r.bookings {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// CreateBooking books the given passenger on the given flight. The checks
// run in a fixed order: flight exists, passenger exists, the flight has
// available capacity, and the pair has no active booking yet. On success the
// new active booking is attached to the flight and appended to the global
// sequence in one step, so no partial state is ever observable.
func (r *Registry) CreateBooking(flightNumber, passengerDocument string) (*Booking, error) {
	number := flightKey(flightNumber)
	flight, ok := r.flightsByNumber[number]
	if !ok {
		return nil, domain.NewNotFoundError("flight", number)
	}

	document := documentKey(passengerDocument)
	passenger, ok := r.passengersByDocument[document]
	if !ok {
		return nil, domain.NewNotFoundError("passenger", document)
	}

	if flight.AvailableCapacity() <= 0 {
		return nil, domain.NewConflictError(fmt.Sprintf("flight is at full capacity: %s", number))
	}

	for _, b := range r.bookings {
		if b.IsActive() && b.Passenger().Document() == document && b.Flight().Number() == number {
			return nil, domain.NewConflictError(fmt.Sprintf("duplicate active booking: passenger %s already holds flight %s", document, number))
		}
	}

	booking := newBooking(passenger, flight)
	flight.attachBooking(booking)
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

// Passengers returns a snapshot of all passengers in insertion order.
func (r *Registry) Passengers() []*Passenger {
	out := make([]*Passenger, len(r.passengers))
	copy(out, r.passengers)
	return out
}

// Flights returns a snapshot of all flights in insertion order.
func (r *Registry) Flights() []*Flight {
	out := make([]*Flight, len(r.flights))
	copy(out, r.flights)
	return out
}

// Bookings returns a snapshot of all bookings in insertion order.
func (r *Registry) Bookings() []*Booking {
	out := make([]*Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// BookingsForFlight returns the bookings attached to the given flight in
// insertion order. An unknown flight yields an empty result.
func (r *Registry) BookingsForFlight(number string) []*Booking {
	flight, ok := r.flightsByNumber[flightKey(number)]
	if !ok {
		return nil
	}
	return flight.Bookings()
}

// BookingsForPassenger returns the bookings held by the given passenger in
// insertion order. An unknown document yields an empty result.
func (r *Registry) BookingsForPassenger(document string) []*Booking {
	key := documentKey(document)
	var out []*Booking
	for _, b := range r.bookings {
		if b.Passenger().Document() == key {
			out = append(out, b)
		}
	}
	return out
}

// Stats is a point-in-time summary of the registry's contents.
type Stats struct {
	Passengers        int
	Flights           int
	Bookings          int
	BookingsByStatus  map[BookingStatus]int
	AvailableCapacity int
}

// Stats computes system-wide statistics: entity counts, bookings grouped by
// status (all statuses present, zero-valued when unused), and the aggregate
// available capacity across all flights.
func (r *Registry) Stats() Stats {
	byStatus := map[BookingStatus]int{
		StatusActive:    0,
		StatusCancelled: 0,
		StatusCompleted: 0,
	}
	for _, b := range r.bookings {
		byStatus[b.Status()]++
	}

	available := 0
	for _, f := range r.flights {
		available += f.AvailableCapacity()
	}

	return Stats{
		Passengers:        len(r.passengers),
		Flights:           len(r.flights),
		Bookings:          len(r.bookings),
		BookingsByStatus:  byStatus,
		AvailableCapacity: available,
	}
}
