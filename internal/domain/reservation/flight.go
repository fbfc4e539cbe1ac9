package reservation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
)

// DateLayout is the wire and display format for flight dates.
const DateLayout = "2006-01-02"

var flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2,}$`)

// Flight is a scheduled route with a fixed seat capacity. Core fields are
// immutable after construction; the flight tracks its bookings in insertion
// order and derives its remaining capacity from them.
type Flight struct {
	number      string
	origin      string
	destination string
	date        time.Time
	capacity    int
	bookings    []*Booking
}

// NewFlight creates a Flight with validated, normalized fields. The flight
// number is upper-cased and must be alphanumeric with at least 2 characters
// (e.g. "V001", "AA1234"); cities must be at least 2 characters; the date
// must be a real calendar date in YYYY-MM-DD form; capacity is 1 to 1000.
func NewFlight(number, origin, destination, date string, capacity int) (*Flight, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if !flightNumberPattern.MatchString(number) {
		return nil, domain.NewValidationError("flight number must be at least 2 alphanumeric characters")
	}
	if utf8.RuneCountInString(origin) < 2 {
		return nil, domain.NewValidationError("origin city must be at least 2 characters")
	}
	if utf8.RuneCountInString(destination) < 2 {
		return nil, domain.NewValidationError("destination city must be at least 2 characters")
	}
	departure, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, domain.NewValidationError("date must be a valid calendar date in YYYY-MM-DD format")
	}
	if capacity < 1 || capacity > 1000 {
		return nil, domain.NewValidationError("capacity must be an integer between 1 and 1000")
	}

	return &Flight{
		number:      number,
		origin:      titleCase(origin),
		destination: titleCase(destination),
		date:        departure,
		capacity:    capacity,
	}, nil
}

// --- Getters ---

// Number returns the normalized flight number.
func (f *Flight) Number() string { return f.number }

// Origin returns the normalized origin city.
func (f *Flight) Origin() string { return f.origin }

// Destination returns the normalized destination city.
func (f *Flight) Destination() string { return f.destination }

// Date returns the departure date.
func (f *Flight) Date() time.Time { return f.date }

// Capacity returns the total seat capacity.
func (f *Flight) Capacity() int { return f.capacity }

// Bookings returns a snapshot of the flight's bookings in insertion order.
func (f *Flight) Bookings() []*Booking {
	out := make([]*Booking, len(f.bookings))
	copy(out, f.bookings)
	return out
}

// AvailableCapacity returns the total capacity minus the count of bookings
// on this flight in active state. Recomputed on every call, never cached,
// so it always reflects the current booking state.
func (f *Flight) AvailableCapacity() int {
	active := 0
	for _, b := range f.bookings {
		if b.IsActive() {
			active++
		}
	}
	return f.capacity - active
}

// attachBooking appends a booking to the flight's collection. Only the
// Registry calls this, as part of its atomic create-booking sequence.
func (f *Flight) attachBooking(b *Booking) {
	f.bookings = append(f.bookings, b)
}
