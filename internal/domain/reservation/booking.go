package reservation

import (
	"fmt"
	"time"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/google/uuid"
)

// Booking links one passenger to one flight and carries a lifecycle state.
// Bookings are created active by the Registry, transition at most once to
// cancelled or completed, and are never deleted.
type Booking struct {
	id          uuid.UUID
	passenger   *Passenger
	flight      *Flight
	status      BookingStatus
	createdAt   time.Time
	cancelledAt *time.Time
	completedAt *time.Time
}

// newBooking creates an active booking. Only the Registry constructs
// bookings, after it has resolved both references and checked its invariants.
func newBooking(passenger *Passenger, flight *Flight) *Booking {
	return &Booking{
		id:        uuid.New(),
		passenger: passenger,
		flight:    flight,
		status:    StatusActive,
		createdAt: time.Now().UTC(),
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Passenger returns the booked passenger.
func (b *Booking) Passenger() *Passenger { return b.passenger }

// Flight returns the booked flight.
func (b *Booking) Flight() *Flight { return b.flight }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// CancelledAt returns the cancellation time, or nil if never cancelled.
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

// CompletedAt returns the completion time, or nil if never completed.
func (b *Booking) CompletedAt() *time.Time { return b.completedAt }

// IsActive returns true while the booking counts against flight capacity.
func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

// --- Behavior ---

// Cancel transitions the booking from active to cancelled. Cancelling frees
// one unit of the flight's available capacity implicitly, since availability
// is derived from active bookings.
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return domain.NewInvalidStateError(fmt.Sprintf("cannot cancel a non-active booking: status is %s", b.status))
	}
	now := time.Now().UTC()
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// Complete transitions the booking from active to completed.
func (b *Booking) Complete() error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return domain.NewInvalidStateError(fmt.Sprintf("cannot complete a non-active booking: status is %s", b.status))
	}
	now := time.Now().UTC()
	b.status = StatusCompleted
	b.completedAt = &now
	return nil
}
