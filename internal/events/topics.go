package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics this service publishes to or consumes from.
const (
	// TopicReservationEvents carries every reservation lifecycle event.
	TopicReservationEvents = "reservation.events"

	// TopicCheckinEvents is published by the check-in system; boarded
	// passengers complete their bookings here.
	TopicCheckinEvents = "checkin.events"
)

// Event types on reservation.events.
const (
	PassengerRegistered = "reservation.passenger.registered"
	FlightAdded         = "reservation.flight.added"
	BookingCreated      = "reservation.booking.created"
	BookingCancelled    = "reservation.booking.cancelled"
	BookingCompleted    = "reservation.booking.completed"
)

// Event types on checkin.events.
const (
	CheckinPassengerBoarded = "checkin.passenger.boarded"
)

// PassengerRegisteredEvent is emitted when a new passenger is registered.
type PassengerRegisteredEvent struct {
	Document   string    `json:"document"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FlightAddedEvent is emitted when a new flight is added.
type FlightAddedEvent struct {
	Number      string    `json:"number"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Capacity    int       `json:"capacity"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingCreatedEvent is emitted when a booking is created.
type BookingCreatedEvent struct {
	BookingID         uuid.UUID `json:"booking_id"`
	FlightNumber      string    `json:"flight_number"`
	PassengerDocument string    `json:"passenger_document"`
	PassengerName     string    `json:"passenger_name"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is emitted when a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID         uuid.UUID `json:"booking_id"`
	FlightNumber      string    `json:"flight_number"`
	PassengerDocument string    `json:"passenger_document"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// BookingCompletedEvent is emitted when a booking is completed.
type BookingCompletedEvent struct {
	BookingID         uuid.UUID `json:"booking_id"`
	FlightNumber      string    `json:"flight_number"`
	PassengerDocument string    `json:"passenger_document"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// PassengerBoardedEvent is the checkin.passenger.boarded payload.
type PassengerBoardedEvent struct {
	BookingID         uuid.UUID `json:"booking_id"`
	FlightNumber      string    `json:"flight_number"`
	PassengerDocument string    `json:"passenger_document"`
	BoardedAt         time.Time `json:"boarded_at"`
	OccurredAt        time.Time `json:"occurred_at"`
}
