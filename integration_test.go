//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPassengerBoarded_CompletesBooking verifies that when a
// PassengerBoardedEvent is published to checkin.events, the reservation
// service picks it up, transitions the booking to "completed", and publishes
// a BookingCompletedEvent of its own.
func TestPassengerBoarded_CompletesBooking(t *testing.T) {
	infra := setupKafka(t)

	stack := setupReservationStack(t, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	// Start the consumer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	// Book a seeded passenger on a seeded flight.
	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		FlightNumber:      "V001",
		PassengerDocument: "12345678",
	})
	require.NoError(t, err)
	require.Equal(t, "active", created.Status)

	// Publish PassengerBoardedEvent from the check-in side.
	evt := events.PassengerBoardedEvent{
		BookingID:         created.ID,
		FlightNumber:      created.FlightNumber,
		PassengerDocument: created.PassengerDocument,
		BoardedAt:         time.Now().UTC(),
		OccurredAt:        time.Now().UTC(),
	}
	publishTestEvent(t, infra.KafkaBrokers, events.TopicCheckinEvents,
		"service-checkin", events.CheckinPassengerBoarded, evt)

	// Assert: booking transitions to "completed".
	completed := waitForBookingStatus(t, stack.Service, created.ID, "completed", 15*time.Second)
	assert.NotNil(t, completed.CompletedAt, "completed_at should be set")

	// Assert: BookingCompletedEvent on reservation.events.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicReservationEvents,
		events.BookingCompleted, 15*time.Second)

	var payload events.BookingCompletedEvent
	require.NoError(t, ce.ParseData(&payload))
	assert.Equal(t, created.ID, payload.BookingID)
	assert.Equal(t, "V001", payload.FlightNumber)
	assert.Equal(t, "12345678", payload.PassengerDocument)
}

// TestBookingLifecycle_PublishesEvents verifies that creating and cancelling
// a booking each publish their lifecycle event to reservation.events.
func TestBookingLifecycle_PublishesEvents(t *testing.T) {
	infra := setupKafka(t)

	stack := setupReservationStack(t, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		FlightNumber:      "V002",
		PassengerDocument: "87654321",
	})
	require.NoError(t, err)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicReservationEvents,
		events.BookingCreated, 15*time.Second)

	var createdEvt events.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&createdEvt))
	assert.Equal(t, created.ID, createdEvt.BookingID)
	assert.Equal(t, "V002", createdEvt.FlightNumber)
	assert.Equal(t, "87654321", createdEvt.PassengerDocument)
	assert.Equal(t, "Maria Gomez", createdEvt.PassengerName)

	_, err = stack.Service.CancelBooking(ctx, created.ID)
	require.NoError(t, err)

	ce = consumeOneEvent(t, infra.KafkaBrokers, events.TopicReservationEvents,
		events.BookingCancelled, 15*time.Second)

	var cancelledEvt events.BookingCancelledEvent
	require.NoError(t, ce.ParseData(&cancelledEvt))
	assert.Equal(t, created.ID, cancelledEvt.BookingID)
	assert.Equal(t, "V002", cancelledEvt.FlightNumber)
}
