package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/AeroAndes-Airlines/service-reservation/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CheckinEventConsumer listens to check-in events and completes the booking
// of each boarded passenger.
type CheckinEventConsumer struct {
	consumer *kafka.Consumer
	service  *application.ReservationService
	logger   *zap.Logger
}

// NewCheckinEventConsumer creates a new CheckinEventConsumer.
func NewCheckinEventConsumer(
	brokers []string,
	groupID string,
	service *application.ReservationService,
	logger *zap.Logger,
) *CheckinEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicCheckinEvents, logger)
	return &CheckinEventConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming check-in events. This blocks until the context is cancelled.
func (c *CheckinEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *CheckinEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *CheckinEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from checkin topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case CheckinPassengerBoarded:
		return c.handlePassengerBoarded(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled checkin event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *CheckinEventConsumer) handlePassengerBoarded(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt PassengerBoardedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PassengerBoardedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing passenger boarded event",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("flight_number", evt.FlightNumber),
	)

	_, err := c.service.CompleteBooking(ctx, evt.BookingID)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			// Unknown or already-terminal booking: redelivery cannot fix it.
			c.logger.Warn("boarding event did not complete booking",
				zap.String("booking_id", evt.BookingID.String()),
				zap.String("reason", de.Message),
			)
			return nil
		}
		c.logger.Error("failed to complete booking after boarding",
			zap.String("booking_id", evt.BookingID.String()),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("booking completed after boarding",
		zap.String("booking_id", evt.BookingID.String()),
	)
	return nil
}
