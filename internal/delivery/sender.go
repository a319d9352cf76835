// Package delivery hands booking events to the outside world. The core only
// composes notification content; this sender is the worker-side stand-in for
// the real push/email transport.
package delivery

import (
	"context"

	"github.com/duchauuuuu/flight-backend/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Sender struct {
	logger *logrus.Logger
}

func NewSender(logger *logrus.Logger) *Sender {
	if logger == nil {
		logger = logrus.New()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.WithFields(logrus.Fields{
		"type":         event.Type,
		"booking_code": event.BookingCode,
		"user":         event.UserID,
		"flights":      event.FlightIDs,
	}).Info("delivering booking notification")
	return nil
}
