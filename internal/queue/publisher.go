package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Publisher delivers domain events.  Implementations should not panic;
// an error is returned so the caller can decide to ignore it.
type Publisher interface {
	PublishSaleConfirmed(ctx context.Context, event SaleConfirmedEvent) error
}

// LogPublisher writes each event as a single structured log line.  The
// event payload is attached as JSON under the "event" field.
type LogPublisher struct {
	logger *logrus.Logger
}

// NewLogPublisher returns a publisher bound to logger.
func NewLogPublisher(logger *logrus.Logger) *LogPublisher { return &LogPublisher{logger: logger} }

// PublishSaleConfirmed implements Publisher.
func (p *LogPublisher) PublishSaleConfirmed(ctx context.Context, event SaleConfirmedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	p.logger.WithContext(ctx).WithFields(logrus.Fields{
		"topic":   "sale.confirmed",
		"sale_id": event.SaleID,
		"event":   string(body),
	}).Info("sale confirmed")
	return nil
}

// Discard is a Publisher that drops every event.
type Discard struct{}

// PublishSaleConfirmed implements Publisher.
func (Discard) PublishSaleConfirmed(context.Context, SaleConfirmedEvent) error { return nil }
