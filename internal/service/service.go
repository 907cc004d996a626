// Package service holds collaborators shared by the use-case packages below it.
package service

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/kafka"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightCache interface {
	GetFlights(ctx context.Context, queryKey string) ([]domain.Flight, int64, error)
	SetFlights(ctx context.Context, version int64, queryKey string, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// Invalidator is the part of FlightCache needed by writes that change what a
// flight listing renders (airports, routes, airplanes, crew).
type Invalidator interface {
	InvalidateFlights(ctx context.Context) error
}

// Events publishes domain events after commit. Failures are logged, never returned.
// A nil *Events publishes nothing.
type Events struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewEvents(producer Producer, topic string, logger *slog.Logger) *Events {
	return &Events{producer: producer, topic: topic, logger: logger}
}

func (e *Events) Publish(ctx context.Context, t kafka.EventType, entityID, userID int64, data interface{}) {
	if e == nil || e.producer == nil || e.topic == "" {
		return
	}
	ev, err := kafka.NewEvent(t, entityID, userID, data)
	if err == nil {
		err = e.producer.Publish(ctx, e.topic, ev.Key(), ev)
	}
	if err != nil {
		e.logger.Warn("failed to publish event", "type", t, "entity_id", entityID, "error", err)
	}
}

// Invalidate drops cached flight listings, logging instead of failing the write.
func Invalidate(ctx context.Context, cache Invalidator, logger *slog.Logger) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateFlights(ctx); err != nil {
		logger.Warn("failed to invalidate flight cache", "error", err)
	}
}
