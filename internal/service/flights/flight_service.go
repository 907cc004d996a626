package flights

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/kafka"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type FlightUseCase interface {
	List(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, in *upsert.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, in *upsert.FlightInput, partial bool) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type FlightService struct {
	flights  repository.FlightRepository
	resolver *upsert.Resolver
	tx       repository.Transactor
	cache    service.FlightCache
	events   *service.Events
	logger   *slog.Logger
}

func NewFlightService(
	flights repository.FlightRepository,
	resolver *upsert.Resolver,
	tx repository.Transactor,
	cache service.FlightCache,
	events *service.Events,
	logger *slog.Logger,
) *FlightService {
	return &FlightService{
		flights:  flights,
		resolver: resolver,
		tx:       tx,
		cache:    cache,
		events:   events,
		logger:   logger,
	}
}

func (s *FlightService) List(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	key := q.Key()
	var (
		version   int64
		cacheable bool
	)
	if s.cache != nil {
		cached, v, err := s.cache.GetFlights(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("flight cache read failed", "error", err)
		case cached != nil:
			return cached, nil
		default:
			version, cacheable = v, true
		}
	}

	if err := s.resolver.CheckFilters(ctx, q); err != nil {
		return nil, err
	}
	flights, err := s.flights.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.cache.SetFlights(ctx, version, key, flights); err != nil {
			s.logger.Warn("flight cache write failed", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

// Create resolves the nested route, airplane and crew by exact match, creating
// whatever is missing, and attaches exactly the resolved crew.
func (s *FlightService) Create(ctx context.Context, in *upsert.FlightInput) (*domain.Flight, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var flight domain.Flight
	in.Apply(&flight)
	if err := flight.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if flight.Route, err = s.resolver.Route(ctx, in.Route); err != nil {
			return err
		}
		if flight.Airplane, err = s.resolver.Airplane(ctx, in.Airplane); err != nil {
			return err
		}
		flight.Crew = []domain.Crew{}
		if in.Crew != nil {
			if flight.Crew, err = s.resolver.Crew(ctx, *in.Crew); err != nil {
				return err
			}
		}
		if err := s.flights.Create(ctx, &flight); err != nil {
			return err
		}
		return s.flights.SetCrew(ctx, flight.ID, flight.CrewIDs())
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, kafka.FlightCreated, &flight)
	return &flight, nil
}

// Update edits the linked route and airplane rows in place. The crew is replaced
// only when the input carries a crew list.
func (s *FlightService) Update(ctx context.Context, id int64, in *upsert.FlightInput, partial bool) (*domain.Flight, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var flight *domain.Flight
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if flight, err = s.flights.GetByID(ctx, id); err != nil {
			return err
		}
		in.Apply(flight)
		if err := flight.Validate(); err != nil {
			return err
		}
		if in.Route != nil {
			if err := s.resolver.EditRoute(ctx, &flight.Route, in.Route); err != nil {
				return err
			}
		}
		if in.Airplane != nil {
			if err := s.resolver.EditAirplane(ctx, &flight.Airplane, in.Airplane); err != nil {
				return err
			}
		}
		if err := s.flights.Update(ctx, flight); err != nil {
			return err
		}
		if in.Crew == nil {
			return nil
		}
		if flight.Crew, err = s.resolver.Crew(ctx, *in.Crew); err != nil {
			return err
		}
		return s.flights.SetCrew(ctx, flight.ID, flight.CrewIDs())
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, kafka.FlightUpdated, flight)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.flights.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, kafka.FlightDeleted, &domain.Flight{ID: id})
	return nil
}

func (s *FlightService) afterWrite(ctx context.Context, t kafka.EventType, flight *domain.Flight) {
	service.Invalidate(ctx, s.cache, s.logger)
	var data interface{}
	if t != kafka.FlightDeleted {
		data = flight
	}
	s.events.Publish(ctx, t, flight.ID, 0, data)
}

var _ FlightUseCase = (*FlightService)(nil)
