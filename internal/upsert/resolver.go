package upsert

import (
	"context"
	"errors"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
)

// Resolver turns nested literals into stored rows. Callers run it inside a
// transaction and are expected to have called Check on the input first.
type Resolver struct {
	airports  repository.AirportRepository
	routes    repository.RouteRepository
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
	crew      repository.CrewRepository
}

func NewResolver(
	airports repository.AirportRepository,
	routes repository.RouteRepository,
	types repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	crew repository.CrewRepository,
) *Resolver {
	return &Resolver{
		airports:  airports,
		routes:    routes,
		types:     types,
		airplanes: airplanes,
		crew:      crew,
	}
}

// Airport returns the airport with exactly these values, creating it if needed.
func (r *Resolver) Airport(ctx context.Context, in *AirportInput) (domain.Airport, error) {
	var a domain.Airport
	in.Apply(&a)
	_, err := r.airports.GetOrCreate(ctx, &a)
	return a, err
}

// NewRoute resolves both airports and validates the route without storing it.
func (r *Resolver) NewRoute(ctx context.Context, in *RouteInput) (domain.Route, error) {
	var rt domain.Route
	src, err := r.Airport(ctx, in.Source)
	if err != nil {
		return rt, err
	}
	dst, err := r.Airport(ctx, in.Destination)
	if err != nil {
		return rt, err
	}
	rt.Source, rt.Destination = src, dst
	setIf(&rt.Distance, in.Distance)
	return rt, rt.Validate()
}

// Route is NewRoute followed by a get-or-create on (source, destination, distance).
func (r *Resolver) Route(ctx context.Context, in *RouteInput) (domain.Route, error) {
	rt, err := r.NewRoute(ctx, in)
	if err != nil {
		return rt, err
	}
	_, err = r.routes.GetOrCreate(ctx, &rt)
	return rt, err
}

// EditRoute applies in to an existing route. Supplied airport data edits the
// linked airport rows in place; the route never points at different airports.
func (r *Resolver) EditRoute(ctx context.Context, rt *domain.Route, in *RouteInput) error {
	if in.Source != nil {
		in.Source.Apply(&rt.Source)
		if err := r.airports.Update(ctx, &rt.Source); err != nil {
			return err
		}
	}
	if in.Destination != nil {
		in.Destination.Apply(&rt.Destination)
		if err := r.airports.Update(ctx, &rt.Destination); err != nil {
			return err
		}
	}
	setIf(&rt.Distance, in.Distance)
	if err := rt.Validate(); err != nil {
		return err
	}
	return r.routes.Update(ctx, rt)
}

func (r *Resolver) AirplaneType(ctx context.Context, in *AirplaneTypeInput) (domain.AirplaneType, error) {
	var t domain.AirplaneType
	in.Apply(&t)
	_, err := r.types.GetOrCreate(ctx, &t)
	return t, err
}

// NewAirplane resolves the airplane type without storing the airplane.
func (r *Resolver) NewAirplane(ctx context.Context, in *AirplaneInput) (domain.Airplane, error) {
	var a domain.Airplane
	in.Apply(&a)
	t, err := r.AirplaneType(ctx, in.AirplaneType)
	if err != nil {
		return a, err
	}
	a.AirplaneType = t
	return a, nil
}

// Airplane is NewAirplane followed by a get-or-create on all airplane fields.
func (r *Resolver) Airplane(ctx context.Context, in *AirplaneInput) (domain.Airplane, error) {
	a, err := r.NewAirplane(ctx, in)
	if err != nil {
		return a, err
	}
	_, err = r.airplanes.GetOrCreate(ctx, &a)
	return a, err
}

// EditAirplane applies in to an existing airplane, editing its type in place.
func (r *Resolver) EditAirplane(ctx context.Context, a *domain.Airplane, in *AirplaneInput) error {
	if in.AirplaneType != nil {
		in.AirplaneType.Apply(&a.AirplaneType)
		if err := r.types.Update(ctx, &a.AirplaneType); err != nil {
			return err
		}
	}
	in.Apply(a)
	return r.airplanes.Update(ctx, a)
}

// Crew get-or-creates every entry. Repeated members appear once in the result.
func (r *Resolver) Crew(ctx context.Context, in []CrewInput) ([]domain.Crew, error) {
	crew := make([]domain.Crew, 0, len(in))
	seen := make(map[int64]struct{}, len(in))
	for i := range in {
		var c domain.Crew
		in[i].Apply(&c)
		if _, err := r.crew.GetOrCreate(ctx, &c); err != nil {
			return nil, err
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		crew = append(crew, c)
	}
	return crew, nil
}

// CheckFilters reports route and airplane filter ids that match no row.
func (r *Resolver) CheckFilters(ctx context.Context, q domain.FlightQuery) error {
	var errs domain.ValidationErrors
	if q.RouteID != nil {
		if err := choiceExists(ctx, *q.RouteID, "route", r.routes.GetByID, &errs); err != nil {
			return err
		}
	}
	if q.AirplaneID != nil {
		if err := choiceExists(ctx, *q.AirplaneID, "airplane", r.airplanes.GetByID, &errs); err != nil {
			return err
		}
	}
	return errs.Err()
}

func choiceExists[T any](ctx context.Context, id int64, field string, get func(context.Context, int64) (*T, error), errs *domain.ValidationErrors) error {
	_, err := get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		errs.Add(domain.NewValidationError(domain.KindInvalid, field,
			"Select a valid choice. That choice is not one of the available choices."))
		return nil
	}
	return err
}
