package airports

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type RouteUseCase interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, in *upsert.RouteInput) (*domain.Route, error)
	Update(ctx context.Context, id int64, in *upsert.RouteInput, partial bool) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}

type RouteService struct {
	routes   repository.RouteRepository
	resolver *upsert.Resolver
	tx       repository.Transactor
	cache    service.Invalidator
	logger   *slog.Logger
}

func NewRouteService(
	routes repository.RouteRepository,
	resolver *upsert.Resolver,
	tx repository.Transactor,
	cache service.Invalidator,
	logger *slog.Logger,
) *RouteService {
	return &RouteService{routes: routes, resolver: resolver, tx: tx, cache: cache, logger: logger}
}

func (s *RouteService) List(ctx context.Context) ([]domain.Route, error) {
	return s.routes.List(ctx)
}

func (s *RouteService) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

// Create reuses airports with identical values and always inserts a new route.
func (s *RouteService) Create(ctx context.Context, in *upsert.RouteInput) (*domain.Route, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var route domain.Route
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if route, err = s.resolver.NewRoute(ctx, in); err != nil {
			return err
		}
		return s.routes.Create(ctx, &route)
	})
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (s *RouteService) Update(ctx context.Context, id int64, in *upsert.RouteInput, partial bool) (*domain.Route, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var route *domain.Route
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if route, err = s.routes.GetByID(ctx, id); err != nil {
			return err
		}
		return s.resolver.EditRoute(ctx, route, in)
	})
	if err != nil {
		return nil, err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return route, nil
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	if err := s.routes.Delete(ctx, id); err != nil {
		return err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return nil
}

var _ RouteUseCase = (*RouteService)(nil)
