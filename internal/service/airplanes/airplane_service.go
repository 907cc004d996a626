package airplanes

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type AirplaneUseCase interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, in *upsert.AirplaneInput) (*domain.Airplane, error)
	Update(ctx context.Context, id int64, in *upsert.AirplaneInput, partial bool) (*domain.Airplane, error)
	Delete(ctx context.Context, id int64) error
}

type AirplaneService struct {
	airplanes repository.AirplaneRepository
	resolver  *upsert.Resolver
	tx        repository.Transactor
	cache     service.Invalidator
	logger    *slog.Logger
}

func NewAirplaneService(
	airplanes repository.AirplaneRepository,
	resolver *upsert.Resolver,
	tx repository.Transactor,
	cache service.Invalidator,
	logger *slog.Logger,
) *AirplaneService {
	return &AirplaneService{airplanes: airplanes, resolver: resolver, tx: tx, cache: cache, logger: logger}
}

func (s *AirplaneService) List(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *AirplaneService) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

// Create reuses an airplane type with the same name and always inserts the airplane.
func (s *AirplaneService) Create(ctx context.Context, in *upsert.AirplaneInput) (*domain.Airplane, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var airplane domain.Airplane
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if airplane, err = s.resolver.NewAirplane(ctx, in); err != nil {
			return err
		}
		return s.airplanes.Create(ctx, &airplane)
	})
	if err != nil {
		return nil, err
	}
	return &airplane, nil
}

func (s *AirplaneService) Update(ctx context.Context, id int64, in *upsert.AirplaneInput, partial bool) (*domain.Airplane, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var airplane *domain.Airplane
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if airplane, err = s.airplanes.GetByID(ctx, id); err != nil {
			return err
		}
		return s.resolver.EditAirplane(ctx, airplane, in)
	})
	if err != nil {
		return nil, err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return airplane, nil
}

func (s *AirplaneService) Delete(ctx context.Context, id int64) error {
	if err := s.airplanes.Delete(ctx, id); err != nil {
		return err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return nil
}

var _ AirplaneUseCase = (*AirplaneService)(nil)
