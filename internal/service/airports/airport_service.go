package airports

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, in *upsert.AirportInput) (*domain.Airport, error)
	Update(ctx context.Context, id int64, in *upsert.AirportInput, partial bool) (*domain.Airport, error)
	Delete(ctx context.Context, id int64) error
}

type AirportService struct {
	airports repository.AirportRepository
	tx       repository.Transactor
	cache    service.Invalidator
	logger   *slog.Logger
}

func NewAirportService(airports repository.AirportRepository, tx repository.Transactor, cache service.Invalidator, logger *slog.Logger) *AirportService {
	return &AirportService{airports: airports, tx: tx, cache: cache, logger: logger}
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *AirportService) Create(ctx context.Context, in *upsert.AirportInput) (*domain.Airport, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var airport domain.Airport
	in.Apply(&airport)
	if err := s.airports.Create(ctx, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

func (s *AirportService) Update(ctx context.Context, id int64, in *upsert.AirportInput, partial bool) (*domain.Airport, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var airport *domain.Airport
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if airport, err = s.airports.GetByID(ctx, id); err != nil {
			return err
		}
		in.Apply(airport)
		return s.airports.Update(ctx, airport)
	})
	if err != nil {
		return nil, err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return airport, nil
}

func (s *AirportService) Delete(ctx context.Context, id int64) error {
	if err := s.airports.Delete(ctx, id); err != nil {
		return err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return nil
}

var _ AirportUseCase = (*AirportService)(nil)
