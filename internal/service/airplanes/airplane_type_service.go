package airplanes

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type AirplaneTypeUseCase interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, in *upsert.AirplaneTypeInput) (*domain.AirplaneType, error)
	Update(ctx context.Context, id int64, in *upsert.AirplaneTypeInput, partial bool) (*domain.AirplaneType, error)
	Delete(ctx context.Context, id int64) error
}

type AirplaneTypeService struct {
	types  repository.AirplaneTypeRepository
	tx     repository.Transactor
	cache  service.Invalidator
	logger *slog.Logger
}

func NewAirplaneTypeService(types repository.AirplaneTypeRepository, tx repository.Transactor, cache service.Invalidator, logger *slog.Logger) *AirplaneTypeService {
	return &AirplaneTypeService{types: types, tx: tx, cache: cache, logger: logger}
}

func (s *AirplaneTypeService) List(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.types.List(ctx)
}

func (s *AirplaneTypeService) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *AirplaneTypeService) Create(ctx context.Context, in *upsert.AirplaneTypeInput) (*domain.AirplaneType, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var t domain.AirplaneType
	in.Apply(&t)
	if err := s.types.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *AirplaneTypeService) Update(ctx context.Context, id int64, in *upsert.AirplaneTypeInput, partial bool) (*domain.AirplaneType, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var t *domain.AirplaneType
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if t, err = s.types.GetByID(ctx, id); err != nil {
			return err
		}
		in.Apply(t)
		return s.types.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return t, nil
}

func (s *AirplaneTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return nil
}

var _ AirplaneTypeUseCase = (*AirplaneTypeService)(nil)
