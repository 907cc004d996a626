package crew

import (
	"context"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type CrewUseCase interface {
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, in *upsert.CrewInput) (*domain.Crew, error)
	Update(ctx context.Context, id int64, in *upsert.CrewInput, partial bool) (*domain.Crew, error)
	Delete(ctx context.Context, id int64) error
}

type CrewService struct {
	crew   repository.CrewRepository
	tx     repository.Transactor
	cache  service.Invalidator
	logger *slog.Logger
}

func NewCrewService(crew repository.CrewRepository, tx repository.Transactor, cache service.Invalidator, logger *slog.Logger) *CrewService {
	return &CrewService{crew: crew, tx: tx, cache: cache, logger: logger}
}

func (s *CrewService) List(ctx context.Context) ([]domain.Crew, error) {
	return s.crew.List(ctx)
}

func (s *CrewService) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crew.GetByID(ctx, id)
}

func (s *CrewService) Create(ctx context.Context, in *upsert.CrewInput) (*domain.Crew, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var member domain.Crew
	in.Apply(&member)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkUnique(ctx, &member); err != nil {
			return err
		}
		return s.crew.Create(ctx, &member)
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *CrewService) Update(ctx context.Context, id int64, in *upsert.CrewInput, partial bool) (*domain.Crew, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var member *domain.Crew
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if member, err = s.crew.GetByID(ctx, id); err != nil {
			return err
		}
		in.Apply(member)
		if err := s.checkUnique(ctx, member); err != nil {
			return err
		}
		return s.crew.Update(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return member, nil
}

func (s *CrewService) Delete(ctx context.Context, id int64) error {
	if err := s.crew.Delete(ctx, id); err != nil {
		return err
	}
	service.Invalidate(ctx, s.cache, s.logger)
	return nil
}

// checkUnique rejects a name held by any other crew member. A new member has id 0
// and so excludes nobody.
func (s *CrewService) checkUnique(ctx context.Context, member *domain.Crew) error {
	exists, err := s.crew.ExistsByName(ctx, member.FirstName, member.LastName, member.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateCrew()
	}
	return nil
}

var _ CrewUseCase = (*CrewService)(nil)
