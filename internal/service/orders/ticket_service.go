package orders

import (
	"context"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/kafka"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type TicketUseCase interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, in *upsert.TicketInput) (*domain.Ticket, error)
	Update(ctx context.Context, id int64, in *upsert.TicketInput, partial bool) (*domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
}

type TicketService struct {
	tickets repository.TicketRepository
	flights repository.FlightRepository
	orders  repository.OrderRepository
	tx      repository.Transactor
	events  *service.Events
}

func NewTicketService(
	tickets repository.TicketRepository,
	flights repository.FlightRepository,
	orders repository.OrderRepository,
	tx repository.Transactor,
	events *service.Events,
) *TicketService {
	return &TicketService{tickets: tickets, flights: flights, orders: orders, tx: tx, events: events}
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) Create(ctx context.Context, in *upsert.TicketInput) (*domain.Ticket, error) {
	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var ticket domain.Ticket
	in.Apply(&ticket)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolve(ctx, &ticket, true, true); err != nil {
			return err
		}
		if err := s.validate(ctx, &ticket); err != nil {
			return err
		}
		return s.tickets.Create(ctx, &ticket)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, kafka.TicketCreated, ticket.ID, ticket.Order.UserID, ticket)
	return &ticket, nil
}

func (s *TicketService) Update(ctx context.Context, id int64, in *upsert.TicketInput, partial bool) (*domain.Ticket, error) {
	var errs domain.ValidationErrors
	in.Check("", partial, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var ticket *domain.Ticket
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if ticket, err = s.tickets.GetByID(ctx, id); err != nil {
			return err
		}
		in.Apply(ticket)
		if err := s.resolve(ctx, ticket, in.Flight != nil, in.Order != nil); err != nil {
			return err
		}
		if err := s.validate(ctx, ticket); err != nil {
			return err
		}
		return s.tickets.Update(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, kafka.TicketUpdated, ticket.ID, ticket.Order.UserID, ticket)
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id int64) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, kafka.TicketDeleted, id, 0, nil)
	return nil
}

// resolve loads the referenced flight and order so seat checks see the airplane.
func (s *TicketService) resolve(ctx context.Context, ticket *domain.Ticket, flight, order bool) error {
	if flight {
		f, err := s.flights.GetByID(ctx, ticket.Flight.ID)
		if err != nil {
			return relatedError(err, "flight", ticket.Flight.ID)
		}
		ticket.Flight = *f
	}
	if order {
		o, err := s.orders.GetByID(ctx, ticket.Order.ID)
		if err != nil {
			return relatedError(err, "order", ticket.Order.ID)
		}
		ticket.Order = *o
	}
	return nil
}

func (s *TicketService) validate(ctx context.Context, ticket *domain.Ticket) error {
	if err := ticket.ValidateSeat(); err != nil {
		return err
	}
	taken, err := s.tickets.SeatTaken(ctx, ticket.Flight.ID, ticket.Row, ticket.Seat, ticket.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrSeatTaken()
	}
	return nil
}

var _ TicketUseCase = (*TicketService)(nil)
