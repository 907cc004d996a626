package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/kafka"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/upsert"
)

type OrderUseCase interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, in *upsert.OrderInput) (*domain.Order, error)
	Update(ctx context.Context, id int64, in *upsert.OrderInput, partial bool) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type OrderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	tx     repository.Transactor
	events *service.Events
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, tx repository.Transactor, events *service.Events) *OrderService {
	return &OrderService{orders: orders, users: users, tx: tx, events: events}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create always assigns the order to the acting user; a user in the input is ignored.
func (s *OrderService) Create(ctx context.Context, _ *upsert.OrderInput) (*domain.Order, error) {
	actor, ok := auth.ActorFrom(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	order := domain.Order{UserID: actor.UserID}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, kafka.OrderCreated, order.ID, order.UserID, order)
	return &order, nil
}

// Update can only reassign the owner.
func (s *OrderService) Update(ctx context.Context, id int64, in *upsert.OrderInput, partial bool) (*domain.Order, error) {
	if !partial && in.User == nil {
		return nil, domain.ValidationErrors{domain.Required("user")}
	}

	var order *domain.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if order, err = s.orders.GetByID(ctx, id); err != nil {
			return err
		}
		if in.User == nil {
			return nil
		}
		if _, err := s.users.GetByID(ctx, *in.User); err != nil {
			return relatedError(err, "user", *in.User)
		}
		order.UserID = *in.User
		return s.orders.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, kafka.OrderDeleted, id, 0, nil)
	return nil
}

// relatedError reports an unknown referenced id as a field error.
func relatedError(err error, field string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(domain.KindInvalid, field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
	}
	return err
}

var _ OrderUseCase = (*OrderService)(nil)
