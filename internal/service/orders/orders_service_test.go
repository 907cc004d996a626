package orders

import (
	"context"
	"testing"

	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository/mocks"
	"github.com/reinvvay/airport-api/internal/upsert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestOrderService_CreateStampsActingUser(t *testing.T) {
	ctx := auth.WithActor(context.Background(), auth.Actor{UserID: 3, IsStaff: true})
	orders := new(mocks.OrderRepository)
	svc := NewOrderService(orders, new(mocks.UserRepository), mocks.Transactor{}, nil)

	orders.On("Create", ctx, &domain.Order{UserID: 3}).Return(nil).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 10 })

	order, err := svc.Create(ctx, &upsert.OrderInput{User: ptr(int64(99))})

	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)
	assert.Equal(t, int64(3), order.UserID)
}

func TestOrderService_CreateWithoutActor(t *testing.T) {
	svc := NewOrderService(new(mocks.OrderRepository), new(mocks.UserRepository), mocks.Transactor{}, nil)

	_, err := svc.Create(context.Background(), &upsert.OrderInput{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestOrderService_UpdateUnknownUser(t *testing.T) {
	ctx := context.Background()
	orders := new(mocks.OrderRepository)
	users := new(mocks.UserRepository)
	svc := NewOrderService(orders, users, mocks.Transactor{}, nil)

	orders.On("GetByID", ctx, int64(1)).Return(&domain.Order{ID: 1, UserID: 3}, nil)
	users.On("GetByID", ctx, int64(8)).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(ctx, 1, &upsert.OrderInput{User: ptr(int64(8))}, false)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "user", vErr.Field)
	assert.Equal(t, `Invalid pk "8" - object does not exist.`, vErr.Message)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

type ticketMocks struct {
	tickets *mocks.TicketRepository
	flights *mocks.FlightRepository
	orders  *mocks.OrderRepository
}

func newTicketService() (*TicketService, ticketMocks) {
	m := ticketMocks{
		tickets: new(mocks.TicketRepository),
		flights: new(mocks.FlightRepository),
		orders:  new(mocks.OrderRepository),
	}
	return NewTicketService(m.tickets, m.flights, m.orders, mocks.Transactor{}, nil), m
}

func flightWithSeats(rows, seats int) *domain.Flight {
	return &domain.Flight{ID: 1, Airplane: domain.Airplane{ID: 2, Rows: rows, SeatsInRow: seats}}
}

func ticketInput(row, seat int) *upsert.TicketInput {
	return &upsert.TicketInput{Row: ptr(row), Seat: ptr(seat), Flight: ptr(int64(1)), Order: ptr(int64(5))}
}

func TestTicketService_CreateAccepted(t *testing.T) {
	ctx := context.Background()
	svc, m := newTicketService()

	m.flights.On("GetByID", ctx, int64(1)).Return(flightWithSeats(10, 4), nil)
	m.orders.On("GetByID", ctx, int64(5)).Return(&domain.Order{ID: 5, UserID: 3}, nil)
	m.tickets.On("SeatTaken", ctx, int64(1), 10, 4, int64(0)).Return(false, nil)
	m.tickets.On("Create", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Ticket).ID = 20 })

	ticket, err := svc.Create(ctx, ticketInput(10, 4))

	require.NoError(t, err)
	assert.Equal(t, int64(20), ticket.ID)
	assert.Equal(t, 10, ticket.Flight.Airplane.Rows)
	assert.Equal(t, int64(3), ticket.Order.UserID)
}

func TestTicketService_CreateSeatOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		row, seat int
		field     string
		message   string
	}{
		{"row zero", 0, 1, "row", "Row must be between 1 and 10."},
		{"row too high", 11, 1, "row", "Row must be between 1 and 10."},
		{"seat zero", 1, 0, "seat", "Seat must be between 1 and 4."},
		{"seat too high", 1, 5, "seat", "Seat must be between 1 and 4."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newTicketService()
			m.flights.On("GetByID", ctx, int64(1)).Return(flightWithSeats(10, 4), nil)
			m.orders.On("GetByID", ctx, int64(5)).Return(&domain.Order{ID: 5}, nil)

			_, err := svc.Create(ctx, ticketInput(tt.row, tt.seat))

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, domain.KindSeatOutOfRange, vErr.Kind)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			m.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTicketService_CreateSeatTaken(t *testing.T) {
	ctx := context.Background()
	svc, m := newTicketService()

	m.flights.On("GetByID", ctx, int64(1)).Return(flightWithSeats(10, 4), nil)
	m.orders.On("GetByID", ctx, int64(5)).Return(&domain.Order{ID: 5}, nil)
	m.tickets.On("SeatTaken", ctx, int64(1), 2, 3, int64(0)).Return(true, nil)

	_, err := svc.Create(ctx, ticketInput(2, 3))

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.KindSeatTaken, vErr.Kind)
}

func TestTicketService_UpdateExcludesSelf(t *testing.T) {
	ctx := context.Background()
	svc, m := newTicketService()

	existing := &domain.Ticket{ID: 20, Row: 2, Seat: 3, Flight: *flightWithSeats(10, 4), Order: domain.Order{ID: 5}}
	m.tickets.On("GetByID", ctx, int64(20)).Return(existing, nil)
	m.tickets.On("SeatTaken", ctx, int64(1), 2, 3, int64(20)).Return(false, nil)
	m.tickets.On("Update", ctx, existing).Return(nil)

	ticket, err := svc.Update(ctx, 20, &upsert.TicketInput{Row: ptr(2)}, true)

	require.NoError(t, err)
	assert.Equal(t, int64(20), ticket.ID)
	m.flights.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTicketService_CreateUnknownFlight(t *testing.T) {
	ctx := context.Background()
	svc, m := newTicketService()

	m.flights.On("GetByID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(ctx, ticketInput(1, 1))

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "flight", vErr.Field)
}
