package api

import (
	"context"

	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/service/users"
	"github.com/reinvvay/airport-api/internal/upsert"
	"github.com/stretchr/testify/mock"
)

// MockCRUDUseCase is a mock implementation of CRUDUseCase for any collection.
type MockCRUDUseCase[T, In any] struct {
	mock.Mock
}

func (m *MockCRUDUseCase[T, In]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDUseCase[T, In]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDUseCase[T, In]) Create(ctx context.Context, in *In) (*T, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDUseCase[T, In]) Update(ctx context.Context, id int64, in *In, partial bool) (*T, error) {
	args := m.Called(ctx, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDUseCase[T, In]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, in *upsert.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, id int64, in *upsert.FlightInput, partial bool) (*domain.Flight, error) {
	args := m.Called(ctx, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, in users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, in users.LoginInput) (*users.Token, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Token), args.Error(1)
}

func (m *MockUserUseCase) Authenticate(ctx context.Context, raw string) (auth.Actor, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(auth.Actor), args.Error(1)
}

func (m *MockUserUseCase) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// staticTokens maps raw tokens to actors.
type staticTokens map[string]auth.Actor

func (s staticTokens) Authenticate(_ context.Context, raw string) (auth.Actor, error) {
	actor, ok := s[raw]
	if !ok {
		return auth.Actor{}, auth.ErrInvalidToken
	}
	return actor, nil
}
