package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/repository"
)

var ErrInvalidCredentials = errors.New("no active account found with the given credentials")

type RegisterInput struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Password string `json:"password" binding:"required,min=5"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Token struct {
	Access    string    `json:"access"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*Token, error)
	Me(ctx context.Context) (*domain.User, error)
	Authenticate(ctx context.Context, raw string) (auth.Actor, error)
}

type UserService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) *UserService {
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a regular, non-staff account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	return s.CreateUser(ctx, in, false)
}

// CreateUser is also used by the management command to create staff accounts.
func (s *UserService) CreateUser(ctx context.Context, in RegisterInput, staff bool) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.ValidationErrors{domain.Required("username")}
	}
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		IsStaff:      staff,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, in LoginInput) (*Token, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	access, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Token{Access: access, ExpiresAt: exp}, nil
}

func (s *UserService) Me(ctx context.Context) (*domain.User, error) {
	actor, ok := auth.ActorFrom(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.GetByID(ctx, actor.UserID)
}

// Authenticate resolves a bearer token to the stored user, so deleted accounts
// lose access and the staff flag reflects the current row.
func (s *UserService) Authenticate(ctx context.Context, raw string) (auth.Actor, error) {
	actor, err := s.tokens.Parse(raw)
	if err != nil {
		return auth.Actor{}, err
	}
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Actor{}, auth.ErrInvalidToken
		}
		return auth.Actor{}, err
	}
	return auth.Actor{UserID: user.ID, IsStaff: user.IsStaff}, nil
}

var _ UserUseCase = (*UserService)(nil)
