package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

const uniqueViolation = "23505"

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, is_staff) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		user.Username, user.Email, user.PasswordHash, user.IsStaff).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.NewValidationError(domain.KindInvalid, "username", "A user with that username already exists.")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userSelect = `SELECT id, username, email, password_hash, is_staff, created_at FROM users`

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, userSelect+` WHERE id=$1`, id)
}

func (r *PGUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, userSelect+` WHERE username=$1`, username)
}

func (r *PGUserRepository) get(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.db).QueryRow(ctx, sql, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
