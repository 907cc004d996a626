package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, created_at, user_id FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CreatedAt, &o.UserID); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, created_at, user_id FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.CreatedAt, &o.UserID)
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// Create stores the order and fills in the generated id and creation time.
func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update only changes the owner; created_at is immutable.
func (r *PGOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	err := conn(ctx, r.db).QueryRow(ctx, `UPDATE orders SET user_id=$1 WHERE id=$2 RETURNING created_at`, order.UserID, order.ID).
		Scan(&order.CreatedAt)
	if err != nil {
		return notFound(err)
	}
	return nil
}

func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return expectOne(tag)
}

var _ OrderRepository = (*PGOrderRepository)(nil)
