package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
	GetOrCreate(ctx context.Context, airport *domain.Airport) (bool, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name, closest_big_city FROM airports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.ClosestBigCity)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestBigCity).Scan(&airport.ID)
	if err != nil {
		return fmt.Errorf("insert airport: %w", err)
	}
	return nil
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE airports SET name=$1, closest_big_city=$2 WHERE id=$3`,
		airport.Name, airport.ClosestBigCity, airport.ID)
	if err != nil {
		return fmt.Errorf("update airport: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete airport: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirportRepository) GetOrCreate(ctx context.Context, airport *domain.Airport) (bool, error) {
	id, created, err := getOrCreate(ctx, conn(ctx, r.db),
		`SELECT id FROM airports WHERE name=$1 AND closest_big_city=$2 ORDER BY id LIMIT 1`,
		`INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestBigCity)
	if err != nil {
		return false, fmt.Errorf("get or create airport: %w", err)
	}
	airport.ID = id
	return created, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
