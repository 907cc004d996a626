package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id int64) error
	GetOrCreate(ctx context.Context, route *domain.Route) (bool, error)
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.distance,
	src.id, src.name, src.closest_big_city,
	dst.id, dst.name, dst.closest_big_city
FROM routes r
JOIN airports src ON src.id = r.source_id
JOIN airports dst ON dst.id = r.destination_id`

func scanRoute(row pgx.Row) (domain.Route, error) {
	var rt domain.Route
	err := row.Scan(&rt.ID, &rt.Distance,
		&rt.Source.ID, &rt.Source.Name, &rt.Source.ClosestBigCity,
		&rt.Destination.ID, &rt.Destination.Name, &rt.Destination.ClosestBigCity)
	return rt, err
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := conn(ctx, r.db).Query(ctx, routeSelect+` ORDER BY r.id`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	rt, err := scanRoute(conn(ctx, r.db).QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.Source.ID, route.Destination.ID, route.Distance).Scan(&route.ID)
	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		route.Source.ID, route.Destination.ID, route.Distance, route.ID)
	if err != nil {
		return fmt.Errorf("update route: %w", err)
	}
	return expectOne(tag)
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return expectOne(tag)
}

// GetOrCreate matches on the resolved airport ids and distance.
func (r *PGRouteRepository) GetOrCreate(ctx context.Context, route *domain.Route) (bool, error) {
	id, created, err := getOrCreate(ctx, conn(ctx, r.db),
		`SELECT id FROM routes WHERE source_id=$1 AND destination_id=$2 AND distance=$3 ORDER BY id LIMIT 1`,
		`INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.Source.ID, route.Destination.ID, route.Distance)
	if err != nil {
		return false, fmt.Errorf("get or create route: %w", err)
	}
	route.ID = id
	return created, nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
