package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, airplaneType *domain.AirplaneType) error
	Update(ctx context.Context, airplaneType *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
	GetOrCreate(ctx context.Context, airplaneType *domain.AirplaneType) (bool, error)
}

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, airplane *domain.Airplane) error
	Update(ctx context.Context, airplane *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
	GetOrCreate(ctx context.Context, airplane *domain.Airplane) (bool, error)
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list airplane types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	if err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`,
		airplaneType.Name).Scan(&airplaneType.ID); err != nil {
		return fmt.Errorf("insert airplane type: %w", err)
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, airplaneType *domain.AirplaneType) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2`, airplaneType.Name, airplaneType.ID)
	if err != nil {
		return fmt.Errorf("update airplane type: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM airplane_types WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete airplane type: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirplaneTypeRepository) GetOrCreate(ctx context.Context, airplaneType *domain.AirplaneType) (bool, error) {
	id, created, err := getOrCreate(ctx, conn(ctx, r.db),
		`SELECT id FROM airplane_types WHERE name=$1 ORDER BY id LIMIT 1`,
		`INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`,
		airplaneType.Name)
	if err != nil {
		return false, fmt.Errorf("get or create airplane type: %w", err)
	}
	airplaneType.ID = id
	return created, nil
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneSelect = `SELECT a.id, a.name, a.rows, a.seats_in_row, t.id, t.name
FROM airplanes a
JOIN airplane_types t ON t.id = a.airplane_type_id`

func scanAirplane(row pgx.Row) (domain.Airplane, error) {
	var a domain.Airplane
	err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneType.ID, &a.AirplaneType.Name)
	return a, err
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := conn(ctx, r.db).Query(ctx, airplaneSelect+` ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("list airplanes: %w", err)
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		a, err := scanAirplane(rows)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	a, err := scanAirplane(conn(ctx, r.db).QueryRow(ctx, airplaneSelect+` WHERE a.id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneType.ID).Scan(&airplane.ID)
	if err != nil {
		return fmt.Errorf("insert airplane: %w", err)
	}
	return nil
}

func (r *PGAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE airplanes SET name=$1, rows=$2, seats_in_row=$3, airplane_type_id=$4 WHERE id=$5`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneType.ID, airplane.ID)
	if err != nil {
		return fmt.Errorf("update airplane: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM airplanes WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete airplane: %w", err)
	}
	return expectOne(tag)
}

func (r *PGAirplaneRepository) GetOrCreate(ctx context.Context, airplane *domain.Airplane) (bool, error) {
	id, created, err := getOrCreate(ctx, conn(ctx, r.db),
		`SELECT id FROM airplanes WHERE name=$1 AND rows=$2 AND seats_in_row=$3 AND airplane_type_id=$4 ORDER BY id LIMIT 1`,
		`INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneType.ID)
	if err != nil {
		return false, fmt.Errorf("get or create airplane: %w", err)
	}
	airplane.ID = id
	return created, nil
}

var (
	_ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
	_ AirplaneRepository     = (*PGAirplaneRepository)(nil)
)
