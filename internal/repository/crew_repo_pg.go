package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type CrewRepository interface {
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, crew *domain.Crew) error
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id int64) error
	GetOrCreate(ctx context.Context, crew *domain.Crew) (bool, error)
	// ExistsByName reports whether a crew member other than excludeID has the name.
	ExistsByName(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error)
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, first_name, last_name FROM crew ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list crew: %w", err)
	}
	defer rows.Close()

	crew := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crew = append(crew, c)
	}
	return crew, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, first_name, last_name FROM crew WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO crew (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
	if err != nil {
		return fmt.Errorf("insert crew: %w", err)
	}
	return nil
}

func (r *PGCrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE crew SET first_name=$1, last_name=$2 WHERE id=$3`,
		crew.FirstName, crew.LastName, crew.ID)
	if err != nil {
		return fmt.Errorf("update crew: %w", err)
	}
	return expectOne(tag)
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM crew WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete crew: %w", err)
	}
	return expectOne(tag)
}

func (r *PGCrewRepository) GetOrCreate(ctx context.Context, crew *domain.Crew) (bool, error) {
	id, created, err := getOrCreate(ctx, conn(ctx, r.db),
		`SELECT id FROM crew WHERE first_name=$1 AND last_name=$2 ORDER BY id LIMIT 1`,
		`INSERT INTO crew (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName)
	if err != nil {
		return false, fmt.Errorf("get or create crew: %w", err)
	}
	crew.ID = id
	return created, nil
}

func (r *PGCrewRepository) ExistsByName(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM crew WHERE first_name=$1 AND last_name=$2 AND id<>$3)`,
		firstName, lastName, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check crew name: %w", err)
	}
	return exists, nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
