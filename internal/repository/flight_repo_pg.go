package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	// SetCrew replaces the crew of a flight with exactly crewIDs.
	SetCrew(ctx context.Context, flightID int64, crewIDs []int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func scanFlight(row pgx.Row, extra ...any) (domain.Flight, error) {
	var f domain.Flight
	dest := []any{
		&f.ID, &f.DepartureTime, &f.ArrivalTime,
		&f.Route.ID, &f.Route.Distance,
		&f.Route.Source.ID, &f.Route.Source.Name, &f.Route.Source.ClosestBigCity,
		&f.Route.Destination.ID, &f.Route.Destination.Name, &f.Route.Destination.ClosestBigCity,
		&f.Airplane.ID, &f.Airplane.Name, &f.Airplane.Rows, &f.Airplane.SeatsInRow,
		&f.Airplane.AirplaneType.ID, &f.Airplane.AirplaneType.Name,
	}
	err := row.Scan(append(dest, extra...)...)
	return f, err
}

func (r *PGFlightRepository) List(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	sql, args := buildFlightListQuery(q)
	db := conn(ctx, r.db)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := loadCrew(ctx, db, flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	db := conn(ctx, r.db)
	f, err := scanFlight(db.QueryRow(ctx, flightSelect+` WHERE f.id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	flights := []domain.Flight{f}
	if err := loadCrew(ctx, db, flights); err != nil {
		return nil, err
	}
	return &flights[0], nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		flight.Route.ID, flight.Airplane.ID, flight.DepartureTime, flight.ArrivalTime).Scan(&flight.ID)
	if err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5`,
		flight.Route.ID, flight.Airplane.ID, flight.DepartureTime, flight.ArrivalTime, flight.ID)
	if err != nil {
		return fmt.Errorf("update flight: %w", err)
	}
	return expectOne(tag)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete flight: %w", err)
	}
	return expectOne(tag)
}

func (r *PGFlightRepository) SetCrew(ctx context.Context, flightID int64, crewIDs []int64) error {
	db := conn(ctx, r.db)
	if _, err := db.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, flightID); err != nil {
		return fmt.Errorf("clear flight crew: %w", err)
	}
	if len(crewIDs) == 0 {
		return nil
	}
	_, err := db.Exec(ctx,
		`INSERT INTO flight_crew (flight_id, crew_id) SELECT $1, unnest($2::bigint[]) ON CONFLICT DO NOTHING`,
		flightID, crewIDs)
	if err != nil {
		return fmt.Errorf("set flight crew: %w", err)
	}
	return nil
}

// loadCrew fills the crew of every flight in place with one query.
func loadCrew(ctx context.Context, db DBTX, flights []domain.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	ids := make([]int64, len(flights))
	index := make(map[int64][]int, len(flights))
	for i := range flights {
		flights[i].Crew = make([]domain.Crew, 0)
		ids[i] = flights[i].ID
		index[flights[i].ID] = append(index[flights[i].ID], i)
	}

	rows, err := db.Query(ctx, `SELECT fc.flight_id, c.id, c.first_name, c.last_name
FROM flight_crew fc
JOIN crew c ON c.id = fc.crew_id
WHERE fc.flight_id = ANY($1)
ORDER BY fc.flight_id, c.id`, ids)
	if err != nil {
		return fmt.Errorf("load flight crew: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			flightID int64
			c        domain.Crew
		)
		if err := rows.Scan(&flightID, &c.ID, &c.FirstName, &c.LastName); err != nil {
			return err
		}
		for _, i := range index[flightID] {
			flights[i].Crew = append(flights[i].Crew, c)
		}
	}
	return rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
