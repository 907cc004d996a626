package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Airports and airplane types have no unique constraint. Concurrent nested
// get-or-creates of the same values can insert duplicates.
var schema = `
CREATE TABLE IF NOT EXISTS airports (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	closest_big_city VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS routes (
	id BIGSERIAL PRIMARY KEY,
	source_id BIGINT NOT NULL REFERENCES airports(id) ON DELETE CASCADE,
	destination_id BIGINT NOT NULL REFERENCES airports(id) ON DELETE CASCADE,
	distance INT NOT NULL
);

CREATE TABLE IF NOT EXISTS crew (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS airplane_types (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS airplanes (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	rows INT NOT NULL,
	seats_in_row INT NOT NULL,
	airplane_type_id BIGINT NOT NULL REFERENCES airplane_types(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS flights (
	id BIGSERIAL PRIMARY KEY,
	route_id BIGINT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
	airplane_id BIGINT NOT NULL REFERENCES airplanes(id) ON DELETE CASCADE,
	departure_time TIMESTAMPTZ NOT NULL,
	arrival_time TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_flights_departure ON flights(departure_time);

CREATE TABLE IF NOT EXISTS flight_crew (
	flight_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
	crew_id BIGINT NOT NULL REFERENCES crew(id) ON DELETE CASCADE,
	PRIMARY KEY (flight_id, crew_id)
);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(150) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	is_staff BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tickets (
	id BIGSERIAL PRIMARY KEY,
	"row" INT NOT NULL,
	seat INT NOT NULL,
	flight_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
	order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_tickets_seat ON tickets(flight_id, "row", seat);
`

// Migrate creates any missing tables. It is safe to run repeatedly.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitForDB pings db until it answers or attempts run out.
func WaitForDB(ctx context.Context, db Pinger, attempts int, delay time.Duration, logger *slog.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.Ping(ctx); err == nil {
			logger.Info("database available", "attempt", attempt)
			return nil
		}
		logger.Info("database unavailable, waiting", "attempt", attempt, "max", attempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("database not reachable after %d attempts: %w", attempts, err)
}
