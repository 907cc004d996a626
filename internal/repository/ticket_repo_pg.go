package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/domain"
)

type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id int64) error
	// SeatTaken reports whether a ticket other than excludeID holds the seat.
	SeatTaken(ctx context.Context, flightID int64, row, seat int, excludeID int64) (bool, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketSelect = `SELECT ` + flightColumns + `,
	tk.id, tk."row", tk.seat,
	o.id, o.created_at, o.user_id
FROM tickets tk
JOIN flights f ON f.id = tk.flight_id
` + flightJoins + `
JOIN orders o ON o.id = tk.order_id`

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var tk domain.Ticket
	f, err := scanFlight(row, &tk.ID, &tk.Row, &tk.Seat, &tk.Order.ID, &tk.Order.CreatedAt, &tk.Order.UserID)
	tk.Flight = f
	return tk, err
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	db := conn(ctx, r.db)
	rows, err := db.Query(ctx, ticketSelect+` ORDER BY tk.id`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		tk, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := loadTicketCrew(ctx, db, tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	db := conn(ctx, r.db)
	tk, err := scanTicket(db.QueryRow(ctx, ticketSelect+` WHERE tk.id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	tickets := []domain.Ticket{tk}
	if err := loadTicketCrew(ctx, db, tickets); err != nil {
		return nil, err
	}
	return &tickets[0], nil
}

func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		ticket.Row, ticket.Seat, ticket.Flight.ID, ticket.Order.ID).Scan(&ticket.ID)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *PGTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE tickets SET "row"=$1, seat=$2, flight_id=$3, order_id=$4 WHERE id=$5`,
		ticket.Row, ticket.Seat, ticket.Flight.ID, ticket.Order.ID, ticket.ID)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return expectOne(tag)
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return expectOne(tag)
}

func (r *PGTicketRepository) SeatTaken(ctx context.Context, flightID int64, row, seat int, excludeID int64) (bool, error) {
	var taken bool
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tickets WHERE flight_id=$1 AND "row"=$2 AND seat=$3 AND id<>$4)`,
		flightID, row, seat, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check seat: %w", err)
	}
	return taken, nil
}

func loadTicketCrew(ctx context.Context, db DBTX, tickets []domain.Ticket) error {
	flights := make([]domain.Flight, len(tickets))
	for i := range tickets {
		flights[i] = tickets[i].Flight
	}
	if err := loadCrew(ctx, db, flights); err != nil {
		return err
	}
	for i := range tickets {
		tickets[i].Flight = flights[i]
	}
	return nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
