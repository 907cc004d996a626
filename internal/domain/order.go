package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user"`
}

type Ticket struct {
	ID     int64  `json:"id"`
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
	Flight Flight `json:"flight"`
	Order  Order  `json:"order"`
}

// ValidateSeat checks row and seat against the airplane of the resolved flight.
func (t Ticket) ValidateSeat() error {
	airplane := t.Flight.Airplane
	if t.Row < 1 || t.Row > airplane.Rows {
		return NewValidationError(KindSeatOutOfRange, "row", fmt.Sprintf("Row must be between 1 and %d.", airplane.Rows))
	}
	if t.Seat < 1 || t.Seat > airplane.SeatsInRow {
		return NewValidationError(KindSeatOutOfRange, "seat", fmt.Sprintf("Seat must be between 1 and %d.", airplane.SeatsInRow))
	}
	return nil
}

func ErrSeatTaken() *ValidationError {
	return NewValidationError(KindSeatTaken, NonFieldErrors, "This seat is already taken on this flight.")
}
