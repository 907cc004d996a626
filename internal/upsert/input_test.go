package upsert

import (
	"testing"
	"time"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestFlightInput_CheckFull(t *testing.T) {
	in := &FlightInput{
		Route: &RouteInput{
			Source:   &AirportInput{ClosestBigCity: ptr("Kyiv")},
			Distance: ptr(100),
		},
		DepartureTime: ptr(time.Now()),
		Crew:          &[]CrewInput{{FirstName: ptr("John")}},
	}

	var errs domain.ValidationErrors
	in.Check("", false, &errs)

	assert.ElementsMatch(t, []string{
		"route.source.name",
		"route.destination",
		"airplane",
		"arrival_time",
		"crew[0].last_name",
	}, fields(errs))
	for _, e := range errs {
		assert.Equal(t, domain.KindRequired, e.Kind)
		assert.Equal(t, "This field is required.", e.Message)
	}
}

func TestFlightInput_CheckPartial(t *testing.T) {
	in := &FlightInput{
		Route: &RouteInput{Source: &AirportInput{Name: ptr("KBP")}},
		Crew:  &[]CrewInput{},
	}

	var errs domain.ValidationErrors
	in.Check("", true, &errs)

	assert.Empty(t, errs)
	assert.NoError(t, errs.Err())
}

func TestFlightInput_CrewOptional(t *testing.T) {
	in := &FlightInput{
		Route: &RouteInput{
			Source:      &AirportInput{Name: ptr("KBP"), ClosestBigCity: ptr("Kyiv")},
			Destination: &AirportInput{Name: ptr("LHR"), ClosestBigCity: ptr("London")},
			Distance:    ptr(2100),
		},
		Airplane: &AirplaneInput{
			Name:         ptr("Boeing 737"),
			Rows:         ptr(30),
			SeatsInRow:   ptr(6),
			AirplaneType: &AirplaneTypeInput{Name: ptr("Jet")},
		},
		DepartureTime: ptr(time.Now()),
		ArrivalTime:   ptr(time.Now().Add(time.Hour)),
	}

	var errs domain.ValidationErrors
	in.Check("", false, &errs)
	assert.Empty(t, errs)
}

func TestTicketInput_Apply(t *testing.T) {
	ticket := domain.Ticket{ID: 1, Row: 2, Seat: 3, Flight: domain.Flight{ID: 4}, Order: domain.Order{ID: 5}}

	(&TicketInput{Seat: ptr(6), Order: ptr(int64(7))}).Apply(&ticket)

	assert.Equal(t, 2, ticket.Row)
	assert.Equal(t, 6, ticket.Seat)
	assert.Equal(t, int64(4), ticket.Flight.ID)
	assert.Equal(t, int64(7), ticket.Order.ID)
}
