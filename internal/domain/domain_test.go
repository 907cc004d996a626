package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Kind
}

func TestRoute_Validate(t *testing.T) {
	same := Route{Source: Airport{ID: 1}, Destination: Airport{ID: 1}, Distance: 100}
	assert.Equal(t, KindInvalidRoute, kindOf(t, same.Validate()))

	distinct := Route{Source: Airport{ID: 1}, Destination: Airport{ID: 2}, Distance: 100}
	assert.NoError(t, distinct.Validate())
}

func TestFlight_Validate(t *testing.T) {
	dep := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		arrival time.Time
		wantErr bool
	}{
		{name: "arrival before departure", arrival: dep.Add(-time.Hour), wantErr: true},
		{name: "arrival equals departure", arrival: dep, wantErr: true},
		{name: "arrival after departure", arrival: dep.Add(time.Hour), wantErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Flight{DepartureTime: dep, ArrivalTime: tc.arrival}.Validate()
			if tc.wantErr {
				assert.Equal(t, KindInvalidSchedule, kindOf(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTicket_ValidateSeat(t *testing.T) {
	flight := Flight{Airplane: Airplane{Rows: 10, SeatsInRow: 6}}

	testCases := []struct {
		name      string
		row, seat int
		field     string
	}{
		{name: "row zero", row: 0, seat: 1, field: "row"},
		{name: "row above max", row: 11, seat: 1, field: "row"},
		{name: "seat zero", row: 1, seat: 0, field: "seat"},
		{name: "seat above max", row: 1, seat: 7, field: "seat"},
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 10, seat: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Ticket{Row: tc.row, Seat: tc.seat, Flight: flight}.ValidateSeat()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, KindSeatOutOfRange, verr.Kind)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add(Required("name"))
	errs.Add(Required(FieldPath("source", "closest_big_city")))

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "name: This field is required.; source.closest_big_city: This field is required.", err.Error())
}

func TestFlightQuery_Key(t *testing.T) {
	route := int64(3)
	q := FlightQuery{
		Search:   []string{"Boeing", "kyiv"},
		Ordering: []FlightOrdering{{Field: OrderDepartureTime, Desc: true}, {Field: OrderRouteSourceName}},
		RouteID:  &route,
	}
	assert.Equal(t, "search=boeing,kyiv&ordering=-departure_time,route__source__name&route=3", q.Key())
}
