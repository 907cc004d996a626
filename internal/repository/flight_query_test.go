package repository

import (
	"testing"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildFlightListQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    domain.FlightQuery
		contains []string
		excludes []string
		orderBy  string
		wantArgs []any
	}{
		{
			name:     "defaults to departure time",
			query:    domain.FlightQuery{},
			excludes: []string{"WHERE"},
			orderBy:  "ORDER BY f.departure_time, f.id",
		},
		{
			name:  "descending ordering",
			query: domain.FlightQuery{Ordering: []domain.FlightOrdering{
				{Field: domain.OrderDepartureTime, Desc: true},
			}},
			orderBy: "ORDER BY f.departure_time DESC, f.id",
		},
		{
			name:  "several ordering fields",
			query: domain.FlightQuery{Ordering: []domain.FlightOrdering{
				{Field: domain.OrderRouteSourceName},
				{Field: domain.OrderArrivalTime, Desc: true},
			}},
			orderBy: "ORDER BY src.name, f.arrival_time DESC, f.id",
		},
		{
			name:  "unknown ordering falls back",
			query: domain.FlightQuery{Ordering: []domain.FlightOrdering{
				{Field: "price"},
			}},
			orderBy: "ORDER BY f.departure_time, f.id",
		},
		{
			name:     "search terms are and-ed",
			query:    domain.FlightQuery{Search: []string{"boeing", "100%_off"}},
			contains: []string{"a.name ILIKE $1", "c.last_name ILIKE $2", "\n  AND "},
			orderBy:  "ORDER BY f.departure_time, f.id",
			wantArgs: []any{"%boeing%", `%100\%\_off%`},
		},
		{
			name:     "route and airplane filters",
			query:    domain.FlightQuery{Search: []string{"kyiv"}, RouteID: int64Ptr(3), AirplaneID: int64Ptr(7)},
			contains: []string{"f.route_id = $2", "f.airplane_id = $3"},
			orderBy:  "ORDER BY f.departure_time, f.id",
			wantArgs: []any{"%kyiv%", int64(3), int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildFlightListQuery(tt.query)

			for _, s := range tt.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, sql, s)
			}
			assert.Contains(t, sql, tt.orderBy)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
