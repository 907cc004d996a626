package repository

import (
	"fmt"
	"strings"

	"github.com/reinvvay/airport-api/internal/domain"
)

const flightColumns = `f.id, f.departure_time, f.arrival_time,
	r.id, r.distance,
	src.id, src.name, src.closest_big_city,
	dst.id, dst.name, dst.closest_big_city,
	a.id, a.name, a.rows, a.seats_in_row,
	t.id, t.name`

const flightJoins = `JOIN routes r ON r.id = f.route_id
JOIN airports src ON src.id = r.source_id
JOIN airports dst ON dst.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
JOIN airplane_types t ON t.id = a.airplane_type_id`

const flightSelect = `SELECT ` + flightColumns + `
FROM flights f
` + flightJoins

var flightOrderColumns = map[domain.FlightOrderField]string{
	domain.OrderDepartureTime:   "f.departure_time",
	domain.OrderArrivalTime:     "f.arrival_time",
	domain.OrderRouteSourceName: "src.name",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFlightListQuery renders the listing SQL for q. Each search term must hit the
// source or destination airport name, the airplane name or a crew member's name.
func buildFlightListQuery(q domain.FlightQuery) (string, []any) {
	var (
		where []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, term := range q.Search {
		p := next("%" + likeEscaper.Replace(term) + "%")
		where = append(where, fmt.Sprintf(`(src.name ILIKE %[1]s OR dst.name ILIKE %[1]s OR a.name ILIKE %[1]s OR EXISTS (
	SELECT 1 FROM flight_crew fc JOIN crew c ON c.id = fc.crew_id
	WHERE fc.flight_id = f.id AND (c.first_name ILIKE %[1]s OR c.last_name ILIKE %[1]s)))`, p))
	}
	if q.RouteID != nil {
		where = append(where, "f.route_id = "+next(*q.RouteID))
	}
	if q.AirplaneID != nil {
		where = append(where, "f.airplane_id = "+next(*q.AirplaneID))
	}

	var b strings.Builder
	b.WriteString(flightSelect)
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, "\n  AND "))
	}

	order := make([]string, 0, len(q.Ordering)+1)
	for _, o := range q.Ordering {
		col, ok := flightOrderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			col += " DESC"
		}
		order = append(order, col)
	}
	if len(order) == 0 {
		order = append(order, flightOrderColumns[domain.OrderDepartureTime])
	}
	order = append(order, "f.id")
	b.WriteString("\nORDER BY ")
	b.WriteString(strings.Join(order, ", "))

	return b.String(), args
}
