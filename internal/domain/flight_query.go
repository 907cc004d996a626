package domain

import (
	"strconv"
	"strings"
)

type FlightOrderField string

const (
	OrderDepartureTime   FlightOrderField = "departure_time"
	OrderArrivalTime     FlightOrderField = "arrival_time"
	OrderRouteSourceName FlightOrderField = "route__source__name"
)

type FlightOrdering struct {
	Field FlightOrderField
	Desc  bool
}

func (o FlightOrdering) String() string {
	if o.Desc {
		return "-" + string(o.Field)
	}
	return string(o.Field)
}

// FlightQuery is the parsed form of the flight listing parameters.
// Every search term must match at least one searchable field.
type FlightQuery struct {
	Search     []string
	Ordering   []FlightOrdering
	RouteID    *int64
	AirplaneID *int64
}

// Key renders the query canonically so equal queries share a cache entry.
func (q FlightQuery) Key() string {
	var b strings.Builder
	b.WriteString("search=")
	b.WriteString(strings.ToLower(strings.Join(q.Search, ",")))
	b.WriteString("&ordering=")
	for i, o := range q.Ordering {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(o.String())
	}
	if q.RouteID != nil {
		b.WriteString("&route=")
		b.WriteString(strconv.FormatInt(*q.RouteID, 10))
	}
	if q.AirplaneID != nil {
		b.WriteString("&airplane=")
		b.WriteString(strconv.FormatInt(*q.AirplaneID, 10))
	}
	return b.String()
}
