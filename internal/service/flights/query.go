package flights

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/reinvvay/airport-api/internal/domain"
)

// ParseFlightQuery reads search, ordering, route and airplane from the query string.
// Unknown ordering fields are dropped; non-numeric ids are field errors.
func ParseFlightQuery(values url.Values) (domain.FlightQuery, error) {
	var (
		q    domain.FlightQuery
		errs domain.ValidationErrors
	)

	q.Search = strings.FieldsFunc(values.Get("search"), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	for _, part := range strings.Split(values.Get("ordering"), ",") {
		part = strings.TrimSpace(part)
		o := domain.FlightOrdering{Field: domain.FlightOrderField(strings.TrimPrefix(part, "-")), Desc: strings.HasPrefix(part, "-")}
		switch o.Field {
		case domain.OrderDepartureTime, domain.OrderArrivalTime, domain.OrderRouteSourceName:
			q.Ordering = append(q.Ordering, o)
		}
	}

	q.RouteID = parseID(values, "route", &errs)
	q.AirplaneID = parseID(values, "airplane", &errs)

	return q, errs.Err()
}

func parseID(values url.Values, field string, errs *domain.ValidationErrors) *int64 {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(domain.NewValidationError(domain.KindInvalid, field, "Enter a number."))
		return nil
	}
	return &id
}
