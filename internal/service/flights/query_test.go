package flights

import (
	"net/url"
	"testing"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlightQuery(t *testing.T) {
	values := url.Values{
		"search":   {"Boeing  kyiv,doe"},
		"ordering": {"-departure_time, price,route__source__name"},
		"route":    {"3"},
	}

	q, err := ParseFlightQuery(values)
	require.NoError(t, err)

	assert.Equal(t, []string{"Boeing", "kyiv", "doe"}, q.Search)
	assert.Equal(t, []domain.FlightOrdering{
		{Field: domain.OrderDepartureTime, Desc: true},
		{Field: domain.OrderRouteSourceName},
	}, q.Ordering)
	require.NotNil(t, q.RouteID)
	assert.Equal(t, int64(3), *q.RouteID)
	assert.Nil(t, q.AirplaneID)
}

func TestParseFlightQuery_Empty(t *testing.T) {
	q, err := ParseFlightQuery(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, q.Search)
	assert.Empty(t, q.Ordering)
}

func TestParseFlightQuery_InvalidIDs(t *testing.T) {
	_, err := ParseFlightQuery(url.Values{"route": {"abc"}, "airplane": {"1.5"}})

	var errs domain.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "route", errs[0].Field)
	assert.Equal(t, "airplane", errs[1].Field)
	assert.Equal(t, domain.KindInvalid, errs[0].Kind)
	assert.Equal(t, "Enter a number.", errs[0].Message)
}
