// Package upsert decodes nested write payloads and resolves them against the store.
//
// Input fields are pointers so that an omitted key can be told apart from a zero
// value. Check reports missing required fields; partial relaxes that for PATCH.
package upsert

import (
	"fmt"
	"time"

	"github.com/reinvvay/airport-api/internal/domain"
)

type AirportInput struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	ClosestBigCity *string `json:"closest_big_city" binding:"omitempty,max=255"`
}

func (in *AirportInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	if partial {
		return
	}
	requireField(in.Name == nil, prefix, "name", errs)
	requireField(in.ClosestBigCity == nil, prefix, "closest_big_city", errs)
}

func (in *AirportInput) Apply(a *domain.Airport) {
	setIf(&a.Name, in.Name)
	setIf(&a.ClosestBigCity, in.ClosestBigCity)
}

type RouteInput struct {
	Source      *AirportInput `json:"source"`
	Destination *AirportInput `json:"destination"`
	Distance    *int          `json:"distance"`
}

func (in *RouteInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	checkNested(in.Source, prefix, "source", partial, errs)
	checkNested(in.Destination, prefix, "destination", partial, errs)
	if !partial {
		requireField(in.Distance == nil, prefix, "distance", errs)
	}
}

type CrewInput struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,max=255"`
}

func (in *CrewInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	if partial {
		return
	}
	requireField(in.FirstName == nil, prefix, "first_name", errs)
	requireField(in.LastName == nil, prefix, "last_name", errs)
}

func (in *CrewInput) Apply(c *domain.Crew) {
	setIf(&c.FirstName, in.FirstName)
	setIf(&c.LastName, in.LastName)
}

type AirplaneTypeInput struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

func (in *AirplaneTypeInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	if !partial {
		requireField(in.Name == nil, prefix, "name", errs)
	}
}

func (in *AirplaneTypeInput) Apply(t *domain.AirplaneType) {
	setIf(&t.Name, in.Name)
}

type AirplaneInput struct {
	Name         *string            `json:"name" binding:"omitempty,max=255"`
	Rows         *int               `json:"rows"`
	SeatsInRow   *int               `json:"seats_in_row"`
	AirplaneType *AirplaneTypeInput `json:"airplane_type"`
}

func (in *AirplaneInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	if !partial {
		requireField(in.Name == nil, prefix, "name", errs)
		requireField(in.Rows == nil, prefix, "rows", errs)
		requireField(in.SeatsInRow == nil, prefix, "seats_in_row", errs)
	}
	checkNested(in.AirplaneType, prefix, "airplane_type", partial, errs)
}

// Apply copies the scalar fields; the airplane type is resolved separately.
func (in *AirplaneInput) Apply(a *domain.Airplane) {
	setIf(&a.Name, in.Name)
	setIf(&a.Rows, in.Rows)
	setIf(&a.SeatsInRow, in.SeatsInRow)
}

// FlightInput is the writable flight shape. Crew is optional: nil means no crew on
// create and an untouched crew on update; a non-nil list, even empty, replaces it.
type FlightInput struct {
	Route         *RouteInput    `json:"route"`
	Airplane      *AirplaneInput `json:"airplane"`
	DepartureTime *time.Time     `json:"departure_time"`
	ArrivalTime   *time.Time     `json:"arrival_time"`
	Crew          *[]CrewInput   `json:"crew" binding:"omitempty,dive"`
}

func (in *FlightInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	checkNested(in.Route, prefix, "route", partial, errs)
	checkNested(in.Airplane, prefix, "airplane", partial, errs)
	if !partial {
		requireField(in.DepartureTime == nil, prefix, "departure_time", errs)
		requireField(in.ArrivalTime == nil, prefix, "arrival_time", errs)
	}
	if in.Crew != nil {
		for i := range *in.Crew {
			// crew entries are always matched on both names
			(*in.Crew)[i].Check(domain.FieldPath(prefix, fmt.Sprintf("crew[%d]", i)), false, errs)
		}
	}
}

// Apply copies the schedule; route, airplane and crew go through the Resolver.
func (in *FlightInput) Apply(f *domain.Flight) {
	setIf(&f.DepartureTime, in.DepartureTime)
	setIf(&f.ArrivalTime, in.ArrivalTime)
}

type OrderInput struct {
	User *int64 `json:"user"`
}

type TicketInput struct {
	Row    *int   `json:"row"`
	Seat   *int   `json:"seat"`
	Flight *int64 `json:"flight"`
	Order  *int64 `json:"order"`
}

func (in *TicketInput) Check(prefix string, partial bool, errs *domain.ValidationErrors) {
	if partial {
		return
	}
	requireField(in.Row == nil, prefix, "row", errs)
	requireField(in.Seat == nil, prefix, "seat", errs)
	requireField(in.Flight == nil, prefix, "flight", errs)
	requireField(in.Order == nil, prefix, "order", errs)
}

func (in *TicketInput) Apply(t *domain.Ticket) {
	setIf(&t.Row, in.Row)
	setIf(&t.Seat, in.Seat)
	setIf(&t.Flight.ID, in.Flight)
	setIf(&t.Order.ID, in.Order)
}

type checker interface {
	Check(prefix string, partial bool, errs *domain.ValidationErrors)
}

// checkNested requires the nested object unless partial, and checks it when present.
func checkNested[T any, P interface {
	*T
	checker
}](in P, prefix, field string, partial bool, errs *domain.ValidationErrors) {
	path := domain.FieldPath(prefix, field)
	if in == nil {
		requireField(!partial, prefix, field, errs)
		return
	}
	in.Check(path, partial, errs)
}

func requireField(missing bool, prefix, field string, errs *domain.ValidationErrors) {
	if missing {
		errs.Add(domain.Required(domain.FieldPath(prefix, field)))
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
