package domain

import "time"

type Flight struct {
	ID            int64     `json:"id"`
	Route         Route     `json:"route"`
	Airplane      Airplane  `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []Crew    `json:"crew"`
}

func (f Flight) Validate() error {
	if !f.ArrivalTime.After(f.DepartureTime) {
		return NewValidationError(KindInvalidSchedule, "arrival_time", "Arrival time must be after departure time.")
	}
	return nil
}

// CrewIDs returns the ids of the attached crew in order.
func (f Flight) CrewIDs() []int64 {
	ids := make([]int64, 0, len(f.Crew))
	for _, c := range f.Crew {
		ids = append(ids, c.ID)
	}
	return ids
}
