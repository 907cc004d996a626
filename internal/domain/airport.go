package domain

type Airport struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type Route struct {
	ID          int64   `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

func (r Route) Validate() error {
	if r.Source.ID == r.Destination.ID {
		return NewValidationError(KindInvalidRoute, NonFieldErrors, "Source and destination airports must be different.")
	}
	return nil
}
